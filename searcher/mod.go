package searcher

import (
	"errors"
	"math"
)

// Bounds of the search window.
var (
	PosInf = math.Inf(1)
	NegInf = math.Inf(-1)
)

var ErrNoMoves = errors.New("root state has no legal moves")

// State is a two-sided, perfect-information game position. Implementations
// should be immutable: Play returns a new State and leaves the receiver as is.
type State[M any] interface {
	// Maximizing reports whether the side to move prefers higher evaluations.
	Maximizing() bool
	LegalMoves() []M
	Play(M) State[M]
	// Terminal states are scored without expansion, whatever the remaining depth.
	Terminal() bool
	// Evaluate scores the position; higher is better for the maximizing side.
	Evaluate() float64
}

// Decision is the outcome of a root search.
type Decision[M any] struct {
	Move   M
	Value  float64
	Metric SearchMetric
}
