package searcher

import (
	"time"

	"github.com/rs/zerolog/log"
)

// MaxDepth guards against runaway configurations.
const MaxDepth = 16

type Option func(c *config)

type config struct {
	depth    int
	pruning  bool
	duration time.Duration
	metrics  Collector
}

// WithDepth sets the search horizon in plies (one ply = one side's move).
func WithDepth(plies int) Option {
	return func(c *config) {
		if plies > 0 {
			c.depth = plies
		}
	}
}

// WithoutPruning disables alpha-beta cutoffs, giving plain minimax.
func WithoutPruning() Option {
	return func(c *config) {
		c.pruning = false
	}
}

// WithPruning toggles alpha-beta cutoffs.
func WithPruning(enabled bool) Option {
	return func(c *config) {
		c.pruning = enabled
	}
}

// WithDuration bounds a search by wall-clock time. The search then deepens one
// ply at a time and keeps the result of the deepest fully searched horizon.
func WithDuration(duration time.Duration) Option {
	return func(c *config) {
		if duration > 0 {
			c.duration = duration
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewCollector()
	}
}

// Minimax is a depth-limited adversarial searcher. With pruning enabled it
// visits no more nodes than plain minimax and picks the same move: ties at the
// root always go to the earliest move in LegalMoves order.
type Minimax[M any] struct {
	config
}

func NewMinimax[M any](options ...Option) *Minimax[M] {
	m := &Minimax[M]{config{ // Default values
		depth:   4,
		pruning: true,
		metrics: NewDummyCollector(),
	}}
	for _, option := range options {
		option(&m.config)
	}
	if m.depth <= 0 || m.depth > MaxDepth {
		panic("search depth must be between 1 and MaxDepth")
	}
	return m
}

func (m *Minimax[M]) Depth() int    { return m.depth }
func (m *Minimax[M]) Pruning() bool { return m.pruning }

// Search returns the best move from root within the configured horizon.
func (m *Minimax[M]) Search(root State[M]) (Decision[M], error) {
	return m.SearchDepth(root, m.depth)
}

// SearchDepth is Search with an explicit horizon for this call.
func (m *Minimax[M]) SearchDepth(root State[M], depth int) (Decision[M], error) {
	if depth <= 0 {
		depth = 1
	}
	moves := root.LegalMoves()
	if root.Terminal() || len(moves) == 0 {
		return Decision[M]{}, ErrNoMoves
	}

	m.metrics.Start(depth, m.pruning)
	r := &run[M]{pruning: m.pruning, metrics: m.metrics}

	var decision Decision[M]
	if m.duration <= 0 {
		decision, _ = r.root(root, moves, depth)
		m.metrics.SetCompletedDepth(depth)
	} else {
		r.deadline = time.Now().Add(m.duration)
		for horizon := 1; horizon <= depth; horizon++ {
			candidate, complete := r.root(root, moves, horizon)
			if !complete && horizon > 1 {
				log.Debug().Msgf("search budget expired at horizon %d, keeping horizon %d", horizon, horizon-1)
				break
			}
			decision = candidate
			if complete {
				m.metrics.SetCompletedDepth(horizon)
			}
		}
	}

	decision.Metric = m.metrics.Complete()
	return decision, nil
}

type run[M any] struct {
	pruning  bool
	deadline time.Time
	aborted  bool
	metrics  Collector
}

func (r *run[M]) expired() bool {
	if r.aborted {
		return true
	}
	if !r.deadline.IsZero() && time.Now().After(r.deadline) {
		r.aborted = true
	}
	return r.aborted
}

func (r *run[M]) root(state State[M], moves []M, depth int) (Decision[M], bool) {
	r.aborted = false
	maximizing := state.Maximizing()
	alpha, beta := NegInf, PosInf

	best := Decision[M]{Move: moves[0]}
	found := false
	for _, move := range moves {
		if found && r.expired() {
			return best, false
		}
		value := r.value(state.Play(move), depth-1, alpha, beta)
		if r.aborted && found {
			return best, false
		}
		if !found || better(maximizing, value, best.Value) {
			best = Decision[M]{Move: move, Value: value}
			found = true
		}
		if r.pruning {
			if maximizing {
				alpha = max(alpha, best.Value)
			} else {
				beta = min(beta, best.Value)
			}
		}
	}
	return best, !r.aborted
}

func (r *run[M]) value(state State[M], depth int, alpha, beta float64) float64 {
	r.metrics.AddNode()
	if depth <= 0 || state.Terminal() || r.expired() {
		r.metrics.AddLeaf()
		return state.Evaluate()
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		r.metrics.AddLeaf()
		return state.Evaluate()
	}

	if state.Maximizing() {
		best := NegInf
		for _, move := range moves {
			best = max(best, r.value(state.Play(move), depth-1, alpha, beta))
			if r.pruning {
				alpha = max(alpha, best)
				if beta <= alpha {
					r.metrics.AddCutoff()
					break
				}
			}
		}
		return best
	}

	best := PosInf
	for _, move := range moves {
		best = min(best, r.value(state.Play(move), depth-1, alpha, beta))
		if r.pruning {
			beta = min(beta, best)
			if beta <= alpha {
				r.metrics.AddCutoff()
				break
			}
		}
	}
	return best
}

func better(maximizing bool, candidate, incumbent float64) bool {
	if maximizing {
		return candidate > incumbent
	}
	return candidate < incumbent
}
