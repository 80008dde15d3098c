// Package config loads game settings from YAML and maps them onto the
// functional options of the evader, pursuer and engine packages.
package config

import (
	"errors"
	"fmt"
	"os"
	"pursuit/engine"
	"pursuit/evader"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/pursuer"
	"pursuit/searcher"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// Pursuer strategies.
const (
	Minimax = "minimax"
	Greedy  = "greedy"
	Random  = "random"
)

type Config struct {
	Evader   EvaderConfig  `yaml:"evader"`
	Pursuers PursuerConfig `yaml:"pursuers"`
	Engine   EngineConfig  `yaml:"engine"`
	Logging  LoggingConfig `yaml:"logging"`
}

type EvaderConfig struct {
	// Vision is the Manhattan radius within which pursuers are sensed.
	Vision int `yaml:"vision"`
	// Sensing is "distance" or "line-of-sight".
	Sensing      string  `yaml:"sensing"`
	History      int     `yaml:"history"`
	HeatWeight   float64 `yaml:"heat_weight"`
	ThreatRadius int     `yaml:"threat_radius"`
}

type PursuerConfig struct {
	// Strategy is "minimax" (default), "greedy" or "random".
	Strategy string `yaml:"strategy"`
	// Seed drives the random strategy.
	Seed    uint64 `yaml:"seed"`
	Vision  int    `yaml:"vision"`
	Sensing string `yaml:"sensing"`
	// Depth counts full pursuer/evader alternations.
	Depth   int           `yaml:"depth"`
	Pruning bool          `yaml:"pruning"`
	Budget  time.Duration `yaml:"budget,omitempty"`
	// Collision is "forbid" or "penalize".
	Collision string  `yaml:"collision"`
	Waypoints []Point `yaml:"waypoints,omitempty"`
	// PatrolCommitment keeps a patrol waypoint until it is reached.
	PatrolCommitment bool          `yaml:"patrol_commitment"`
	Weights          WeightsConfig `yaml:"weights"`
}

type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type WeightsConfig struct {
	Distance    float64 `yaml:"distance"`
	Closest     float64 `yaml:"closest"`
	Encircle    float64 `yaml:"encircle"`
	Oscillation float64 `yaml:"oscillation"`
	Spacing     float64 `yaml:"spacing"`
	Collision   float64 `yaml:"collision"`
	Capture     float64 `yaml:"capture"`
}

type EngineConfig struct {
	MaxTurns int `yaml:"max_turns"`
}

type LoggingConfig struct {
	// Level is one of trace, debug, info, warn or error.
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	w := pursuer.DefaultWeights
	return &Config{
		Evader: EvaderConfig{
			Vision:       meta.EVADER_VISION,
			Sensing:      game.DistanceOnly.String(),
			History:      meta.EVADER_HISTORY,
			HeatWeight:   meta.HEAT_WEIGHT,
			ThreatRadius: meta.THREAT_RADIUS,
		},
		Pursuers: PursuerConfig{
			Strategy:  Minimax,
			Seed:      1,
			Vision:    meta.PURSUER_VISION,
			Sensing:   game.LineOfSight.String(),
			Depth:     meta.SEARCH_DEPTH,
			Pruning:   true,
			Collision: pursuer.Forbid.String(),
			Weights: WeightsConfig{
				Distance:    w.Distance,
				Closest:     w.Closest,
				Encircle:    w.Encircle,
				Oscillation: w.Oscillation,
				Spacing:     w.Spacing,
				Collision:   w.Collision,
				Capture:     w.Capture,
			},
		},
		Engine: EngineConfig{
			MaxTurns: meta.MAX_TURNS,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load overlays the YAML file at path on the defaults, applies environment
// overrides and validates the result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("PURSUIT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("PURSUIT_STRATEGY"); v != "" {
		config.Pursuers.Strategy = v
	}
}

// Validate checks ranges and enumerations. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	if c.Evader.Vision < 0 || c.Pursuers.Vision < 0 {
		return fmt.Errorf("%w: vision must be non-negative", ErrInvalid)
	}
	if c.Evader.History < 0 {
		return fmt.Errorf("%w: history must be non-negative, got %d", ErrInvalid, c.Evader.History)
	}
	if c.Evader.HeatWeight < 0 {
		return fmt.Errorf("%w: heat_weight must be non-negative, got %v", ErrInvalid, c.Evader.HeatWeight)
	}
	if c.Evader.ThreatRadius < 0 {
		return fmt.Errorf("%w: threat_radius must be non-negative, got %d", ErrInvalid, c.Evader.ThreatRadius)
	}
	if _, err := game.ParsePolicy(c.Evader.Sensing); err != nil {
		return fmt.Errorf("%w: evader: %v", ErrInvalid, err)
	}
	if _, err := game.ParsePolicy(c.Pursuers.Sensing); err != nil {
		return fmt.Errorf("%w: pursuers: %v", ErrInvalid, err)
	}

	validStrategies := map[string]bool{Minimax: true, Greedy: true, Random: true}
	if !validStrategies[c.Pursuers.Strategy] {
		return fmt.Errorf("%w: unknown strategy %q (valid: minimax, greedy, random)", ErrInvalid, c.Pursuers.Strategy)
	}
	if c.Pursuers.Depth < 1 || c.Pursuers.Depth > maxAlternations {
		return fmt.Errorf("%w: depth must be between 1 and %d, got %d", ErrInvalid, maxAlternations, c.Pursuers.Depth)
	}
	if c.Pursuers.Budget < 0 {
		return fmt.Errorf("%w: budget must be non-negative, got %v", ErrInvalid, c.Pursuers.Budget)
	}
	if _, err := parseCollision(c.Pursuers.Collision); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.Engine.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalid, c.Engine.MaxTurns)
	}
	if _, err := c.Logging.ZerologLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// maxAlternations keeps the searcher's ply count within its limit.
const maxAlternations = searcher.MaxDepth / 2

func parseCollision(s string) (pursuer.CollisionPolicy, error) {
	switch s {
	case "forbid", "":
		return pursuer.Forbid, nil
	case "penalize":
		return pursuer.Penalize, nil
	}
	return pursuer.Forbid, fmt.Errorf("unknown collision policy %q", s)
}

// ZerologLevel maps the configured level name onto zerolog.
func (c LoggingConfig) ZerologLevel() (zerolog.Level, error) {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error":
		return zerolog.ParseLevel(c.Level)
	case "":
		return zerolog.InfoLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.Level)
}

// Options converts the evader settings. The grid size pre-allocates the heat map.
func (c EvaderConfig) Options(grid *game.Grid) []evader.Option {
	sensing, _ := game.ParsePolicy(c.Sensing)
	return []evader.Option{
		evader.WithVisionRadius(c.Vision),
		evader.WithSensing(sensing),
		evader.WithHistorySize(c.History),
		evader.WithHeatWeight(c.HeatWeight),
		evader.WithThreatRadius(c.ThreatRadius),
		evader.WithGridSize(grid.Width(), grid.Height()),
	}
}

func (c PursuerConfig) Options() []pursuer.Option {
	sensing, _ := game.ParsePolicy(c.Sensing)
	collision, _ := parseCollision(c.Collision)
	options := []pursuer.Option{
		pursuer.WithDepth(c.Depth),
		pursuer.WithVisionRadius(c.Vision),
		pursuer.WithSensing(sensing),
		pursuer.WithCollisionPolicy(collision),
		pursuer.WithPruning(c.Pruning),
		pursuer.WithBudget(c.Budget),
		pursuer.WithMetrics(),
		pursuer.WithWeights(pursuer.Weights{
			Distance:    c.Weights.Distance,
			Closest:     c.Weights.Closest,
			Encircle:    c.Weights.Encircle,
			Oscillation: c.Weights.Oscillation,
			Spacing:     c.Weights.Spacing,
			Collision:   c.Weights.Collision,
			Capture:     c.Weights.Capture,
		}),
	}
	if len(c.Waypoints) > 0 {
		waypoints := make([]game.Position, len(c.Waypoints))
		for i, p := range c.Waypoints {
			waypoints[i] = game.Position{X: p.X, Y: p.Y}
		}
		options = append(options, pursuer.WithWaypoints(waypoints...))
	}
	if c.PatrolCommitment {
		options = append(options, pursuer.WithPatrolCommitment())
	}
	return options
}

// Coordinator builds the configured pursuer strategy.
func (c PursuerConfig) Coordinator(p1, p2 game.Position) engine.Coordinator {
	switch c.Strategy {
	case Greedy:
		sensing, _ := game.ParsePolicy(c.Sensing)
		return pursuer.NewGreedy(game.Sensor{Radius: c.Vision, Policy: sensing})
	case Random:
		return pursuer.NewRandom(c.Seed)
	}
	return pursuer.New(p1, p2, c.Options()...)
}

func (c EngineConfig) Options() []engine.Option {
	return []engine.Option{engine.WithMaxTurns(c.MaxTurns)}
}
