package mazegen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreshold is returned for score thresholds outside (0, 100].
	ErrInvalidThreshold = errors.New("score threshold must be between 0 and 100")
	// ErrInvalidPathWeight is returned for a path-length weight outside [0, 1].
	ErrInvalidPathWeight = errors.New("path length weight must be between 0 and 1")
)

// SessionConfig configures a generation session. The zero value of every
// field selects a sensible default, so &SessionConfig{Seed: n} is a
// complete configuration.
type SessionConfig struct {
	// Seed for the deterministic random stream. Non-positive seeds are
	// remapped to a valid generator state, identically on every run.
	Seed int64
	// Logger receives generation diagnostics. Nil means discard.
	Logger Logger
	// Weights blends the difficulty components. Nil means defaults.
	Weights *ScoreWeights
	// GoodEnoughScore is the baseline score at which Optimize skips the
	// trial loop. Zero means the default.
	GoodEnoughScore float64
	// ExcellentScore is the trial score that allows stopping the search
	// early. Zero means the default.
	ExcellentScore float64
	// PathLengthWeight sets the path-gain share of the optimizer's
	// composite ranking. Zero means the default.
	PathLengthWeight float64
}

// Session owns the random stream and tuning for one caller's generation
// work. All generation state lives here rather than in package globals,
// so independent sessions never interfere; a single Session is not safe
// for concurrent use, concurrent callers create one each.
type Session struct {
	seed       int64
	rng        *Rand
	logger     Logger
	weights    ScoreWeights
	goodEnough float64
	excellent  float64
	pathWeight float64
}

// NewSession validates the configuration and builds a session. A nil
// config is equivalent to an all-default one.
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		cfg = &SessionConfig{}
	}

	s := &Session{
		seed:       cfg.Seed,
		rng:        NewRand(cfg.Seed),
		logger:     cfg.Logger,
		weights:    DefaultScoreWeights(),
		goodEnough: defaultGoodEnoughScore,
		excellent:  defaultExcellentScore,
		pathWeight: defaultPathLengthWeight,
	}
	if s.logger == nil {
		s.logger = NopLogger{}
	}
	if cfg.Weights != nil {
		s.weights = *cfg.Weights
	}

	if cfg.GoodEnoughScore != 0 {
		if cfg.GoodEnoughScore < 0 || cfg.GoodEnoughScore > 100 {
			return nil, fmt.Errorf("%w: good enough %v", ErrInvalidThreshold, cfg.GoodEnoughScore)
		}
		s.goodEnough = cfg.GoodEnoughScore
	}
	if cfg.ExcellentScore != 0 {
		if cfg.ExcellentScore < 0 || cfg.ExcellentScore > 100 {
			return nil, fmt.Errorf("%w: excellent %v", ErrInvalidThreshold, cfg.ExcellentScore)
		}
		s.excellent = cfg.ExcellentScore
	}
	if cfg.PathLengthWeight != 0 {
		if cfg.PathLengthWeight < 0 || cfg.PathLengthWeight > 1 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPathWeight, cfg.PathLengthWeight)
		}
		s.pathWeight = cfg.PathLengthWeight
	}

	return s, nil
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// spawn derives a session with its own fresh random stream for one
// generation trial, sharing the parent's logger and tuning. Trials never
// share mutable state, which keeps derived-seed results independent of
// how many draws the parent has made.
func (s *Session) spawn(seed int64) *Session {
	return &Session{
		seed:       seed,
		rng:        NewRand(seed),
		logger:     s.logger,
		weights:    s.weights,
		goodEnough: s.goodEnough,
		excellent:  s.excellent,
		pathWeight: s.pathWeight,
	}
}

// Generate builds a plain maze with default tuning, owning a fresh
// session seeded with seed.
func Generate(width, height, cellSize int, seed int64) (*Maze, error) {
	s, err := NewSession(&SessionConfig{Seed: seed})
	if err != nil {
		return nil, err
	}
	return s.Generate(width, height, cellSize)
}

// GenerateEnhanced builds an enhanced maze with default tuning, owning a
// fresh session seeded with seed.
func GenerateEnhanced(width, height, cellSize int, seed int64, params EnhanceParams) (*Maze, error) {
	s, err := NewSession(&SessionConfig{Seed: seed})
	if err != nil {
		return nil, err
	}
	return s.GenerateEnhanced(width, height, cellSize, params)
}

// Optimize runs the best-of-N search with default tuning, owning a fresh
// session seeded with seed.
func Optimize(width, height, cellSize int, seed int64, attempts int) (*Maze, error) {
	s, err := NewSession(&SessionConfig{Seed: seed})
	if err != nil {
		return nil, err
	}
	return s.Optimize(width, height, cellSize, attempts)
}
