package service

import (
	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/codeprimate/webmaze-api/service/i"
)

// Generator runs the mazegen pipeline behind the i.MazeGenerator
// interface. Every call owns a fresh generation session, so concurrent
// calls with distinct seeds never share state.
type Generator struct {
	logger mazegen.Logger
}

// NewGenerator creates a Generator that injects the given logger into
// each generation session. A nil logger discards diagnostics.
func NewGenerator(logger mazegen.Logger) (i.MazeGenerator, error) {
	return &Generator{logger: logger}, nil
}

func (g *Generator) session(seed int64) (*mazegen.Session, error) {
	return mazegen.NewSession(&mazegen.SessionConfig{
		Seed:   seed,
		Logger: g.logger,
	})
}

// Plain builds an unenhanced maze.
func (g *Generator) Plain(width, height, cellSize int, seed int64) (*mazegen.Maze, error) {
	s, err := g.session(seed)
	if err != nil {
		return nil, err
	}
	return s.Generate(width, height, cellSize)
}

// Enhanced builds a maze with persistent carving and strategic wall
// removal driven by the given parameters.
func (g *Generator) Enhanced(width, height, cellSize int, seed int64, params mazegen.EnhanceParams) (*mazegen.Maze, error) {
	s, err := g.session(seed)
	if err != nil {
		return nil, err
	}
	return s.GenerateEnhanced(width, height, cellSize, params)
}

// Optimized runs the best-of-N parameter search and returns the winning
// maze.
func (g *Generator) Optimized(width, height, cellSize int, seed int64, attempts int) (*mazegen.Maze, error) {
	s, err := g.session(seed)
	if err != nil {
		return nil, err
	}
	return s.Optimize(width, height, cellSize, attempts)
}
