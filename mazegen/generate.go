package mazegen

import "fmt"

// neighborMove pairs an adjacent unvisited position with the direction
// leading to it.
type neighborMove struct {
	pos CellPosition
	dir Direction
}

// unvisitedNeighbors lists the in-bounds, unvisited neighbors of p in the
// fixed direction order.
func (m *Maze) unvisitedNeighbors(p CellPosition) []neighborMove {
	var moves []neighborMove
	for _, d := range directionOrder {
		next, inside := m.Neighbor(p, d)
		if !inside {
			continue
		}
		if m.cellAt(next).Visited {
			continue
		}
		moves = append(moves, neighborMove{pos: next, dir: d})
	}
	return moves
}

// Generate builds a plain perfect maze with entrance, exit, solution path,
// and difficulty breakdown attached.
func (s *Session) Generate(width, height, cellSize int) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	m := newMaze(width, height, cellSize, s.seed)
	s.carvePassages(m)
	if err := s.placeOpenings(m); err != nil {
		return nil, err
	}

	m.solution = m.findSolutionPath()
	m.difficulty = s.score(m)
	s.logger.Debug(fmt.Sprintf("generated %dx%d maze, path %d cells, score %.1f", width, height, len(m.solution), m.difficulty.Score))
	return m, nil
}

// carvePassages runs the randomized iterative depth-first carve: push a
// random start cell, then repeatedly open a wall toward a uniformly
// chosen unvisited neighbor of the stack top, backtracking when none
// remain. Visiting every cell exactly once makes the open passages a
// spanning tree, so exactly one route exists between any two cells.
func (s *Session) carvePassages(m *Maze) {
	start := CellPosition{Row: s.rng.Intn(m.height), Col: s.rng.Intn(m.width)}
	m.cellAt(start).Visited = true
	stack := []CellPosition{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		candidates := m.unvisitedNeighbors(current)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // dead branch, backtrack
			continue
		}

		chosen := candidates[s.rng.Intn(len(candidates))]
		m.OpenWall(current, chosen.dir)
		m.cellAt(chosen.pos).Visited = true
		stack = append(stack, chosen.pos)
	}
}

// placeOpenings picks the entrance side uniformly at random, fixes the
// exit on the geometric opposite side, and clears one non-corner
// exterior wall on each. Positions are sampled from [1, dimension-2] so
// neither opening ever sits on a grid corner.
func (s *Session) placeOpenings(m *Maze) error {
	entranceSide := directionOrder[s.rng.Intn(len(directionOrder))]
	exitSide := entranceSide.Opposite()

	entrance, err := s.sampleOpening(m, entranceSide)
	if err != nil {
		return err
	}
	exit, err := s.sampleOpening(m, exitSide)
	if err != nil {
		return err
	}

	m.cellAt(entrance.Pos).SetWall(entrance.Side, false)
	m.cellAt(exit.Pos).SetWall(exit.Side, false)
	m.entrance = entrance
	m.exit = exit
	return nil
}

// sampleOpening picks a random non-corner boundary cell on the given side.
func (s *Session) sampleOpening(m *Maze, side Direction) (*Opening, error) {
	var pos CellPosition
	switch side {
	case North, South:
		if m.width < 3 {
			return nil, fmt.Errorf("%w: width %d", ErrNoOpeningSlot, m.width)
		}
		col := 1 + s.rng.Intn(m.width-2)
		row := 0
		if side == South {
			row = m.height - 1
		}
		pos = CellPosition{Row: row, Col: col}
	case East, West:
		if m.height < 3 {
			return nil, fmt.Errorf("%w: height %d", ErrNoOpeningSlot, m.height)
		}
		row := 1 + s.rng.Intn(m.height-2)
		col := 0
		if side == East {
			col = m.width - 1
		}
		pos = CellPosition{Row: row, Col: col}
	}

	return &Opening{Pos: pos, Side: side}, nil
}
