package mazegen

// FindSolutionPath returns the shortest sequence of cells from the maze
// entrance to its exit, both inclusive, moving only through open walls.
// It returns an empty path when the maze has no entrance or exit yet —
// the pathfinder runs mid-construction too — or when no route exists,
// which after generation would indicate a defect in a mutating stage,
// not a normal outcome.
func FindSolutionPath(m *Maze) []CellPosition {
	return m.findSolutionPath()
}

// findSolutionPath is a breadth-first search over open passages. All
// edges are unweighted, so the first visit to the exit is a shortest
// path. The off-grid step through each opening is the terminal move for
// solvers and adds no cell to the sequence.
func (m *Maze) findSolutionPath() []CellPosition {
	if m.entrance == nil || m.exit == nil {
		return nil
	}

	start := m.entrance.Pos
	goal := m.exit.Pos

	// cameFrom doubles as the visited set; the start maps to itself.
	cameFrom := map[CellPosition]CellPosition{start: start}
	queue := []CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return m.rebuildPath(cameFrom, start, goal)
		}

		for _, d := range directionOrder {
			if m.cellAt(current).HasWall(d) {
				continue
			}
			next, inside := m.Neighbor(current, d)
			if !inside {
				continue // boundary opening, not a traversable cell
			}
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	return nil
}

// rebuildPath walks the parent links from goal back to start and
// reverses them into entrance-to-exit order.
func (m *Maze) rebuildPath(cameFrom map[CellPosition]CellPosition, start, goal CellPosition) []CellPosition {
	var reversed []CellPosition
	for at := goal; ; at = cameFrom[at] {
		reversed = append(reversed, at)
		if at == start {
			break
		}
	}

	path := make([]CellPosition, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}

// distancesFrom returns the breadth-first distance of every reachable
// cell from the origin, indexed [row][col]; unreachable cells hold -1.
// The enhancer uses this to judge how far apart two cells sit in the
// passage tree before it opens a wall between them.
func (m *Maze) distancesFrom(origin CellPosition) [][]int {
	dist := make([][]int, m.height)
	for r := range dist {
		dist[r] = make([]int, m.width)
		for c := range dist[r] {
			dist[r][c] = -1
		}
	}

	dist[origin.Row][origin.Col] = 0
	queue := []CellPosition{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range directionOrder {
			if m.cellAt(current).HasWall(d) {
				continue
			}
			next, inside := m.Neighbor(current, d)
			if !inside {
				continue
			}
			if dist[next.Row][next.Col] >= 0 {
				continue
			}
			dist[next.Row][next.Col] = dist[current.Row][current.Col] + 1
			queue = append(queue, next)
		}
	}

	return dist
}
