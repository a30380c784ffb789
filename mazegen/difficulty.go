package mazegen

import "math"

// Normalization anchors for the difficulty components. Each component
// saturates at 1.0 once the measured quantity reaches its anchor, which
// keeps the blended score stable across maze sizes.
const (
	referenceBranchDensity   = 0.30 // decision points per cell at which branching saturates
	referencePathBranchShare = 0.50 // share of solution cells that are decision points
	referenceArea            = 1600 // 40x40 counts as a full-size maze
	referencePathLength      = 150  // raw solution length regarded as long

	mazeBranchShare = 0.6 // maze-wide branching weight inside the branch component
	pathBranchShare = 0.4 // on-path branching weight inside the branch component
)

// ScoreWeights blends the difficulty components into the final score.
// The fields are contribution caps: with the defaults a maze maxing out
// every component scores 100. The exact values are tuning heuristics;
// they are exposed here so callers can rebalance without forking the
// scorer.
type ScoreWeights struct {
	Length   float64 // solution length relative to the Manhattan lower bound
	Branch   float64 // decision-point complexity
	Size     float64 // area normalization
	Absolute float64 // raw path length correction
}

// DefaultScoreWeights returns the standard blend.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Length: 40, Branch: 30, Size: 15, Absolute: 15}
}

// DifficultyBreakdown records the independently computed difficulty
// components and the final blended score in [0, 100]. A breakdown is
// produced fresh on every scoring call and never mutated in place.
type DifficultyBreakdown struct {
	SolutionLength     int     // cells on the solution path
	MinimumLength      int     // Manhattan lower bound, in cells
	LengthFactor       float64 // [0,1), how far the path exceeds the lower bound
	DecisionPoints     int     // cells with more than two open sides, whole maze
	PathDecisionPoints int     // decision points on the solution path
	BranchComplexity   float64 // [0,1], blended decision-point density
	SizeAdjustment     float64 // [0,1], area normalization term
	AbsoluteAdjustment float64 // [0,1], raw-length correction term
	Score              float64 // [0,100], weighted blend
}

// clone returns a copy of the breakdown, nil-safe.
func (b *DifficultyBreakdown) clone() *DifficultyBreakdown {
	if b == nil {
		return nil
	}
	dup := *b
	return &dup
}

// ScoreDifficulty computes the difficulty breakdown of a fully generated
// maze using the default weights. Scoring reads the maze and nothing
// else: calling it twice on an unmodified maze returns identical values.
func ScoreDifficulty(m *Maze) *DifficultyBreakdown {
	return scoreWithWeights(m, DefaultScoreWeights())
}

// score computes the breakdown with the session's weights.
func (s *Session) score(m *Maze) *DifficultyBreakdown {
	return scoreWithWeights(m, s.weights)
}

func scoreWithWeights(m *Maze, w ScoreWeights) *DifficultyBreakdown {
	breakdown := &DifficultyBreakdown{}
	breakdown.DecisionPoints = m.countDecisionPoints()

	path := m.solution
	if len(path) == 0 {
		path = m.findSolutionPath()
	}
	if len(path) == 0 {
		// Unsolvable or not yet opened: worst case, nothing to blend.
		return breakdown
	}

	breakdown.SolutionLength = len(path)
	breakdown.MinimumLength = m.minimumPathLength()
	breakdown.PathDecisionPoints = m.countPathDecisionPoints(path)

	// Longer paths relative to the straight-line bound score higher;
	// the factor approaches 1 as the detour grows.
	if breakdown.MinimumLength > 0 && breakdown.SolutionLength >= breakdown.MinimumLength {
		breakdown.LengthFactor = 1 - float64(breakdown.MinimumLength)/float64(breakdown.SolutionLength)
	}

	area := float64(m.width * m.height)
	mazeDensity := float64(breakdown.DecisionPoints) / area
	pathShare := float64(breakdown.PathDecisionPoints) / float64(breakdown.SolutionLength)
	breakdown.BranchComplexity = mazeBranchShare*math.Min(1, mazeDensity/referenceBranchDensity) +
		pathBranchShare*math.Min(1, pathShare/referencePathBranchShare)

	breakdown.SizeAdjustment = math.Min(1, math.Sqrt(area/referenceArea))
	breakdown.AbsoluteAdjustment = math.Min(1, float64(breakdown.SolutionLength)/referencePathLength)

	score := w.Length*breakdown.LengthFactor +
		w.Branch*breakdown.BranchComplexity +
		w.Size*breakdown.SizeAdjustment +
		w.Absolute*breakdown.AbsoluteAdjustment
	breakdown.Score = math.Max(0, math.Min(100, score))

	return breakdown
}

// minimumPathLength is the Manhattan distance between entrance and exit
// expressed as a cell count, the shortest conceivable solution.
func (m *Maze) minimumPathLength() int {
	if m.entrance == nil || m.exit == nil {
		return 0
	}
	return m.entrance.Pos.ManhattanTo(m.exit.Pos) + 1
}

// countDecisionPoints counts cells exposing more than two traversable
// directions across the whole maze.
func (m *Maze) countDecisionPoints() int {
	count := 0
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			if m.grid[row][col].OpenSideCount() > 2 {
				count++
			}
		}
	}
	return count
}

// countPathDecisionPoints counts decision points among the given cells.
func (m *Maze) countPathDecisionPoints(path []CellPosition) int {
	count := 0
	for _, p := range path {
		if m.openSideCount(p) > 2 {
			count++
		}
	}
	return count
}
