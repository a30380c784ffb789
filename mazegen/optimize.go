package mazegen

import (
	"fmt"
	"math"
)

// Optimization thresholds and search shape. Scores are on the 0-100
// difficulty scale.
const (
	defaultGoodEnoughScore  = 85  // baseline at or above this skips optimization
	defaultExcellentScore   = 90  // trial at or above this may stop the search early
	defaultPathLengthWeight = 0.6 // composite ranking: path-length gain vs score gain

	explorationTrials  = 3    // uniform sampling before switching to local search
	perturbationSpread = 0.15 // perturbation half-width as a fraction of each knob range
)

// Sampling ranges for the enhancement knobs during optimization. Wall
// removal and persistence avoid their extremes: a zero removal factor
// wastes a trial and maximal persistence degenerates into near-straight
// corridors.
const (
	minWallRemoval = 0.05
	maxWallRemoval = 0.45
	minPersistence = 0.2
	maxPersistence = 0.9
)

// OptimizationCandidate pairs one trial's maze with the parameters and
// scores that produced it. Candidates are ranked and discarded; only the
// winner's maze survives the Optimize call.
type OptimizationCandidate struct {
	Maze       *Maze
	Params     EnhanceParams
	Seed       int64
	Score      float64
	PathLength int
	Composite  float64
}

// Optimize generates one plain baseline maze plus up to attempts
// enhanced trials on derived seeds, and returns the best result. Trials
// start with uniformly sampled parameters and switch to perturbing the
// best parameters found so far. The baseline is returned untouched when
// it already scores well enough, when every trial fails, or when no
// trial beats it on both score and path length.
func (s *Session) Optimize(width, height, cellSize, attempts int) (*Maze, error) {
	baseline, err := s.spawn(s.seed).Generate(width, height, cellSize)
	if err != nil {
		return nil, err
	}
	baseScore := baseline.difficulty.Score
	basePath := len(baseline.solution)

	if baseScore >= s.goodEnough {
		s.logger.Debug(fmt.Sprintf("baseline score %.1f already good enough, skipping optimization", baseScore))
		return baseline, nil
	}
	if attempts < 1 {
		return baseline, nil
	}

	var trials []*OptimizationCandidate
	var best *OptimizationCandidate // highest raw score so far, drives the local search
	for i := 1; i <= attempts; i++ {
		params := s.sampleParams(i, best)
		trialSeed := s.seed + int64(i)

		m, err := s.spawn(trialSeed).GenerateEnhanced(width, height, cellSize, params)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("optimization trial %d failed: %v", i, err))
			continue
		}

		candidate := &OptimizationCandidate{
			Maze:       m,
			Params:     params,
			Seed:       trialSeed,
			Score:      m.difficulty.Score,
			PathLength: len(m.solution),
		}
		trials = append(trials, candidate)
		if best == nil || candidate.Score > best.Score {
			best = candidate
		}

		if candidate.Score >= s.excellent && candidate.PathLength > basePath {
			s.logger.Debug(fmt.Sprintf("trial %d scored %.1f with a longer path, stopping early", i, candidate.Score))
			break
		}
	}

	if len(trials) == 0 {
		s.logger.Warning("all optimization trials failed, falling back to the plain baseline")
		return baseline, nil
	}

	selected := s.selectBest(trials, baseScore, basePath)
	if baseScore > selected.Score && basePath >= selected.PathLength {
		s.logger.Debug(fmt.Sprintf("baseline (score %.1f, path %d) beats best trial (score %.1f, path %d)",
			baseScore, basePath, selected.Score, selected.PathLength))
		return baseline, nil
	}

	s.logger.Debug(fmt.Sprintf("selected trial seed %d, score %.1f -> %.1f, path %d -> %d",
		selected.Seed, baseScore, selected.Score, basePath, selected.PathLength))
	return selected.Maze, nil
}

// sampleParams draws enhancement parameters for one trial: uniform
// within the knob ranges for the first exploration trials, then local
// perturbations of the best parameters found so far.
func (s *Session) sampleParams(trial int, best *OptimizationCandidate) EnhanceParams {
	if trial <= explorationTrials || best == nil {
		return EnhanceParams{
			WallRemovalFactor:      s.rng.InRange(minWallRemoval, maxWallRemoval),
			DeadEndBias:            s.rng.Float64(),
			DirectionalPersistence: s.rng.InRange(minPersistence, maxPersistence),
			ComplexityBalance:      s.rng.Float64(),
		}
	}

	return EnhanceParams{
		WallRemovalFactor:      s.perturb(best.Params.WallRemovalFactor, minWallRemoval, maxWallRemoval),
		DeadEndBias:            s.perturb(best.Params.DeadEndBias, 0, 1),
		DirectionalPersistence: s.perturb(best.Params.DirectionalPersistence, minPersistence, maxPersistence),
		ComplexityBalance:      s.perturb(best.Params.ComplexityBalance, 0, 1),
	}
}

// perturb nudges v by up to perturbationSpread of the knob range in
// either direction, clamped back into [low, high].
func (s *Session) perturb(v, low, high float64) float64 {
	span := (high - low) * perturbationSpread
	return math.Max(low, math.Min(high, v+s.rng.InRange(-span, span)))
}

// selectBest ranks the trials whose solution path is longer than the
// baseline's by a composite of relative path-length gain and relative
// score gain. When no trial beat the baseline's path length it falls
// back to the single highest raw score.
func (s *Session) selectBest(trials []*OptimizationCandidate, baseScore float64, basePath int) *OptimizationCandidate {
	var selected *OptimizationCandidate
	for _, c := range trials {
		if c.PathLength <= basePath {
			continue
		}
		pathGain := float64(c.PathLength-basePath) / math.Max(float64(basePath), 1)
		scoreGain := (c.Score - baseScore) / math.Max(baseScore, 1)
		c.Composite = s.pathWeight*pathGain + (1-s.pathWeight)*scoreGain
		if selected == nil || c.Composite > selected.Composite {
			selected = c
		}
	}
	if selected != nil {
		return selected
	}

	for _, c := range trials {
		if selected == nil || c.Score > selected.Score {
			selected = c
		}
	}
	return selected
}
