// Package ranking pre-filters, scores, and orders candidate batches against a
// single job's requirements.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/scoring"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// defaultWorkers bounds the scoring pool when the caller does not set one.
const defaultWorkers = 4

// minimumStrictConfidence is the confidence floor for strict location
// filtering; below it a candidate is excluded even for an acceptable tier.
const minimumStrictConfidence = 60

// strictAcceptableTypes are the match tiers that survive strict location
// filtering.
var strictAcceptableTypes = map[geo.MatchType]struct{}{
	geo.MatchExactCity:    {},
	geo.MatchMetroArea:    {},
	geo.MatchWithinRadius: {},
	geo.MatchRemote:       {},
}

// scoreFunc scores one candidate against a job.
type scoreFunc func(*types.JobRequirements, *types.CandidateProfile) (*types.CandidateScore, error)

// Ranker scores candidate batches and produces a ranked, percentiled ordering.
type Ranker struct {
	matcher *geo.Matcher
	logger  *zap.Logger
	workers int

	// score is replaceable in tests; it otherwise delegates to the engine.
	score scoreFunc
}

// NewRanker creates a Ranker. Workers of zero or less selects the default
// pool size.
func NewRanker(engine *scoring.Engine, matcher *geo.Matcher, logger *zap.Logger, workers int) (*Ranker, error) {
	if engine == nil {
		return nil, fmt.Errorf("scoring engine is required")
	}
	if matcher == nil {
		return nil, fmt.Errorf("location matcher is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Ranker{
		matcher: matcher,
		logger:  logger,
		workers: workers,
		score:   engine.ScoreCandidate,
	}, nil
}

// ShouldFilter reports whether the candidate is excluded by strict location
// filtering, with a reason when it is. It applies only when the job sets the
// strict location flag; exclusion is not an error condition.
func (r *Ranker) ShouldFilter(job *types.JobRequirements, candidate *types.CandidateProfile) (bool, string) {
	if job.Location == nil || !job.Location.StrictFilter {
		return false, ""
	}

	match := r.matcher.Match(candidate.Location, job.Location.AllLocations(), geo.MatchOptions{
		RemoteAllowed:    job.Location.Remote,
		HybridAllowed:    job.Location.Hybrid,
		MaxDistanceMiles: job.Location.MaxDistanceMiles,
	})

	if _, ok := strictAcceptableTypes[match.Type]; !ok {
		return true, fmt.Sprintf("location mismatch: %s", match.Details)
	}
	if match.Confidence < minimumStrictConfidence {
		return true, fmt.Sprintf("location confidence too low: %.0f%%", match.Confidence)
	}

	return false, ""
}

type scoredCandidate struct {
	profile *types.CandidateProfile
	score   *types.CandidateScore
}

// Rank applies the pre-filter, scores the surviving candidates concurrently,
// and returns them sorted by overall score with rank and percentile assigned.
// A failure while scoring one candidate is logged and that candidate skipped;
// it never aborts the batch.
func (r *Ranker) Rank(ctx context.Context, job *types.JobRequirements, candidates []*types.CandidateProfile) ([]types.RankedCandidate, error) {
	if job == nil {
		return nil, fmt.Errorf("job requirements are required")
	}

	survivors := make([]*types.CandidateProfile, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if filtered, reason := r.ShouldFilter(job, candidate); filtered {
			r.logger.Info("candidate excluded by strict location filter",
				zap.String("candidate", candidate.Name),
				zap.String("reason", reason))
			continue
		}
		survivors = append(survivors, candidate)
	}

	// Score concurrently; results land in fixed slots so ordering stays
	// deterministic regardless of worker scheduling. All scores must be
	// collected before sorting because percentile depends on the final count.
	scored := make([]*scoredCandidate, len(survivors))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, candidate := range survivors {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			score, err := r.safeScore(job, candidate)
			if err != nil {
				r.logger.Warn("scoring failed, skipping candidate",
					zap.String("candidate", candidate.Name),
					zap.Error(err))
				return nil
			}
			scored[i] = &scoredCandidate{profile: candidate, score: score}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]scoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if sc != nil {
			results = append(results, *sc)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score.OverallScore > results[j].score.OverallScore
	})

	total := len(results)
	ranked := make([]types.RankedCandidate, total)
	for i, sc := range results {
		percentile := 100.0
		if total > 1 {
			percentile = float64(total-i-1) / float64(total) * 100
		}
		ranked[i] = types.RankedCandidate{
			Profile:    sc.profile,
			Score:      sc.score,
			Rank:       i + 1,
			Percentile: percentile,
		}
	}

	return ranked, nil
}

// safeScore isolates per-candidate scoring so a panic on malformed profile
// data surfaces as an error for that candidate only.
func (r *Ranker) safeScore(job *types.JobRequirements, candidate *types.CandidateProfile) (score *types.CandidateScore, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			score = nil
			err = fmt.Errorf("scoring panicked: %v", rec)
		}
	}()
	return r.score(job, candidate)
}
