// Package scoring computes multi-factor candidate scores against structured job
// requirements. An Engine fuses seven weighted signals into a single bounded
// score with supporting explanations.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Component names used in weight maps and score breakdowns.
const (
	ComponentSkillMatch       = "skill_match"
	ComponentExperienceMatch  = "experience_match"
	ComponentEducationMatch   = "education_match"
	ComponentIndustryMatch    = "industry_match"
	ComponentLocationMatch    = "location_match"
	ComponentCareerTrajectory = "career_trajectory"
	ComponentKeywordDensity   = "keyword_density"
)

// weightSumTolerance is the allowed floating-point slack when validating that
// weights sum to 1.0.
const weightSumTolerance = 0.01

// Weights maps component names to their share of the overall score.
type Weights map[string]float64

// DefaultWeights returns the standard component weighting.
func DefaultWeights() Weights {
	return Weights{
		ComponentSkillMatch:       0.30,
		ComponentExperienceMatch:  0.20,
		ComponentEducationMatch:   0.15,
		ComponentIndustryMatch:    0.15,
		ComponentLocationMatch:    0.10,
		ComponentCareerTrajectory: 0.05,
		ComponentKeywordDensity:   0.05,
	}
}

// componentNames is the closed set of valid weight keys.
var componentNames = map[string]struct{}{
	ComponentSkillMatch:       {},
	ComponentExperienceMatch:  {},
	ComponentEducationMatch:   {},
	ComponentIndustryMatch:    {},
	ComponentLocationMatch:    {},
	ComponentCareerTrajectory: {},
	ComponentKeywordDensity:   {},
}

// Validate checks that every key names a known component and that the weights
// sum to 1.0 within tolerance. A bad sum is a construction error and is never
// silently renormalized.
func (w Weights) Validate() error {
	sum := 0.0
	for name, weight := range w {
		if _, ok := componentNames[name]; !ok {
			return fmt.Errorf("unknown scoring component %q in weights", name)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// Engine scores candidates against job requirements. All reference tables are
// built once at construction and never mutated, so a single Engine is safe for
// concurrent scoring calls.
type Engine struct {
	weights Weights
	matcher *geo.Matcher
	tables  *lookupTables

	// now is replaceable in tests; scoring otherwise depends on wall time for
	// experience duration and recency.
	now func() time.Time
}

// NewEngine creates a scoring engine with the given weights. Pass nil weights
// to use DefaultWeights.
func NewEngine(weights Weights, matcher *geo.Matcher) (*Engine, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if matcher == nil {
		return nil, fmt.Errorf("matcher is required")
	}

	return &Engine{
		weights: weights,
		matcher: matcher,
		tables:  newLookupTables(),
		now:     time.Now,
	}, nil
}

// Weights returns the engine's component weighting.
func (e *Engine) Weights() Weights {
	return e.weights
}

// ScoreCandidate scores one candidate against the job and returns the full
// component breakdown. Inputs are never mutated.
func (e *Engine) ScoreCandidate(job *types.JobRequirements, candidate *types.CandidateProfile) (*types.CandidateScore, error) {
	if job == nil {
		return nil, fmt.Errorf("job requirements are required")
	}
	if candidate == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}

	components := []types.ScoreComponent{
		e.scoreSkills(job, candidate),
		e.scoreExperience(job, candidate),
		e.scoreEducation(job, candidate),
		e.scoreIndustry(job, candidate),
		e.scoreLocation(job, candidate),
		e.scoreCareerTrajectory(candidate),
		e.scoreKeywordDensity(job, candidate),
	}

	overall := 0.0
	for _, c := range components {
		overall += c.WeightedScore
	}
	// The cap is applied once after summation and the result is not
	// renormalized; a location weight multiplier can push the sum past 100.
	if overall > 100 {
		overall = 100
	}

	return &types.CandidateScore{
		CandidateID:         candidate.ID,
		OverallScore:        overall,
		Components:          components,
		MatchExplanation:    explainMatch(components),
		MissingRequirements: e.missingRequirements(job, candidate),
		AdditionalStrengths: e.additionalStrengths(job, candidate),
		Recommendations:     recommendations(components),
		ConfidenceLevel:     confidenceLevel(candidate),
	}, nil
}

// component assembles a ScoreComponent using the engine's configured weight for
// the named component.
func (e *Engine) component(name string, raw float64, details map[string]any) types.ScoreComponent {
	weight := e.weights[name]
	return types.ScoreComponent{
		Name:          name,
		Weight:        weight,
		RawScore:      raw,
		WeightedScore: raw * weight,
		Details:       details,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
