package scoring

import (
	"github.com/jonathan/candidate-ranker/internal/geo"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// Amplification bands for the location weight multiplier. Scores at or above
// the high band are amplified, scores at or below the low band are dampened,
// and the range between is left untouched. The thresholds are carried over
// from the original heuristic and have no documented rationale; treat them as
// tuning candidates.
const (
	amplifyThreshold = 80
	dampenThreshold  = 40

	// maxLocationWeight bounds the effective weight for location-critical roles.
	maxLocationWeight = 0.5
)

// scoreLocation delegates to the location matcher and applies the job's
// location weight multiplier to both the raw score and the component weight.
func (e *Engine) scoreLocation(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	if job.Location == nil {
		return e.component(ComponentLocationMatch, 100, map[string]any{"status": "no_requirement"})
	}

	match := e.matcher.Match(candidate.Location, job.Location.AllLocations(), geo.MatchOptions{
		RemoteAllowed:    job.Location.Remote,
		HybridAllowed:    job.Location.Hybrid,
		MaxDistanceMiles: job.Location.MaxDistanceMiles,
	})

	raw := match.Confidence
	multiplier := job.Location.Multiplier()

	if multiplier != 1.0 {
		switch {
		case raw >= amplifyThreshold:
			raw = min(100, raw*multiplier)
		case raw <= dampenThreshold:
			raw = max(0, raw/multiplier)
		}
	}

	effectiveWeight := e.weights[ComponentLocationMatch]
	if multiplier > 1.0 {
		effectiveWeight = min(maxLocationWeight, effectiveWeight*multiplier)
	}

	details := map[string]any{
		"candidate_location": candidate.Location,
		"required_locations": job.Location.AllLocations(),
		"match_type":         match.Type.String(),
		"match_confidence":   match.Confidence,
		"remote_allowed":     job.Location.Remote,
		"hybrid_allowed":     job.Location.Hybrid,
		"match_details":      match.Details,
	}
	if match.DistanceMiles != nil {
		details["distance_miles"] = *match.DistanceMiles
	}
	if match.Location != nil {
		details["matched_location"] = match.Location.Name
	}
	if multiplier != 1.0 {
		details["location_weight_multiplier"] = multiplier
		details["effective_weight"] = effectiveWeight
	}

	return types.ScoreComponent{
		Name:          ComponentLocationMatch,
		Weight:        effectiveWeight,
		RawScore:      raw,
		WeightedScore: raw * effectiveWeight,
		Details:       details,
	}
}
