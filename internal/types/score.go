package types

// ScoreComponent is one factor of a candidate's overall score.
type ScoreComponent struct {
	Name          string         `json:"name"`
	Weight        float64        `json:"weight"`
	RawScore      float64        `json:"raw_score"`      // 0-100
	WeightedScore float64        `json:"weighted_score"` // raw_score * weight
	Details       map[string]any `json:"details,omitempty"`
}

// CandidateScore is the complete scoring result for one candidate against one job.
type CandidateScore struct {
	CandidateID         string           `json:"candidate_id"`
	OverallScore        float64          `json:"overall_score"` // 0-100
	Components          []ScoreComponent `json:"components"`
	MatchExplanation    string           `json:"match_explanation,omitempty"`
	MissingRequirements []string         `json:"missing_requirements,omitempty"`
	AdditionalStrengths []string         `json:"additional_strengths,omitempty"`
	Recommendations     []string         `json:"recommendations,omitempty"`

	// ConfidenceLevel reflects profile completeness, 0-1. A sparse profile
	// still gets scored but with lower confidence.
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Component returns the named component and whether it exists.
func (s *CandidateScore) Component(name string) (ScoreComponent, bool) {
	for _, c := range s.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ScoreComponent{}, false
}

// RankedCandidate pairs a candidate with its score and position in the ranked field.
type RankedCandidate struct {
	Profile    *CandidateProfile `json:"profile"`
	Score      *CandidateScore   `json:"score"`
	Rank       int               `json:"rank"`       // 1-based
	Percentile float64           `json:"percentile"` // 0-100, share of the field outperformed
}
