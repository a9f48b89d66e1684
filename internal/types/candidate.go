package types

import (
	"strings"
	"time"
)

// CandidateProfile holds everything the scoring engine knows about a candidate.
// Profiles are produced by an upstream source (profile fetcher or document
// extractor) and are never mutated by the core.
type CandidateProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Headline    string       `json:"headline,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Location    string       `json:"location,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	Experiences []Experience `json:"experiences,omitempty"`
	Education   []Education  `json:"education,omitempty"`
}

// Experience is a single employment entry. Entries are ordered most recent
// first, matching how profile sources emit them.
type Experience struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company,omitempty"`
	StartDate   time.Time  `json:"start_date,omitzero"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	Description string     `json:"description,omitempty"`
}

// Education is a single degree entry. Degree is free text; the level is
// inferred by the scoring engine from degree keywords.
type Education struct {
	Degree string `json:"degree" validate:"required"`
	Field  string `json:"field,omitempty"`
	School string `json:"school,omitempty"`
}

// FullText concatenates the candidate's free-text fields for keyword matching.
func (c *CandidateProfile) FullText() string {
	parts := make([]string, 0, 2+2*len(c.Experiences))
	parts = append(parts, c.Headline, c.Summary)
	for _, exp := range c.Experiences {
		parts = append(parts, exp.Title, exp.Description)
	}
	return strings.Join(parts, " ")
}
