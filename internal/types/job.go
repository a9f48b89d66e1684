// Package types provides type definitions for structured data exchanged between the
// candidate-ranker core and its collaborators.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements is the structured representation of a job's hiring requirements.
// It is produced by an upstream job-description parser and consumed read-only by
// the scoring engine.
type JobRequirements struct {
	RoleTitle       string                 `json:"role_title" validate:"required"`
	CompanyName     string                 `json:"company_name,omitempty"`
	RequiredSkills  []string               `json:"required_skills,omitempty"`
	PreferredSkills []string               `json:"preferred_skills,omitempty"`
	Experience      *ExperienceRequirement `json:"experience,omitempty"`
	Education       *EducationRequirement  `json:"education,omitempty"`
	Location        *LocationRequirement   `json:"location,omitempty"`
	Industries      []string               `json:"industries,omitempty"`
	DescriptionText string                 `json:"description_text,omitempty"`

	// Weights overrides the engine's default component weights when non-empty.
	// Values must sum to 1.0 (within ±0.01).
	Weights map[string]float64 `json:"weights,omitempty"`
}

// ExperienceRequirement bounds the years of experience a job asks for.
// MaxYears of zero means no upper bound.
type ExperienceRequirement struct {
	MinYears int `json:"min_years" validate:"min=0"`
	MaxYears int `json:"max_years,omitempty" validate:"min=0"`
}

// EducationRequirement describes the degree a job asks for.
type EducationRequirement struct {
	Level    EducationLevel `json:"level"`
	Fields   []string       `json:"fields,omitempty"`
	Required bool           `json:"required"`
}

// LocationRequirement describes where a job expects candidates to be.
type LocationRequirement struct {
	Cities    []string `json:"cities,omitempty"`
	States    []string `json:"states,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Remote    bool     `json:"remote"`
	Hybrid    bool     `json:"hybrid"`
	OnSite    bool     `json:"on_site"`

	// MaxDistanceMiles enables radius matching when greater than zero.
	MaxDistanceMiles float64 `json:"max_distance_miles,omitempty" validate:"min=0"`

	// StrictFilter excludes candidates with low-confidence location matches
	// before scoring instead of merely penalizing them.
	StrictFilter bool `json:"strict_location_filter"`

	// WeightMultiplier scales the importance of the location component for
	// location-critical roles. 1.0 is neutral.
	WeightMultiplier float64 `json:"location_weight_multiplier,omitempty" validate:"min=0"`
}

// AllLocations returns the union of required cities, states and countries in
// the order they were specified.
func (l *LocationRequirement) AllLocations() []string {
	all := make([]string, 0, len(l.Cities)+len(l.States)+len(l.Countries))
	all = append(all, l.Cities...)
	all = append(all, l.States...)
	all = append(all, l.Countries...)
	return all
}

// Multiplier returns the location weight multiplier, treating the zero value
// (field absent from JSON) as neutral.
func (l *LocationRequirement) Multiplier() float64 {
	if l.WeightMultiplier == 0 {
		return 1.0
	}
	return l.WeightMultiplier
}
