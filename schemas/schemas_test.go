package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal "github.com/jonathan/candidate-ranker/internal/schemas"
)

func TestSchemasAreValidJSON(t *testing.T) {
	for name, content := range map[string][]byte{
		"job_requirements":   JobRequirements,
		"candidate_profiles": CandidateProfiles,
	} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, content)
			var doc map[string]any
			require.NoError(t, json.Unmarshal(content, &doc))
			assert.Contains(t, doc, "$schema")
		})
	}
}

func TestJobRequirementsSchema(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{
			"Minimal job",
			`{"role_title": "Engineer"}`,
			true,
		},
		{
			"Full job",
			`{
				"role_title": "Senior Backend Engineer",
				"company_name": "Acme",
				"required_skills": ["Python"],
				"preferred_skills": ["Docker"],
				"experience": {"min_years": 3, "max_years": 8},
				"education": {"level": "bachelor", "fields": ["computer science"], "required": true},
				"location": {
					"cities": ["San Francisco, CA"],
					"remote": true,
					"max_distance_miles": 50,
					"strict_location_filter": true,
					"location_weight_multiplier": 1.5
				},
				"industries": ["fintech"],
				"description_text": "Build things.",
				"weights": {"skill_match": 0.3}
			}`,
			true,
		},
		{"Missing role title", `{"company_name": "Acme"}`, false},
		{"Empty role title", `{"role_title": ""}`, false},
		{"Unknown education level", `{"role_title": "x", "education": {"level": "kindergarten"}}`, false},
		{"Negative min years", `{"role_title": "x", "experience": {"min_years": -1}}`, false},
		{"Experience without min years", `{"role_title": "x", "experience": {"max_years": 5}}`, false},
		{"Unknown top-level property", `{"role_title": "x", "salary": 100}`, false},
		{"Weight above one", `{"role_title": "x", "weights": {"skill_match": 1.5}}`, false},
		{"Unknown weight key", `{"role_title": "x", "weights": {"foo": 1.0}}`, false},
		{
			"All weight keys accepted",
			`{"role_title": "x", "weights": {
				"skill_match": 0.30, "experience_match": 0.20, "education_match": 0.15,
				"industry_match": 0.15, "location_match": 0.10,
				"career_trajectory": 0.05, "keyword_density": 0.05
			}}`,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := internal.Validate(JobRequirements, []byte(tt.document))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCandidateProfilesSchema(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{"Single profile", `{"name": "Ada"}`, true},
		{"Array of profiles", `[{"name": "Ada"}, {"name": "Grace"}]`, true},
		{
			"Full profile",
			`{
				"id": "c-1",
				"name": "Ada",
				"headline": "Engineer",
				"summary": "Builds compilers.",
				"location": "London",
				"skills": ["Python"],
				"experiences": [
					{
						"title": "Engineer",
						"company": "Analytical Engines",
						"start_date": "2020-01",
						"end_date": "present",
						"description": "Did the work."
					}
				],
				"education": [{"degree": "Bachelor of Science", "field": "Mathematics"}]
			}`,
			true,
		},
		{"Missing name", `{"headline": "Engineer"}`, false},
		{"Empty name", `{"name": ""}`, false},
		{"Experience without title", `{"name": "Ada", "experiences": [{"company": "x"}]}`, false},
		{"Bad date format", `{"name": "Ada", "experiences": [{"title": "x", "start_date": "January 2020"}]}`, false},
		{"Day precision date", `{"name": "Ada", "experiences": [{"title": "x", "start_date": "2020-01-15"}]}`, true},
		{"Education without degree", `{"name": "Ada", "education": [{"school": "MIT"}]}`, false},
		{"Unknown property", `{"name": "Ada", "salary": 1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := internal.Validate(CandidateProfiles, []byte(tt.document))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
