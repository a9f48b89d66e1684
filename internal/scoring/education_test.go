package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func TestScoreEducation(t *testing.T) {
	engine := newTestEngine(t, nil)

	bachelorCS := []types.Education{
		{Degree: "Bachelor of Science", Field: "Computer Science", School: "State"},
	}

	tests := []struct {
		name      string
		req       *types.EducationRequirement
		education []types.Education
		expected  float64
	}{
		{
			name:     "No requirement",
			expected: 100,
		},
		{
			name:      "Meets level and field",
			req:       &types.EducationRequirement{Level: types.EducationBachelor, Fields: []string{"computer science"}},
			education: bachelorCS,
			expected:  100*0.6 + 100*0.4,
		},
		{
			name:      "Exceeds level",
			req:       &types.EducationRequirement{Level: types.EducationBachelor},
			education: []types.Education{{Degree: "Master of Science", Field: "CS"}},
			// No required fields with education present still scores the
			// neutral field share.
			expected: 100*0.6 + 75*0.4,
		},
		{
			name:      "One level short",
			req:       &types.EducationRequirement{Level: types.EducationMaster, Fields: []string{"computer science"}},
			education: bachelorCS,
			expected:  75*0.6 + 100*0.4,
		},
		{
			name:      "Two levels short",
			req:       &types.EducationRequirement{Level: types.EducationPhD, Fields: []string{"computer science"}},
			education: bachelorCS,
			expected:  50*0.6 + 100*0.4,
		},
		{
			name:     "No degree and required",
			req:      &types.EducationRequirement{Level: types.EducationBachelor, Required: true},
			expected: 0*0.6 + 75*0.4,
		},
		{
			name:     "No degree and optional",
			req:      &types.EducationRequirement{Level: types.EducationBachelor},
			expected: 50*0.6 + 75*0.4,
		},
		{
			name:      "Unknown required level treated as bachelor",
			req:       &types.EducationRequirement{Level: types.EducationUnknown},
			education: bachelorCS,
			expected:  100*0.6 + 75*0.4,
		},
		{
			name:      "Field mismatch",
			req:       &types.EducationRequirement{Level: types.EducationBachelor, Fields: []string{"biology"}},
			education: bachelorCS,
			expected:  100*0.6 + 30*0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobRequirements{RoleTitle: "Engineer", Education: tt.req}
			candidate := &types.CandidateProfile{Name: "Test", Education: tt.education}

			component := engine.scoreEducation(job, candidate)
			assert.InDelta(t, tt.expected, component.RawScore, 1e-9)
		})
	}
}

func TestHighestEducationLevel(t *testing.T) {
	engine := newTestEngine(t, nil)

	tests := []struct {
		name     string
		degrees  []string
		expected types.EducationLevel
	}{
		{"No education", nil, types.EducationUnknown},
		{"Bachelor", []string{"Bachelor of Arts"}, types.EducationBachelor},
		{"MBA counts as master", []string{"MBA"}, types.EducationMaster},
		{"Doctorate counts as PhD", []string{"Doctorate in Physics"}, types.EducationPhD},
		{"Highest wins", []string{"Bachelor of Science", "PhD in CS"}, types.EducationPhD},
		{"Unrecognized degree text", []string{"Certificate of Completion"}, types.EducationUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			education := make([]types.Education, len(tt.degrees))
			for i, d := range tt.degrees {
				education[i] = types.Education{Degree: d}
			}
			candidate := &types.CandidateProfile{Name: "Test", Education: education}
			assert.Equal(t, tt.expected, engine.highestEducationLevel(candidate))
		})
	}
}

func TestFieldMatchScore(t *testing.T) {
	tests := []struct {
		name      string
		required  []string
		education []types.Education
		expected  float64
	}{
		{"No required fields", nil, []types.Education{{Degree: "BS", Field: "CS"}}, 75},
		{"No education", []string{"cs"}, nil, 75},
		{
			"Substring overlap either direction",
			[]string{"computer science"},
			[]types.Education{{Degree: "BS", Field: "Science"}},
			100,
		},
		{
			"Empty candidate field ignored",
			[]string{"computer science"},
			[]types.Education{{Degree: "BS"}},
			30,
		},
		{
			"Mismatch",
			[]string{"biology"},
			[]types.Education{{Degree: "BS", Field: "History"}},
			30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fieldMatchScore(tt.required, tt.education))
		})
	}
}
