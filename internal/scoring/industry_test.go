package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func TestScoreIndustry(t *testing.T) {
	engine := newTestEngine(t, nil)

	fintechProfile := &types.CandidateProfile{
		Name: "Test",
		Experiences: []types.Experience{
			{Title: "Engineer", Company: "Fintech Corp", Description: "Payments platform work."},
			{Title: "Engineer", Company: "Shop Co", Description: "E-commerce checkout systems."},
		},
	}

	tests := []struct {
		name       string
		industries []string
		candidate  *types.CandidateProfile
		expected   float64
	}{
		{"No requirement", nil, fintechProfile, 100},
		{"Full coverage", []string{"fintech", "e-commerce"}, fintechProfile, 100},
		{"Half coverage", []string{"fintech", "gaming"}, fintechProfile, 50},
		{"No coverage", []string{"healthcare"}, fintechProfile, 0},
		{
			"No work history",
			[]string{"fintech"},
			&types.CandidateProfile{Name: "Test"},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &types.JobRequirements{RoleTitle: "Engineer", Industries: tt.industries}
			component := engine.scoreIndustry(job, tt.candidate)
			assert.InDelta(t, tt.expected, component.RawScore, 1e-9)
		})
	}
}

func TestExtractIndustries(t *testing.T) {
	engine := newTestEngine(t, nil)

	candidate := &types.CandidateProfile{
		Name: "Test",
		Experiences: []types.Experience{
			{Title: "Engineer", Company: "HealthCare Systems", Description: "Built SaaS dashboards."},
		},
	}

	industries := engine.extractIndustries(candidate)
	assert.Equal(t, []string{"healthcare", "saas"}, industries)
}
