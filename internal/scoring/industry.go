package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// scoreIndustry measures coverage of the job's required industries against
// industries detected in the candidate's work history.
func (e *Engine) scoreIndustry(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	if len(job.Industries) == 0 {
		return e.component(ComponentIndustryMatch, 100, map[string]any{"status": "no_requirement"})
	}

	candidateIndustries := e.extractIndustries(candidate)

	matches := 0
	for _, required := range job.Industries {
		requiredLower := strings.ToLower(required)
		for _, industry := range candidateIndustries {
			if strings.Contains(strings.ToLower(industry), requiredLower) {
				matches++
				break
			}
		}
	}

	raw := float64(matches) / float64(len(job.Industries)) * 100

	return e.component(ComponentIndustryMatch, raw, map[string]any{
		"required_industries":  job.Industries,
		"candidate_industries": candidateIndustries,
		"matches":              matches,
	})
}

// extractIndustries scans company names and experience descriptions for known
// industry keywords.
func (e *Engine) extractIndustries(candidate *types.CandidateProfile) []string {
	found := make(map[string]struct{})
	for _, exp := range candidate.Experiences {
		text := strings.ToLower(exp.Company + " " + exp.Description)
		for _, keyword := range e.tables.industryKeywords {
			if strings.Contains(text, keyword) {
				found[keyword] = struct{}{}
			}
		}
	}

	industries := make([]string, 0, len(found))
	for industry := range found {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	return industries
}
