package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Sub-factor weights inside the education component.
const (
	levelWeight = 0.6
	fieldWeight = 0.4
)

// scoreEducation compares the candidate's highest inferred degree level and
// field of study against the job's education requirement.
func (e *Engine) scoreEducation(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	if job.Education == nil {
		return e.component(ComponentEducationMatch, 100, map[string]any{"status": "no_requirement"})
	}

	candidateLevel := e.highestEducationLevel(candidate)

	var levelScore float64
	switch {
	case candidateLevel == types.EducationUnknown && job.Education.Required:
		levelScore = 0
	case candidateLevel == types.EducationUnknown:
		levelScore = 50
	default:
		candidateRank := e.tables.educationRank[candidateLevel]
		requiredRank, ok := e.tables.educationRank[job.Education.Level]
		if !ok {
			requiredRank = e.tables.educationRank[types.EducationBachelor]
		}
		if candidateRank >= requiredRank {
			levelScore = 100
		} else {
			shortfall := float64(requiredRank - candidateRank)
			levelScore = max(0, 100-shortfall*25)
		}
	}

	fieldScore := fieldMatchScore(job.Education.Fields, candidate.Education)

	raw := levelScore*levelWeight + fieldScore*fieldWeight

	return e.component(ComponentEducationMatch, raw, map[string]any{
		"candidate_level": candidateLevel.String(),
		"required_level":  job.Education.Level.String(),
		"field_match":     fieldScore > 50,
	})
}

// highestEducationLevel infers the candidate's best degree from keyword matches
// against degree strings.
func (e *Engine) highestEducationLevel(candidate *types.CandidateProfile) types.EducationLevel {
	highest := types.EducationUnknown
	highestRank := 0

	for _, edu := range candidate.Education {
		degree := strings.ToLower(edu.Degree)
		for keyword, level := range e.tables.educationKeywords {
			if strings.Contains(degree, keyword) {
				if rank := e.tables.educationRank[level]; rank > highestRank {
					highest = level
					highestRank = rank
				}
			}
		}
	}

	return highest
}

// fieldMatchScore rewards substring overlap between candidate education fields
// and the job's required fields.
func fieldMatchScore(requiredFields []string, education []types.Education) float64 {
	if len(requiredFields) == 0 || len(education) == 0 {
		return 75
	}

	for _, edu := range education {
		field := strings.ToLower(edu.Field)
		if field == "" {
			continue
		}
		for _, required := range requiredFields {
			requiredLower := strings.ToLower(required)
			if strings.Contains(field, requiredLower) || strings.Contains(requiredLower, field) {
				return 100
			}
		}
	}

	return 30
}
