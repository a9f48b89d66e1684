package scoring

import (
	"strings"
	"time"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Sub-factor weights inside the experience component.
const (
	yearsWeight       = 0.40
	relevanceWeight   = 0.35
	recencyWeight     = 0.15
	progressionWeight = 0.10
)

// scoreExperience combines years of experience, relevance to the job text,
// recency, and seniority progression.
func (e *Engine) scoreExperience(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	totalYears := e.totalExperienceYears(candidate)

	yearsScore := e.yearsScore(job.Experience, totalYears)
	relevanceScore := e.relevanceScore(job, candidate)
	recencyScore := e.recencyScore(candidate)
	progressionScore := e.progressionScore(candidate)

	raw := yearsScore*yearsWeight +
		relevanceScore*relevanceWeight +
		recencyScore*recencyWeight +
		progressionScore*progressionWeight

	details := map[string]any{
		"total_years":       totalYears,
		"relevance_score":   relevanceScore,
		"recency_score":     recencyScore,
		"progression_score": progressionScore,
	}
	if job.Experience != nil {
		details["required_min"] = job.Experience.MinYears
		if job.Experience.MaxYears > 0 {
			details["required_max"] = job.Experience.MaxYears
		}
	}

	return e.component(ComponentExperienceMatch, raw, details)
}

func (e *Engine) yearsScore(req *types.ExperienceRequirement, totalYears float64) float64 {
	if req == nil {
		return 80 // no specific requirement
	}

	minYears := float64(req.MinYears)
	if totalYears < minYears {
		shortfall := minYears - totalYears
		return max(0, 100-shortfall*20)
	}

	if req.MaxYears > 0 && totalYears > float64(req.MaxYears) {
		// Slightly penalize over-qualification.
		excess := totalYears - float64(req.MaxYears)
		return max(70, 100-excess*5)
	}

	return 100
}

// relevanceScore measures text similarity between the job description and the
// candidate's experience descriptions.
func (e *Engine) relevanceScore(job *types.JobRequirements, candidate *types.CandidateProfile) float64 {
	if len(candidate.Experiences) == 0 {
		return 0
	}

	descriptions := make([]string, 0, len(candidate.Experiences))
	for _, exp := range candidate.Experiences {
		descriptions = append(descriptions, exp.Description)
	}

	similarity, ok := cosineSimilarity(job.DescriptionText, strings.Join(descriptions, " "))
	if !ok {
		return 50 // neutral default when similarity cannot be computed
	}
	return similarity * 100
}

func (e *Engine) recencyScore(candidate *types.CandidateProfile) float64 {
	if len(candidate.Experiences) == 0 {
		return 0
	}

	var mostRecent *time.Time
	for _, exp := range candidate.Experiences {
		if exp.IsCurrent {
			return 100
		}
		if exp.EndDate != nil && (mostRecent == nil || exp.EndDate.After(*mostRecent)) {
			mostRecent = exp.EndDate
		}
	}

	if mostRecent == nil {
		return 50
	}

	monthsGap := e.now().Sub(*mostRecent).Hours() / 24 / 30
	switch {
	case monthsGap < 3:
		return 95
	case monthsGap < 6:
		return 85
	case monthsGap < 12:
		return 70
	default:
		return max(30, 100-monthsGap*2)
	}
}

// progressionScore rewards seniority growth across adjacent roles, most recent
// first.
func (e *Engine) progressionScore(candidate *types.CandidateProfile) float64 {
	if len(candidate.Experiences) < 2 {
		return 50
	}

	score := 50.0
	for i := 0; i < len(candidate.Experiences)-1; i++ {
		current := e.seniorityLevel(candidate.Experiences[i].Title)
		previous := e.seniorityLevel(candidate.Experiences[i+1].Title)
		if current > previous {
			score += 10
		}
	}

	return min(score, 100)
}

// seniorityLevel returns the highest seniority rank whose keyword appears in
// the title, defaulting to mid-level.
func (e *Engine) seniorityLevel(title string) int {
	title = strings.ToLower(title)
	level := 3
	matched := false
	for keyword, rank := range e.tables.seniorityRank {
		if strings.Contains(title, keyword) {
			if !matched || rank > level {
				level = rank
			}
			matched = true
		}
	}
	return level
}

// totalExperienceYears sums employment durations in months and converts to
// years. Entries without a start date are skipped.
func (e *Engine) totalExperienceYears(candidate *types.CandidateProfile) float64 {
	totalMonths := 0
	for _, exp := range candidate.Experiences {
		if exp.StartDate.IsZero() {
			continue
		}
		totalMonths += e.tenureMonths(exp)
	}
	return float64(totalMonths) / 12
}

// tenureMonths is the calendar-month span of one experience entry, using now
// for open-ended entries.
func (e *Engine) tenureMonths(exp types.Experience) int {
	end := e.now()
	if exp.EndDate != nil {
		end = *exp.EndDate
	}
	months := monthsBetween(exp.StartDate, end)
	if months < 0 {
		return 0
	}
	return months
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
