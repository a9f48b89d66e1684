package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// scoreCareerTrajectory evaluates career growth: advancement between adjacent
// roles, continuity of employment, and average tenure.
func (e *Engine) scoreCareerTrajectory(candidate *types.CandidateProfile) types.ScoreComponent {
	if len(candidate.Experiences) < 2 {
		return e.component(ComponentCareerTrajectory, 50, map[string]any{"status": "insufficient_history"})
	}

	points := 0.0
	for i := 0; i < len(candidate.Experiences)-1; i++ {
		if e.isAdvancement(candidate.Experiences[i+1], candidate.Experiences[i]) {
			points += 20
		} else {
			points += 10
		}
	}

	gaps := e.employmentGapMonths(candidate)
	switch {
	case gaps < 6:
		points += 30
	case gaps < 12:
		points += 20
	default:
		points += 10
	}

	avgTenure := e.averageTenureYears(candidate)
	switch {
	case avgTenure >= 2:
		points += 30
	case avgTenure >= 1:
		points += 20
	default:
		points += 10
	}

	raw := min(points, 100)

	return e.component(ComponentCareerTrajectory, raw, map[string]any{
		"employment_gaps_months": gaps,
		"average_tenure_years":   avgTenure,
		"shows_progression":      raw > 70,
	})
}

// isAdvancement reports whether the current title carries more seniority
// keywords than the previous one.
func (e *Engine) isAdvancement(previous, current types.Experience) bool {
	return e.advancementCount(current.Title) > e.advancementCount(previous.Title)
}

func (e *Engine) advancementCount(title string) int {
	count := 0
	lower := strings.ToLower(title)
	for _, keyword := range e.tables.advancementKeywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}

// employmentGapMonths sums gaps longer than a month between adjacent entries,
// most recent first.
func (e *Engine) employmentGapMonths(candidate *types.CandidateProfile) int {
	total := 0.0
	for i := 0; i < len(candidate.Experiences)-1; i++ {
		current := candidate.Experiences[i]
		previous := candidate.Experiences[i+1]

		if current.StartDate.IsZero() || previous.EndDate == nil {
			continue
		}
		gap := current.StartDate.Sub(*previous.EndDate).Hours() / 24 / 30
		if gap > 1 {
			total += gap
		}
	}
	return int(total)
}

func (e *Engine) averageTenureYears(candidate *types.CandidateProfile) float64 {
	totalMonths := 0
	jobs := 0
	for _, exp := range candidate.Experiences {
		if exp.StartDate.IsZero() {
			continue
		}
		totalMonths += e.tenureMonths(exp)
		jobs++
	}
	if jobs == 0 {
		return 0
	}
	return float64(totalMonths) / 12 / float64(jobs)
}
