package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Result list limits keep insight output short enough for review surfaces.
const (
	maxMissingRequirements = 5
	maxStrengths           = 3
)

// explainMatch builds a one-line human-readable summary of the score.
func explainMatch(components []types.ScoreComponent) string {
	overall := 0.0
	for _, c := range components {
		overall += c.WeightedScore
	}
	if overall > 100 {
		overall = 100
	}

	var strength string
	switch {
	case overall >= 85:
		strength = "Excellent"
	case overall >= 70:
		strength = "Strong"
	case overall >= 55:
		strength = "Good"
	case overall >= 40:
		strength = "Fair"
	default:
		strength = "Weak"
	}

	best := components[0]
	for _, c := range components[1:] {
		if c.RawScore > best.RawScore {
			best = c
		}
	}

	return fmt.Sprintf("%s match (%.0f/100). Strongest area: %s (%.0f/100).",
		strength, overall, componentLabel(best.Name), best.RawScore)
}

// missingRequirements lists concrete requirement gaps, capped at five entries.
func (e *Engine) missingRequirements(job *types.JobRequirements, candidate *types.CandidateProfile) []string {
	var missing []string

	candidateSkills := lowerSet(candidate.Skills)
	for _, skill := range job.RequiredSkills {
		if !contains(candidateSkills, strings.ToLower(skill)) {
			missing = append(missing, fmt.Sprintf("Required skill: %s", skill))
		}
	}

	if job.Experience != nil {
		totalYears := e.totalExperienceYears(candidate)
		if totalYears < float64(job.Experience.MinYears) {
			shortfall := float64(job.Experience.MinYears) - totalYears
			missing = append(missing, fmt.Sprintf("Experience: %.1f years short of requirement", shortfall))
		}
	}

	if job.Education != nil && job.Education.Required {
		if e.highestEducationLevel(candidate) == types.EducationUnknown {
			missing = append(missing, fmt.Sprintf("Education: %s degree required", job.Education.Level))
		}
	}

	if len(missing) > maxMissingRequirements {
		missing = missing[:maxMissingRequirements]
	}
	return missing
}

// additionalStrengths surfaces valuable skills beyond the job's requirements.
func (e *Engine) additionalStrengths(job *types.JobRequirements, candidate *types.CandidateProfile) []string {
	var strengths []string

	candidateSkills := lowerSet(candidate.Skills)
	requiredSkills := lowerSet(job.RequiredSkills)
	for _, skill := range e.tables.valuableExtraSkills {
		if contains(candidateSkills, skill) && !contains(requiredSkills, skill) {
			strengths = append(strengths, fmt.Sprintf("Additional skill: %s", skill))
		}
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

// recommendations derives hiring guidance from the component breakdown. The
// weakest component becomes the suggested interview focus.
func recommendations(components []types.ScoreComponent) []string {
	overall := 0.0
	for _, c := range components {
		overall += c.WeightedScore
	}

	var recs []string
	switch {
	case overall >= 70:
		recs = append(recs, "Strong candidate - recommend interview")
	case overall >= 55:
		recs = append(recs, "Promising candidate - consider for interview")
	default:
		recs = append(recs, "May not meet minimum requirements")
	}

	weakest := components[0]
	for _, c := range components[1:] {
		if c.RawScore < weakest.RawScore {
			weakest = c
		}
	}
	if weakest.RawScore < 60 {
		recs = append(recs, fmt.Sprintf("Assess %s carefully in interview",
			strings.ReplaceAll(weakest.Name, "_", " ")))
	}

	return recs
}

// confidenceLevel reflects profile completeness in [0.3, 1.0]. Sparse profiles
// are still scored, just with less certainty.
func confidenceLevel(candidate *types.CandidateProfile) float64 {
	confidence := 1.0
	if candidate.Summary == "" {
		confidence -= 0.1
	}
	if len(candidate.Experiences) == 0 {
		confidence -= 0.3
	}
	if len(candidate.Skills) == 0 {
		confidence -= 0.2
	}
	if len(candidate.Education) == 0 {
		confidence -= 0.1
	}
	return max(0.3, confidence)
}

// componentLabel formats a component name for display, "skill_match" becoming
// "Skill Match".
func componentLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
