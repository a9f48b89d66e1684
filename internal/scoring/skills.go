package scoring

import (
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// Partial-credit factors for non-exact skill matches.
const (
	relatedSkillCredit = 0.6
	partialSkillCredit = 0.4

	preferredExactCredit   = 0.5
	preferredRelatedCredit = 0.3
)

// scoreSkills evaluates required and preferred skill coverage. Required skills
// contribute up to 80 points, preferred skills up to 20. Partial credit can
// overshoot the 80-point share when a short required list accumulates multiple
// partial matches, so the raw score is clamped explicitly rather than relying
// on the overall cap.
func (e *Engine) scoreSkills(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	required := lowerSet(job.RequiredSkills)
	preferred := lowerSet(job.PreferredSkills)

	candidateSkills := lowerSet(candidate.Skills)
	for _, skill := range e.extractSkillsFromExperience(candidate) {
		candidateSkills[skill] = struct{}{}
	}

	requiredMatches := 0
	requiredPartials := 0.0
	for skill := range required {
		switch {
		case contains(candidateSkills, skill):
			requiredMatches++
		case e.hasRelatedSkill(skill, candidateSkills):
			requiredPartials += relatedSkillCredit
		case hasSubstringSkill(skill, candidateSkills):
			requiredPartials += partialSkillCredit
		}
	}

	preferredMatches := 0.0
	for skill := range preferred {
		switch {
		case contains(candidateSkills, skill):
			preferredMatches += preferredExactCredit
		case e.hasRelatedSkill(skill, candidateSkills):
			preferredMatches += preferredRelatedCredit
		}
	}

	requiredScore := 80.0
	if len(required) > 0 {
		requiredScore = (float64(requiredMatches) + requiredPartials) / float64(len(required)) * 80
	}

	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = preferredMatches / float64(len(preferred)) * 20
	}

	raw := clampScore(requiredScore + preferredScore)

	return e.component(ComponentSkillMatch, raw, map[string]any{
		"required_matches": requiredMatches,
		"required_total":   len(required),
		"preferred_total":  len(preferred),
	})
}

// hasRelatedSkill reports whether any candidate skill is related to the wanted
// skill via the fixed relation table (in either direction).
func (e *Engine) hasRelatedSkill(skill string, candidateSkills map[string]struct{}) bool {
	for candidateSkill := range candidateSkills {
		if e.isRelatedSkill(skill, candidateSkill) {
			return true
		}
	}
	return false
}

func (e *Engine) isRelatedSkill(a, b string) bool {
	for base, related := range e.tables.skillRelations {
		if a == base && inList(related, b) {
			return true
		}
		if b == base && inList(related, a) {
			return true
		}
	}
	return false
}

// hasSubstringSkill reports whether the wanted skill and any candidate skill
// contain each other.
func hasSubstringSkill(skill string, candidateSkills map[string]struct{}) bool {
	for candidateSkill := range candidateSkills {
		if strings.Contains(candidateSkill, skill) || strings.Contains(skill, candidateSkill) {
			return true
		}
	}
	return false
}

// extractSkillsFromExperience scans experience descriptions for known skill
// keywords.
func (e *Engine) extractSkillsFromExperience(candidate *types.CandidateProfile) []string {
	found := make(map[string]struct{})
	for _, exp := range candidate.Experiences {
		text := strings.ToLower(exp.Description)
		for _, skill := range e.tables.skillKeywords {
			if strings.Contains(text, skill) {
				found[skill] = struct{}{}
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	return skills
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func inList(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
