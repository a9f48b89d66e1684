package scoring

import "github.com/jonathan/candidate-ranker/internal/types"

// lookupTables bundles the fixed classification tables the scorers consult.
// They are constructed once per Engine and treated as read-only; nothing in
// this package holds mutable state at module level.
type lookupTables struct {
	// skillRelations maps a base skill to skills that earn related-match credit.
	skillRelations map[string][]string
	// skillKeywords are skills recognizable inside experience descriptions.
	skillKeywords []string
	// seniorityRank orders title keywords from junior to executive.
	seniorityRank map[string]int
	// advancementKeywords mark title seniority for adjacent-role comparison.
	advancementKeywords []string
	// educationKeywords maps degree-string fragments to levels.
	educationKeywords map[string]types.EducationLevel
	// educationRank orders levels for shortfall arithmetic.
	educationRank map[types.EducationLevel]int
	// industryKeywords are industries recognizable in company names and
	// experience descriptions.
	industryKeywords []string
	// valuableExtraSkills earn a strength note when present beyond requirements.
	valuableExtraSkills []string
	// stopwords are excluded from keyword extraction.
	stopwords map[string]struct{}
}

func newLookupTables() *lookupTables {
	stopwords := map[string]struct{}{}
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were",
	} {
		stopwords[w] = struct{}{}
	}

	return &lookupTables{
		skillRelations: map[string][]string{
			"javascript":       {"typescript", "node.js", "react", "angular", "vue"},
			"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
			"java":             {"spring", "hibernate", "maven", "gradle"},
			"cloud":            {"aws", "azure", "gcp", "devops"},
			"machine learning": {"tensorflow", "pytorch", "scikit-learn", "deep learning", "ai"},
		},
		skillKeywords: []string{
			"python", "java", "javascript", "typescript", "react", "angular",
			"node.js", "django", "flask", "spring", "docker", "kubernetes",
			"aws", "azure", "gcp", "sql", "nosql", "mongodb", "postgresql",
		},
		seniorityRank: map[string]int{
			"junior": 1, "associate": 2, "mid": 3, "senior": 4,
			"lead": 5, "principal": 6, "manager": 7, "director": 8,
		},
		advancementKeywords: []string{
			"senior", "lead", "principal", "manager", "director", "vp",
		},
		educationKeywords: map[string]types.EducationLevel{
			"phd":       types.EducationPhD,
			"doctorate": types.EducationPhD,
			"master":    types.EducationMaster,
			"mba":       types.EducationMaster,
			"bachelor":  types.EducationBachelor,
			"associate": types.EducationAssociate,
		},
		educationRank: map[types.EducationLevel]int{
			types.EducationHighSchool:   1,
			types.EducationAssociate:    2,
			types.EducationBachelor:     3,
			types.EducationMaster:       4,
			types.EducationPhD:          5,
			types.EducationProfessional: 4,
		},
		industryKeywords: []string{
			"fintech", "healthcare", "e-commerce", "saas", "education",
			"gaming", "social media", "cybersecurity", "ai", "blockchain",
		},
		valuableExtraSkills: []string{
			"leadership", "mentoring", "agile", "scrum", "architecture",
		},
		stopwords: stopwords,
	}
}
