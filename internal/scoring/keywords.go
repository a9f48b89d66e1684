package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// topKeywordCount is how many high-frequency terms are extracted from the job
// description for density matching.
const topKeywordCount = 20

// scoreKeywordDensity measures how many of the job description's most frequent
// terms appear anywhere in the candidate's profile text.
func (e *Engine) scoreKeywordDensity(job *types.JobRequirements, candidate *types.CandidateProfile) types.ScoreComponent {
	keywords := e.extractKeywords(job.DescriptionText, topKeywordCount)
	if len(keywords) == 0 {
		return e.component(ComponentKeywordDensity, 50, map[string]any{"status": "no_keywords"})
	}

	candidateText := strings.ToLower(candidate.FullText())

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(candidateText, keyword) {
			matches++
		}
	}

	raw := float64(matches) / float64(len(keywords)) * 100

	return e.component(ComponentKeywordDensity, raw, map[string]any{
		"keywords_found": matches,
		"keywords_total": len(keywords),
	})
}

// extractKeywords returns the topN most frequent non-stopword terms of at
// least three characters, most frequent first. Ties break alphabetically so
// extraction is deterministic.
func (e *Engine) extractKeywords(text string, topN int) []string {
	frequency := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := e.tables.stopwords[word]; stop {
			continue
		}
		frequency[word]++
	}

	terms := make([]string, 0, len(frequency))
	for term := range frequency {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if frequency[terms[i]] != frequency[terms[j]] {
			return frequency[terms[i]] > frequency[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > topN {
		terms = terms[:topN]
	}
	return terms
}
