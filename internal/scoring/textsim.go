package scoring

import (
	"math"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z]+`)

// cosineSimilarity computes term-frequency cosine similarity between two texts
// in [0,1]. The second return value is false when either text yields no terms,
// letting callers fall back to a defined default instead of treating it as a
// similarity of zero.
func cosineSimilarity(a, b string) (float64, bool) {
	va := termVector(a)
	vb := termVector(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0, false
	}

	dot := 0.0
	for term, count := range va {
		dot += float64(count) * float64(vb[term])
	}

	norm := vectorNorm(va) * vectorNorm(vb)
	if norm == 0 {
		return 0, false
	}

	return dot / norm, true
}

func termVector(text string) map[string]int {
	vector := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) > 2 {
			vector[word]++
		}
	}
	return vector
}

func vectorNorm(vector map[string]int) float64 {
	sum := 0.0
	for _, count := range vector {
		sum += float64(count) * float64(count)
	}
	return math.Sqrt(sum)
}
