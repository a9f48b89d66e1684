package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/candidate-ranker/internal/scoring"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// csvComponents fixes the column order for per-component raw scores.
var csvComponents = []string{
	scoring.ComponentSkillMatch,
	scoring.ComponentExperienceMatch,
	scoring.ComponentEducationMatch,
	scoring.ComponentIndustryMatch,
	scoring.ComponentLocationMatch,
	scoring.ComponentCareerTrajectory,
	scoring.ComponentKeywordDensity,
}

// WriteCSV writes a flat summary of the ranked results: one row per candidate
// with rank, overall score, percentile, per-component raw scores, and the
// match explanation.
func WriteCSV(w io.Writer, ranked []types.RankedCandidate) error {
	writer := csv.NewWriter(w)

	header := []string{"rank", "candidate_id", "name", "overall_score", "percentile", "confidence"}
	header = append(header, csvComponents...)
	header = append(header, "explanation")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rc := range ranked {
		row := []string{
			strconv.Itoa(rc.Rank),
			rc.Profile.ID,
			rc.Profile.Name,
			formatScore(rc.Score.OverallScore),
			formatScore(rc.Percentile),
			strconv.FormatFloat(rc.Score.ConfidenceLevel, 'f', 2, 64),
		}
		for _, name := range csvComponents {
			component, ok := rc.Score.Component(name)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, formatScore(component.RawScore))
		}
		row = append(row, rc.Score.MatchExplanation)

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rc.Profile.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
