// Package export writes ranked candidate results for downstream presentation
// collaborators.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// WriteJSON writes the full ranked results, including component breakdowns, as
// indented JSON.
func WriteJSON(w io.Writer, ranked []types.RankedCandidate) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(ranked); err != nil {
		return fmt.Errorf("failed to encode ranked results: %w", err)
	}
	return nil
}
