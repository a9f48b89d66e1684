package ingestion

import (
	"fmt"
	"time"
)

// dateLayouts are the accepted date formats for profile documents, tried in
// order.
var dateLayouts = []string{"2006-01-02", "2006-01"}

// parseDate parses a profile date string. The literal "present" marks an
// open-ended (current) entry; the second return value reports it.
func parseDate(value string) (time.Time, bool, error) {
	if value == "present" {
		return time.Time{}, true, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("expected YYYY-MM, YYYY-MM-DD, or \"present\"")
}
