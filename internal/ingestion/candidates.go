// Package ingestion loads the externally produced input documents the ranker
// consumes: structured job requirements and candidate profile batches. Every
// document is validated against its JSON Schema before decoding.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
	schemafiles "github.com/jonathan/candidate-ranker/schemas"
)

// profileDoc is the wire shape of one candidate profile. Dates arrive as
// strings and are normalized into the data model's time values.
type profileDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Headline    string          `json:"headline"`
	Summary     string          `json:"summary"`
	Location    string          `json:"location"`
	Skills      []string        `json:"skills"`
	Experiences []experienceDoc `json:"experiences"`
	Education   []educationDoc  `json:"education"`
}

type experienceDoc struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
}

type educationDoc struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
	School string `json:"school"`
}

// LoadCandidates reads a candidate profile batch from a JSON file. The file
// may hold a single profile object or an array of them. Profiles without an
// ID are assigned one.
func LoadCandidates(path string) ([]*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	if err := schemas.Validate(schemafiles.CandidateProfiles, data); err != nil {
		return nil, fmt.Errorf("candidates file %s: %w", path, err)
	}

	docs, err := decodeProfileDocs(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse candidates file %s: %w", path, err)
	}

	profiles := make([]*types.CandidateProfile, 0, len(docs))
	for i, doc := range docs {
		profile, err := doc.toProfile()
		if err != nil {
			return nil, fmt.Errorf("candidate %d (%s): %w", i, doc.Name, err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// decodeProfileDocs accepts either a single profile object or an array.
func decodeProfileDocs(data []byte) ([]profileDoc, error) {
	var docs []profileDoc
	if err := json.Unmarshal(data, &docs); err == nil {
		return docs, nil
	}

	var single profileDoc
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []profileDoc{single}, nil
}

func (d *profileDoc) toProfile() (*types.CandidateProfile, error) {
	profile := &types.CandidateProfile{
		ID:       d.ID,
		Name:     d.Name,
		Headline: d.Headline,
		Summary:  d.Summary,
		Location: d.Location,
		Skills:   d.Skills,
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	for _, exp := range d.Experiences {
		entry := types.Experience{
			Title:       exp.Title,
			Company:     exp.Company,
			IsCurrent:   exp.IsCurrent,
			Description: exp.Description,
		}

		if exp.StartDate != "" {
			start, current, err := parseDate(exp.StartDate)
			if err != nil {
				return nil, fmt.Errorf("invalid start_date %q: %w", exp.StartDate, err)
			}
			if current {
				return nil, fmt.Errorf("invalid start_date %q: start dates cannot be open-ended", exp.StartDate)
			}
			entry.StartDate = start
		}

		switch exp.EndDate {
		case "":
			// Open-ended with no marker; leave EndDate nil.
		default:
			end, current, err := parseDate(exp.EndDate)
			if err != nil {
				return nil, fmt.Errorf("invalid end_date %q: %w", exp.EndDate, err)
			}
			if current {
				entry.IsCurrent = true
			} else {
				entry.EndDate = &end
			}
		}

		profile.Experiences = append(profile.Experiences, entry)
	}

	for _, edu := range d.Education {
		profile.Education = append(profile.Education, types.Education{
			Degree: edu.Degree,
			Field:  edu.Field,
			School: edu.School,
		})
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}
