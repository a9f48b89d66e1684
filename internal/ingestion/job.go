package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/candidate-ranker/internal/schemas"
	"github.com/jonathan/candidate-ranker/internal/types"
	schemafiles "github.com/jonathan/candidate-ranker/schemas"
)

// LoadJob reads structured job requirements from a JSON file, validating the
// document against its schema and the decoded struct's cross-field rules.
func LoadJob(path string) (*types.JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if err := schemas.Validate(schemafiles.JobRequirements, data); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	return &job, nil
}
