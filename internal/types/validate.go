package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate validates the JobRequirements using the validator, plus cross-field
// checks the tag syntax cannot express.
func (j *JobRequirements) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return err
	}

	if j.Experience != nil && j.Experience.MaxYears > 0 && j.Experience.MaxYears < j.Experience.MinYears {
		return fmt.Errorf("experience max_years (%d) is below min_years (%d)",
			j.Experience.MaxYears, j.Experience.MinYears)
	}

	if j.Education != nil && j.Education.Required && j.Education.Level == EducationUnknown {
		return fmt.Errorf("education is marked required but no level is set")
	}

	return nil
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
