package ingestion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-ranker/internal/types"
)

func TestLoadJob(t *testing.T) {
	t.Run("Full job document", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{
			"role_title": "Senior Backend Engineer",
			"required_skills": ["Python", "PostgreSQL"],
			"experience": {"min_years": 5, "max_years": 10},
			"education": {"level": "bachelor", "required": true},
			"location": {"cities": ["Austin, TX"], "remote": true, "strict_location_filter": true},
			"weights": {"skill_match": 0.5, "experience_match": 0.5}
		}`)

		job, err := LoadJob(path)
		require.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", job.RoleTitle)
		assert.Equal(t, []string{"Python", "PostgreSQL"}, job.RequiredSkills)
		require.NotNil(t, job.Experience)
		assert.Equal(t, 5, job.Experience.MinYears)
		require.NotNil(t, job.Education)
		assert.Equal(t, types.EducationBachelor, job.Education.Level)
		require.NotNil(t, job.Location)
		assert.True(t, job.Location.StrictFilter)
		assert.Equal(t, 0.5, job.Weights["skill_match"])
	})

	t.Run("Missing role title rejected", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{"company_name": "Acme"}`)

		_, err := LoadJob(path)
		assert.Error(t, err)
	})

	t.Run("Max years below min years rejected", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{
			"role_title": "Engineer",
			"experience": {"min_years": 5, "max_years": 2}
		}`)

		_, err := LoadJob(path)
		assert.Error(t, err)
	})

	t.Run("Unknown education level rejected", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{
			"role_title": "Engineer",
			"education": {"level": "kindergarten"}
		}`)

		_, err := LoadJob(path)
		assert.Error(t, err)
	})

	t.Run("Malformed JSON rejected", func(t *testing.T) {
		path := writeTempFile(t, "job.json", `{role_title: "Engineer"}`)

		_, err := LoadJob(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadJob(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})
}
