package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hr-helper/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRubricYAML(t *testing.T) {
	path := writeFile(t, "rubric.yaml", `
job_title: Data Analyst
min_education: D3
min_work_exp: 2
hard_skills: [SQL, Python, Tableau]
soft_skills: "Komunikasi, Presentasi"
weights:
  edu: 10
  work: 30
  org: 10
  hard: 40
  soft: 10
`)

	form, err := LoadRubric(NewRubricViper(path))
	require.NoError(t, err)

	assert.Equal(t, "Data Analyst", form.JobTitle)
	assert.Equal(t, "D3", form.MinEducation)
	assert.Equal(t, 2.0, form.MinWorkExp)
	assert.Equal(t, 0.0, form.MinOrgExp)

	rubric := form.Rubric()
	assert.Equal(t, 5, rubric.MinEducation)
	assert.Equal(t, []string{"SQL", "Python", "Tableau"}, rubric.HardSkills)
	assert.Equal(t, []string{"Komunikasi", "Presentasi"}, rubric.SoftSkills)
	assert.InDelta(t, 0.4, rubric.Weights.HardSkill, 1e-9)
}

func TestLoadRubricDefaults(t *testing.T) {
	path := writeFile(t, "rubric.yaml", "job_title: Programmer\n")

	form, err := LoadRubric(NewRubricViper(path))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultRubricForm(), form)
}

func TestLoadRubricRejectsBadWeights(t *testing.T) {
	path := writeFile(t, "rubric.json", `{"weights": {"edu": 50, "work": 50, "org": 50, "hard": 0, "soft": 0}}`)

	_, err := LoadRubric(NewRubricViper(path))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRubric)
	assert.Contains(t, err.Error(), "total weight must be 100%")
}

func TestLoadRubricMissingFile(t *testing.T) {
	_, err := LoadRubric(NewRubricViper(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
