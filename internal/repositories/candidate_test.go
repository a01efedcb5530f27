package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hr-helper/internal/config"
	"alfredoptarigan/hr-helper/internal/models"
)

func newTestRepository(t *testing.T) CandidateRepository {
	t.Helper()
	db, err := config.InitDatabase(&config.Config{})
	require.NoError(t, err)
	return NewCandidateRepository(db)
}

func saveCandidate(t *testing.T, repo CandidateRepository, id string) models.Candidate {
	t.Helper()
	position, err := repo.NextPosition()
	require.NoError(t, err)

	c := models.NewCandidate(id, id+".pdf")
	c.Position = position
	c.HardSkills = []string{"Go", "SQL"}
	c.Scores.Final = 0.5
	require.NoError(t, repo.Save(&c))
	return c
}

func TestCandidateRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	saveCandidate(t, repo, "a")
	saveCandidate(t, repo, "b")

	got, err := repo.FindByID("b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Position)
	assert.Equal(t, []string{"Go", "SQL"}, got.HardSkills)
	assert.Equal(t, []string{}, got.SoftSkills)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, models.NoValue, got.Email)
	assert.InDelta(t, 0.5, got.Scores.Final, 1e-9)

	got.Scores.Final = 0.9
	require.NoError(t, repo.Save(got))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.InDelta(t, 0.9, all[1].Scores.Final, 1e-9)
}

func TestCandidateRepositoryStatus(t *testing.T) {
	repo := newTestRepository(t)
	saveCandidate(t, repo, "a")
	saveCandidate(t, repo, "b")

	require.NoError(t, repo.UpdateStatus("a", models.StatusAccepted))

	accepted, err := repo.FindByStatus(models.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "a", accepted[0].ID)

	pending, err := repo.FindByStatus(models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)

	assert.ErrorIs(t, repo.UpdateStatus("zzz", models.StatusRejected), ErrCandidateNotFound)
}

func TestCandidateRepositoryDelete(t *testing.T) {
	repo := newTestRepository(t)
	saveCandidate(t, repo, "a")

	require.NoError(t, repo.Delete("a"))
	_, err := repo.FindByID("a")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
	assert.ErrorIs(t, repo.Delete("a"), ErrCandidateNotFound)

	next, err := repo.NextPosition()
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}
