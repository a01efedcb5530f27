package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/hr-helper/internal/config"
	"alfredoptarigan/hr-helper/internal/services"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runRankCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRankCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SetContext(context.WithValue(context.Background(), configKey, &config.Config{}))

	err := cmd.Execute()
	return out.String(), err
}

func TestCollectDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.pdf", "b")
	writeFile(t, dir, "a.PDF", "a")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755))

	docs, err := collectDocuments([]string{dir, filepath.Join(dir, "b.pdf")})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "a.PDF", docs[0].Name)
	assert.Equal(t, filepath.Join(dir, "a.PDF"), docs[0].ID)
	assert.Equal(t, []byte("a"), docs[0].Content)
	assert.Equal(t, "b.pdf", docs[1].Name)
}

func TestCollectDocumentsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cv.docx", "x")

	_, err := collectDocuments([]string{dir})
	assert.ErrorIs(t, err, ErrNoDocuments)

	_, err = collectDocuments([]string{filepath.Join(dir, "missing.pdf")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRankPrintsUnreadableDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not a pdf")

	out, err := runRankCmd(t, dir)
	require.NoError(t, err)

	// Default rubric: only the zero organization minimum is met.
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "broken.pdf")
	assert.Contains(t, out, "5%")
	assert.Contains(t, out, "Not a fit")
}

func TestRankWithRubricFileAsJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not a pdf")
	rubric := writeFile(t, t.TempDir(), "rubric.yaml", `
job_title: Community Manager
min_org_exp: 0
weights:
  edu: 0
  work: 0
  org: 100
  hard: 0
  soft: 0
`)

	out, err := runRankCmd(t, "--rubric", rubric, "--json", dir)
	require.NoError(t, err)

	var ranking []services.CandidateSummary
	require.NoError(t, json.Unmarshal([]byte(out), &ranking))
	require.Len(t, ranking, 1)
	assert.Equal(t, "broken.pdf", ranking[0].Name)
	assert.InDelta(t, 1.0, ranking[0].FinalScore, 1e-9)
	assert.Equal(t, "100%", ranking[0].Score)
}

func TestRankRejectsInvalidRubric(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not a pdf")
	rubric := writeFile(t, t.TempDir(), "rubric.yaml", "weights:\n  soft: 50\n")

	_, err := runRankCmd(t, "--rubric", rubric, dir)
	assert.ErrorContains(t, err, "total weight must be 100%, got 140%")
}

func TestRankWatchRequiresRubric(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not a pdf")

	_, err := runRankCmd(t, "--watch", dir)
	assert.ErrorContains(t, err, "--watch requires --rubric")
}
