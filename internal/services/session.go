package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/hr-helper/internal/extractor"
	"alfredoptarigan/hr-helper/internal/metrics"
	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/repositories"
	"alfredoptarigan/hr-helper/internal/scoring"
)

var ErrInvalidStatus = errors.New("invalid candidate status")

type CandidateSummary struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Status         models.CandidateStatus `json:"status"`
	FinalScore     float64                `json:"final_score"`
	Score          string                 `json:"score"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}

type CandidateDetail struct {
	models.Candidate
	EducationLabel string                 `json:"education_label"`
	Recommendation scoring.Recommendation `json:"recommendation"`
	Links          []ContactLink          `json:"links"`
}

type CandidateList struct {
	Items  []CandidateSummary             `json:"items"`
	Counts map[models.CandidateStatus]int `json:"counts"`
}

// Session is the state of one review session: the active rubric, every
// candidate extracted so far and the reviewer's current selection.
// Extraction and scoring stay stateless; Session only feeds them.
type Session struct {
	mu        sync.RWMutex
	form      models.RubricForm
	rubric    models.RubricConfig
	processed map[string]struct{}
	selected  string

	repo    repositories.CandidateRepository
	runner  BatchRunner
	reports ReportService
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewSession(
	repo repositories.CandidateRepository,
	runner BatchRunner,
	reports ReportService,
	form models.RubricForm,
	logger *zap.Logger,
	m *metrics.Metrics,
) (*Session, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		form:      form,
		rubric:    form.Rubric(),
		processed: make(map[string]struct{}),
		repo:      repo,
		runner:    runner,
		reports:   reports,
		logger:    logger,
		metrics:   m,
	}, nil
}

func (s *Session) Rubric() models.RubricForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

func (s *Session) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Ingest extracts and scores every document whose ID has not been stored in
// this session. Unreadable documents still produce a candidate. A document
// counts as processed only once it is saved, so a failed call can be retried.
func (s *Session) Ingest(docs []models.Document) ([]CandidateSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.Document, 0, len(docs))
	queued := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if _, seen := s.processed[doc.ID]; seen {
			continue
		}
		if _, dup := queued[doc.ID]; dup {
			continue
		}
		queued[doc.ID] = struct{}{}
		pending = append(pending, doc)
	}
	if len(pending) == 0 {
		return []CandidateSummary{}, nil
	}

	rubric := s.rubric.Clone()
	candidates := s.runner.Run(pending, rubric.HardSkills, rubric.SoftSkills)

	summaries := make([]CandidateSummary, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]

		position, err := s.repo.NextPosition()
		if err != nil {
			return summaries, err
		}
		c.Position = position
		c.Scores = scoring.Score(*c, rubric)

		if err := s.repo.Save(c); err != nil {
			return summaries, err
		}
		s.processed[c.ID] = struct{}{}
		s.metrics.FinalScore.Observe(c.Scores.Final)
		summaries = append(summaries, summarize(*c))
	}

	s.logger.Info("candidates ingested", zap.Int("count", len(summaries)))
	return summaries, nil
}

// UpdateRubric validates the form and re-scores every stored candidate.
// Skill matches are recomputed from the stored text; documents are not
// read again.
func (s *Session) UpdateRubric(form models.RubricForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = form
	s.rubric = form.Rubric()
	return s.rescoreLocked()
}

func (s *Session) rescoreLocked() error {
	candidates, err := s.repo.FindAll()
	if err != nil {
		return err
	}

	for i := range candidates {
		c := &candidates[i]
		Rescore(c, s.rubric)
		if err := s.repo.Save(c); err != nil {
			return err
		}
	}

	s.metrics.RescorePasses.Inc()
	s.logger.Info("candidates re-scored", zap.Int("count", len(candidates)))
	return nil
}

// Rescore refreshes c's skill matches against rubric and recomputes its score.
func Rescore(c *models.Candidate, rubric models.RubricConfig) {
	if c.Unreadable {
		c.HardSkills = []string{}
		c.SoftSkills = []string{}
	} else {
		c.HardSkills = extractor.MatchSkills(c.Text, rubric.HardSkills)
		c.SoftSkills = extractor.MatchSkills(c.Text, rubric.SoftSkills)
	}
	c.Scores = scoring.Score(*c, rubric)
}

// List returns candidates with the given status whose name contains query,
// ignoring case, plus per-status counts under the same query. An empty
// status lists every candidate.
func (s *Session) List(status models.CandidateStatus, query string) (*CandidateList, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	list := &CandidateList{
		Items:  []CandidateSummary{},
		Counts: make(map[models.CandidateStatus]int, len(models.Statuses)),
	}
	for _, st := range models.Statuses {
		list.Counts[st] = 0
	}

	for _, c := range candidates {
		if !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		list.Counts[c.Status]++
		if status == "" || c.Status == status {
			list.Items = append(list.Items, summarize(c))
		}
	}
	return list, nil
}

// Ranking returns every candidate ordered by final score, highest first.
func (s *Session) Ranking() ([]CandidateSummary, error) {
	list, err := s.List("", "")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list.Items, func(i, j int) bool {
		return list.Items[i].FinalScore > list.Items[j].FinalScore
	})
	return list.Items, nil
}

// Select returns the candidate's detail and makes it the current selection.
func (s *Session) Select(id string) (*CandidateDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.selected = id

	return &CandidateDetail{
		Candidate:      *c,
		EducationLabel: models.EducationLabel(c.EducationScore),
		Recommendation: scoring.Recommend(c.Scores.Final),
		Links:          ContactLinks(*c),
	}, nil
}

// UpdateStatus records the reviewer's decision and moves the selection to
// the first candidate still pending. It returns the new selection, empty
// when nothing is pending.
func (s *Session) UpdateStatus(id string, status models.CandidateStatus) (string, error) {
	if !models.ValidStatus(status) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return "", err
	}

	pending, err := s.repo.FindByStatus(models.StatusPending)
	if err != nil {
		return "", err
	}
	s.selected = ""
	if len(pending) > 0 {
		s.selected = pending[0].ID
	}

	s.logger.Info("candidate status updated", zap.String("id", id), zap.String("status", string(status)))
	return s.selected, nil
}

// Delete removes the candidate. Its document ID stays processed so the same
// upload is not extracted again.
func (s *Session) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.selected == id {
		s.selected = ""
	}
	return nil
}

// Report renders the accepted candidates as XLSX, or nil when none exist.
func (s *Session) Report() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accepted, err := s.repo.FindByStatus(models.StatusAccepted)
	if err != nil {
		return nil, err
	}
	return s.reports.AcceptedXLSX(s.form.JobTitle, accepted)
}

func summarize(c models.Candidate) CandidateSummary {
	return CandidateSummary{
		ID:             c.ID,
		Name:           c.Name,
		Status:         c.Status,
		FinalScore:     c.Scores.Final,
		Score:          FormatPercent(c.Scores.Final),
		Recommendation: scoring.Recommend(c.Scores.Final),
	}
}
