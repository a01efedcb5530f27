package services

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/hr-helper/internal/metrics"
	"alfredoptarigan/hr-helper/internal/models"
	"alfredoptarigan/hr-helper/internal/workerpool"
)

// BatchRunner extracts candidate profiles for many documents concurrently.
type BatchRunner interface {
	Run(docs []models.Document, hardSkills, softSkills []string) []models.Candidate
}

type batchTask struct {
	doc        models.Document
	hardSkills []string
	softSkills []string
}

type batchRunner struct {
	builder     CandidateBuilder
	concurrency int
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewBatchRunner creates a runner with at most concurrency workers; zero or
// less means one worker per available CPU.
func NewBatchRunner(
	builder CandidateBuilder,
	concurrency int,
	logger *zap.Logger,
	m *metrics.Metrics,
) BatchRunner {
	return &batchRunner{
		builder:     builder,
		concurrency: concurrency,
		logger:      logger,
		metrics:     m,
	}
}

// Run returns one profile per document, in input order. A failing document
// never aborts its siblings.
func (w *batchRunner) Run(docs []models.Document, hardSkills, softSkills []string) []models.Candidate {
	if len(docs) == 0 {
		return nil
	}

	tasks := make([]batchTask, len(docs))
	for i, doc := range docs {
		tasks[i] = batchTask{
			doc:        doc,
			hardSkills: slices.Clone(hardSkills),
			softSkills: slices.Clone(softSkills),
		}
	}

	workers := workerpool.Size(w.concurrency, len(tasks))
	w.logger.Info("processing CVs", zap.Int("documents", len(tasks)), zap.Int("workers", workers))

	start := time.Now()
	results := workerpool.Map(tasks, workers, w.process)

	w.logger.Info("batch completed",
		zap.Int("documents", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results
}

func (w *batchRunner) process(task batchTask) (candidate models.Candidate) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			candidate = models.NewCandidate(task.doc.ID, task.doc.Name)
			candidate.Text = (&ExtractionError{Cause: fmt.Errorf("%v", r)}).Error()
			candidate.Unreadable = true
			w.logger.Error("CV processing panicked", zap.String("document_id", task.doc.ID), zap.Any("panic", r))
			w.metrics.DocumentsProcessed.WithLabelValues("failed").Inc()
		}
		w.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	}()

	candidate, err := w.builder.Build(task.doc, task.hardSkills, task.softSkills)
	if err != nil {
		w.logger.Warn("CV could not be read",
			zap.String("document_id", task.doc.ID),
			zap.String("name", task.doc.Name),
			zap.Error(err),
		)
		w.metrics.DocumentsProcessed.WithLabelValues("failed").Inc()
		return candidate
	}

	w.logger.Debug("CV processed",
		zap.String("document_id", task.doc.ID),
		zap.Int("education", candidate.EducationScore),
		zap.Int("work_exp", candidate.WorkExp),
	)
	w.metrics.DocumentsProcessed.WithLabelValues("ok").Inc()
	return candidate
}
