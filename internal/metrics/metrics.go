// Package metrics holds the Prometheus collectors for the screening pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	DocumentsProcessed *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
	FinalScore         prometheus.Histogram
	RescorePasses      prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DocumentsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hr_helper",
			Name:      "documents_processed_total",
			Help:      "CVs run through extraction, by outcome.",
		}, []string{"outcome"}),
		ExtractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hr_helper",
			Name:      "extraction_duration_seconds",
			Help:      "Time spent building one candidate profile.",
			Buckets:   prometheus.DefBuckets,
		}),
		FinalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hr_helper",
			Name:      "final_score",
			Help:      "Distribution of final candidate scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
		RescorePasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hr_helper",
			Name:      "rescore_passes_total",
			Help:      "Re-scoring passes triggered by rubric changes.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.DocumentsProcessed, m.ExtractionDuration, m.FinalScore, m.RescorePasses)
	}
	return m
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Metrics {
	return New(nil)
}
