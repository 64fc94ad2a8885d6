// Package metrics exposes workflow counters on a private Prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	stepSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosigner",
			Subsystem: "draft",
			Name:      "step_saves_total",
			Help:      "Draft step saves by step and result.",
		},
		[]string{"step", "result"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosigner",
			Subsystem: "documents",
			Name:      "uploads_total",
			Help:      "Document uploads by category and outcome.",
		},
		[]string{"category", "outcome"},
	)

	providerDeleteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cosigner",
			Subsystem: "documents",
			Name:      "provider_delete_failures_total",
			Help:      "Provider deletions that failed and need reconciliation.",
		},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosigner",
			Subsystem: "applications",
			Name:      "transitions_total",
			Help:      "Application state transitions by axis, target state and result.",
		},
		[]string{"axis", "to", "result"},
	)

	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cosigner",
			Subsystem: "applications",
			Name:      "submissions_total",
			Help:      "Submission attempts by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		stepSaves,
		uploads,
		providerDeleteFailures,
		transitions,
		submissions,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordStepSave(step, result string) {
	stepSaves.WithLabelValues(step, result).Inc()
}

func RecordUpload(category, outcome string) {
	uploads.WithLabelValues(category, outcome).Inc()
}

func RecordProviderDeleteFailure() {
	providerDeleteFailures.Inc()
}

func RecordTransition(axis, to, result string) {
	transitions.WithLabelValues(axis, to, result).Inc()
}

func RecordSubmission(result string) {
	submissions.WithLabelValues(result).Inc()
}
