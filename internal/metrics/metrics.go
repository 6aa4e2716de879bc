// Package metrics exposes Prometheus instruments for the fulfillment workflow.
// Every method is safe on a nil *Metrics so components can run without them.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeOK                = "ok"
	OutcomeForbidden         = "forbidden"
	OutcomeNotFound          = "not_found"
	OutcomeInvalidTransition = "invalid_transition"
	OutcomeConflict          = "conflict"
	OutcomeInvalid           = "invalid"
	OutcomeError             = "error"
)

// Board labels.
const (
	BoardFulfilled = "fulfilled"
	BoardApproved  = "approved"
)

type Metrics struct {
	// Workflow operations by operation and outcome
	Operations *prometheus.CounterVec

	// Command latency including the database transaction
	OperationLatency *prometheus.HistogramVec

	// Read-side latency by query
	QueryLatency *prometheus.HistogramVec

	// Latest leaderboard counts by board and rank
	LeaderboardCount *prometheus.GaugeVec
}

// New registers the instruments with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the instruments with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_operations_total",
			Help: "Shop order workflow operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fulfillment_operation_duration_seconds",
			Help:    "Duration of shop order workflow operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		QueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fulfillment_query_duration_seconds",
			Help:    "Duration of shop order read queries",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"query"}),

		LeaderboardCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fulfillment_leaderboard_count",
			Help: "Count held by each visible leaderboard position",
		}, []string{"board", "rank"}),
	}
}

// ObserveOperation records one finished workflow operation.
func (m *Metrics) ObserveOperation(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, Outcome(err)).Inc()
	m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveQuery(query string, d time.Duration) {
	if m != nil {
		m.QueryLatency.WithLabelValues(query).Observe(d.Seconds())
	}
}

// SetLeaderboard replaces every position of a board.
func (m *Metrics) SetLeaderboard(board string, counts []int) {
	if m == nil {
		return
	}
	m.LeaderboardCount.DeletePartialMatch(prometheus.Labels{"board": board})
	for i, c := range counts {
		m.LeaderboardCount.WithLabelValues(board, fmt.Sprintf("%02d", i+1)).Set(float64(c))
	}
}

// Outcome classifies an operation error into a label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, errs.ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return OutcomeInvalidTransition
	case errors.Is(err, errs.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
