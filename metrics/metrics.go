// Package metrics records recovery outcomes in Prometheus.
package metrics

import (
	"errors"

	"charm.land/jsonrecover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK           = "ok"
	ResultInvalidInput = "invalid_input"
	ResultNoStructure  = "no_structure"
	ResultExhausted    = "exhausted"
	ResultError        = "error"
)

// Collector is a [jsonrecover.Observer] backed by Prometheus metrics.
type Collector struct {
	recoveries *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inputBytes prometheus.Histogram
}

var _ jsonrecover.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg. A nil reg
// leaves the metrics unregistered.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		// recoveries tracks calls per winning stage and result
		recoveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonrecover_recoveries_total",
				Help: "Total number of JSON recovery calls",
			},
			[]string{"stage", "result"},
		),
		// duration tracks call latency per result
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jsonrecover_recovery_duration_seconds",
				Help:    "JSON recovery latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		// inputBytes tracks the size of raw inputs
		inputBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jsonrecover_input_bytes",
				Help:    "Size of recovery inputs in bytes",
				Buckets: prometheus.ExponentialBuckets(64, 4, 8),
			},
		),
	}
}

// ObserveRecovery implements [jsonrecover.Observer].
func (c *Collector) ObserveRecovery(o jsonrecover.Outcome) {
	result := Result(o.Err)
	c.recoveries.WithLabelValues(string(o.Stage), result).Inc()
	c.duration.WithLabelValues(result).Observe(o.Duration.Seconds())
	c.inputBytes.Observe(float64(o.InputBytes))
}

// Result maps a recovery error to its result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, jsonrecover.ErrInvalidInput):
		return ResultInvalidInput
	case errors.Is(err, jsonrecover.ErrNoJSONStructure):
		return ResultNoStructure
	case errors.Is(err, jsonrecover.ErrRecoveryExhausted):
		return ResultExhausted
	default:
		return ResultError
	}
}
