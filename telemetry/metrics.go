// Package telemetry wires optional Prometheus instrumentation around
// solver.Solve, grounded on the solve-operation counters and histograms
// of the Hola logistics repo's pkg/metrics/prometheus.go. Unlike that
// repo this module is a library, not a service: there is no HTTP server
// here, only the registerable collectors and a thin recording API a
// host application can expose however it likes.
package telemetry

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the set of collectors tracking solver activity.
type Metrics struct {
	SolveOperationsTotal *prometheus.CounterVec
	SolveDuration        *prometheus.HistogramVec
	SolveNodesExplored   *prometheus.HistogramVec
}

var (
	initOnce sync.Once
	active   *Metrics
)

// Init registers the collectors against the default Prometheus registry
// under the given namespace. It is safe to call more than once; only
// the first call takes effect, matching flow.FlowOptions' once-per-run
// setup style generalized to package-level state shared across solves.
func Init(namespace string) *Metrics {
	initOnce.Do(func() {
		active = &Metrics{
			SolveOperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Subsystem: "solver",
					Name:      "operations_total",
					Help:      "Total number of solve operations by strategy and outcome.",
				},
				[]string{"strategy", "status"},
			),
			SolveDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Subsystem: "solver",
					Name:      "duration_seconds",
					Help:      "Duration of solve operations by strategy.",
					Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10, 15},
				},
				[]string{"strategy"},
			),
			SolveNodesExplored: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Subsystem: "solver",
					Name:      "nodes_explored",
					Help:      "Number of search states dequeued per solve operation.",
					Buckets:   []float64{10, 100, 1000, 10000, 100000, 1000000},
				},
				[]string{"strategy"},
			),
		}
	})
	return active
}

// Get returns the active collectors, or nil if Init has never been
// called. Callers must check for nil before use; RecordSolve already does.
func Get() *Metrics {
	return active
}

// RecordSolve records one solve operation's outcome. It is a no-op when
// Init has not been called, so instrumentation costs nothing in
// library-only use.
func RecordSolve(strategy string, err error, duration time.Duration, nodeCount int64) {
	m := Get()
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.SolveOperationsTotal.WithLabelValues(strategy, status).Inc()
	m.SolveDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	m.SolveNodesExplored.WithLabelValues(strategy).Observe(float64(nodeCount))
}
