package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bbs-caleb/absplit/types"
)

// Prometheus implements types.MetricsCollector with Prometheus counters.
//
// Metrics exposed:
//
//	absplit_assignments_total{experiment, group} - assignments per experiment arm
//	absplit_batch_size                           - histogram of batch sizes
//	absplit_batch_duration_seconds               - histogram of batch durations
type Prometheus struct {
	assignments   *prometheus.CounterVec
	batchSizes    prometheus.Histogram
	batchDuration prometheus.Histogram
}

var _ types.MetricsCollector = (*Prometheus)(nil)

// NewPrometheus creates a collector registered with the given registerer.
//
// Parameters:
//   - reg: Prometheus registerer (e.g. prometheus.DefaultRegisterer)
//
// Returns:
//   - *Prometheus: Collector ready to pass to absplit.WithMetrics
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer)
//	splitter, err := absplit.NewTwoWay(salt, 0.5, absplit.WithMetrics(collector))
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)

	return &Prometheus{
		assignments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "absplit_assignments_total",
			Help: "Number of identifiers assigned, by experiment salt and group label.",
		}, []string{"experiment", "group"}),
		batchSizes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "absplit_batch_size",
			Help:    "Sizes of batch assignments.",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "absplit_batch_duration_seconds",
			Help:    "Wall-clock duration of batch assignments.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// IncAssignment records a single assignment.
func (p *Prometheus) IncAssignment(experiment, group string) {
	p.assignments.WithLabelValues(experiment, group).Inc()
}

// ObserveBatch records a completed batch assignment.
func (p *Prometheus) ObserveBatch(_ string, size int, elapsed time.Duration) {
	p.batchSizes.Observe(float64(size))
	p.batchDuration.Observe(elapsed.Seconds())
}
