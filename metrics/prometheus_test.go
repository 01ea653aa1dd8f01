package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_IncAssignment(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg)

	collector.IncAssignment("pricing_test_2024_q1", "control")
	collector.IncAssignment("pricing_test_2024_q1", "control")
	collector.IncAssignment("pricing_test_2024_q1", "test")

	control := testutil.ToFloat64(collector.assignments.WithLabelValues("pricing_test_2024_q1", "control"))
	test := testutil.ToFloat64(collector.assignments.WithLabelValues("pricing_test_2024_q1", "test"))

	require.InDelta(t, 2.0, control, 0)
	require.InDelta(t, 1.0, test, 0)
}

func TestPrometheus_ObserveBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg)

	collector.ObserveBatch("pricing_test_2024_q1", 50000, 120*time.Millisecond)

	count := testutil.CollectAndCount(collector.batchSizes)
	require.Equal(t, 1, count)
}
