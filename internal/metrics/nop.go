// Package metrics provides the no-op metrics collector used as the default
// when no collector is injected. The Prometheus implementation lives in the
// public metrics package so that callers opt in to the dependency.
package metrics

import (
	"time"

	"github.com/bbs-caleb/absplit/types"
)

// Nop discards all observations.
type Nop struct{}

var _ types.MetricsCollector = (*Nop)(nil)

// NewNop creates a collector that discards everything.
func NewNop() *Nop {
	return &Nop{}
}

// IncAssignment discards the observation.
func (*Nop) IncAssignment(string, string) {}

// ObserveBatch discards the observation.
func (*Nop) ObserveBatch(string, int, time.Duration) {}
