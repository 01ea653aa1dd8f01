// Package metrics provides Prometheus-backed implementations of
// types.MetricsCollector. Assignment itself stays pure; collectors only
// count what it already computed.
package metrics
