// Package testing provides helpers for tests of absplit-based code:
// an embedded NATS server with JetStream for stream-enrichment tests and a
// types.Logger bridged to testing.T.
package testing
