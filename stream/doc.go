// Package stream provides a JetStream collaborator for absplit: an Enricher
// that consumes identifiers from a stream, computes each one's experiment
// group with a Splitter, and republishes the message to an output subject
// with the group label stamped in a header.
//
// The Splitter itself stays pure; all transport concerns (consumption,
// acknowledgement, republishing) live here. Because assignment is
// deterministic, redelivered messages are re-enriched identically, so
// at-least-once delivery downstream never produces conflicting labels.
package stream
