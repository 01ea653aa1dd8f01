// Package types defines the shared types and interfaces used across the
// absplit library: experiment groups, the versioned bucketing contract
// (Hasher), structured logging, metrics collection, and sentinel errors.
//
// Keeping these in a separate package lets subpackages (hasher, metrics,
// stream) depend on the contracts without importing the root package.
package types
