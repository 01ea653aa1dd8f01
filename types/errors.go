package types

import "errors"

// Sentinel errors for the absplit library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Splitter errors - Public API errors returned by Splitter construction and assignment.
var (
	// ErrInvalidWeights is returned when a weight vector has fewer than two
	// groups, contains a negative/NaN/Inf weight, carries a duplicate or
	// empty label, or sums to zero.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrUnsupportedIdentifier is returned when an identifier cannot be
	// canonicalized to bytes deterministically (e.g., a float, whose textual
	// representation is not stable enough to hash).
	ErrUnsupportedIdentifier = errors.New("unsupported identifier type")
)

// Configuration errors - returned when loading experiment declarations.
var (
	// ErrInvalidConfig is returned when an experiment configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownHasher is returned when a configuration names a bucketing
	// contract that is not registered.
	ErrUnknownHasher = errors.New("unknown hasher contract")
)

// Registry errors - returned by the experiment registry.
var (
	// ErrExperimentExists is returned when registering an experiment name
	// that is already registered.
	ErrExperimentExists = errors.New("experiment already registered")

	// ErrExperimentNotFound is returned when looking up an experiment name
	// that is not registered.
	ErrExperimentNotFound = errors.New("experiment not found")
)
