package absplit

import "github.com/bbs-caleb/absplit/types"

// Sentinel errors, aliased from the types package so callers can use
// errors.Is against either import path.
var (
	// ErrInvalidWeights is returned when a weight vector has fewer than two
	// groups, contains a negative/NaN/Inf weight, carries a duplicate or
	// empty label, or sums to zero.
	ErrInvalidWeights = types.ErrInvalidWeights

	// ErrUnsupportedIdentifier is returned when an identifier cannot be
	// canonicalized to bytes deterministically.
	ErrUnsupportedIdentifier = types.ErrUnsupportedIdentifier

	// ErrInvalidConfig is returned when an experiment configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrUnknownHasher is returned when a configuration names a bucketing
	// contract that is not registered.
	ErrUnknownHasher = types.ErrUnknownHasher

	// ErrExperimentExists is returned when registering a duplicate experiment name.
	ErrExperimentExists = types.ErrExperimentExists

	// ErrExperimentNotFound is returned when looking up an unknown experiment name.
	ErrExperimentNotFound = types.ErrExperimentNotFound
)
