package types

import "time"

// Group names one experiment arm and the share of the population routed to it.
//
// Order is significant wherever a []Group appears: cumulative bucket
// boundaries follow declaration order, so reordering groups changes which
// identifiers land in which arm (aggregate shares are preserved).
type Group struct {
	// Label is the group name returned by assignment, e.g. "control".
	Label string

	// Weight is the group's share of the population. Weights are normalized
	// to sum to 1.0 at Splitter construction, so any non-negative scale works.
	Weight float64
}

// Hasher is a versioned bucketing contract that maps a byte buffer to a
// deterministic fraction in the unit interval [0, 1).
//
// Name identifies the exact hash primitive, digest slice, and modulus, so
// that any engine computing group assignment (application code or warehouse
// SQL) agrees bit-for-bit. Changing any step of a contract (hash function,
// slice width, endianness, modulus) silently reassigns every identifier and
// therefore requires a new contract name.
type Hasher interface {
	// Name returns the contract identifier, e.g. "sha256/8".
	Name() string

	// Fraction maps data to a value in [0, 1).
	//
	// Must be a pure function of data: same input yields the same output
	// across calls, processes, and machines. No randomness, no time
	// dependency, no machine-specific state.
	Fraction(data []byte) float64
}

// MetricsCollector receives assignment observations.
//
// Implementations must be safe for concurrent use; assignment is invoked
// from arbitrarily many goroutines without synchronization.
type MetricsCollector interface {
	// IncAssignment records a single identifier landing in a group.
	// The experiment dimension is the splitter's salt.
	IncAssignment(experiment, group string)

	// ObserveBatch records a completed batch assignment of the given size.
	ObserveBatch(experiment string, size int, elapsed time.Duration)
}
