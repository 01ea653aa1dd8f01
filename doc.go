// Package absplit deterministically assigns identifiers to experiment groups
// using a cryptographic hash of a stable identifier combined with a
// per-experiment salt. No assignment table is persisted: assignment is a pure
// function of (identifier, salt, weights), so the same identifier always
// lands in the same group across calls, processes, and machines.
//
// # Quick Start
//
// A 50/50 control/test split:
//
//	splitter, err := absplit.NewTwoWay("pricing_test_2024_q1", 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	group, err := splitter.Assign(12345) // always the same result
//
// Multi-variant split with explicit weights:
//
//	splitter, err := absplit.New("pricing_test_2024_q1", []types.Group{
//	    {Label: "control", Weight: 0.5},
//	    {Label: "test_a", Weight: 0.25},
//	    {Label: "test_b", Weight: 0.25},
//	})
//
// # Key Properties
//
//   - Deterministic: same (identifier, salt) pair always yields the same group
//   - Independent: different salts produce statistically independent splits
//   - Stateless: no storage, no counters, no coordination between callers
//   - Reproducible in SQL: the bucketing contract (hash, digest slice,
//     modulus) is pinned and documented per hasher so warehouse queries can
//     re-derive identical assignments
//
// # Salts Are Forever
//
// A salt names an experiment for its whole lifetime. Changing a salt
// mid-experiment silently reassigns every user; reusing a salt across
// unrelated experiments correlates their assignments. The library cannot
// detect either from a single call; the Registry logs a warning when two
// registered experiments share a salt, everything else is on the caller.
//
// # Batch Assignment
//
// AssignBatch applies Assign element-wise over a collection, order-preserving
// and embarrassingly parallel:
//
//	labels, err := splitter.AssignBatch(ctx, identifiers)
//
// # Advanced Usage
//
// Custom bucketing contract and structured logging:
//
//	splitter, err := absplit.New(salt, groups,
//	    absplit.WithHasher(hasher.NewMD5()), // warehouse MOD-bucketing parity
//	    absplit.WithLogger(myLogger),
//	)
//
// Experiments can also be declared in YAML and loaded with LoadConfig; see
// Config for the schema.
package absplit
