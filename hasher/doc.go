// Package hasher provides the versioned bucketing contracts used by absplit.
//
// Each contract pins a hash primitive, a digest byte slice, and a modulus.
// Together with the salt||identifier concatenation and the canonical
// identifier encoding documented on the Splitter, a contract fully determines
// every assignment, which is exactly what cross-engine reproducibility
// requires. A warehouse query re-deriving the same arithmetic produces
// byte-identical group assignments for the same salt and identifier.
//
// Available contracts:
//
//   - sha256/8 (default): SHA-256, digest bytes [0,8) big-endian, M = 2^64
//   - md5/4: MD5, digest bytes [0,4) big-endian, M = 2^32; matches the
//     classic warehouse MOD-bucketing idiom
//   - xxh3/8: xxh3 64-bit, M = 2^64; not cryptographic, no SQL parity
//
// Contract names are immutable identifiers. Changing any step of a contract
// silently reassigns every identifier, so a changed contract must ship under
// a new name.
package hasher
