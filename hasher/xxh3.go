package hasher

import (
	"github.com/zeebo/xxh3"

	"github.com/bbs-caleb/absplit/types"
)

// ContractXXH3 identifies the high-throughput bucketing contract:
// xxh3 64-bit, modulus 2^64.
const ContractXXH3 = "xxh3/8"

type xxh3Hasher struct{}

var _ types.Hasher = xxh3Hasher{}

// NewXXH3 returns a non-cryptographic bucketing contract built on xxh3.
//
// xxh3 is roughly an order of magnitude faster than SHA-256, which matters
// when bucketing every event on a hot path rather than every user once.
// The trade-offs versus sha256/8:
//
//   - No warehouse SQL parity: query engines do not ship xxh3, so
//     assignments cannot be re-derived in SQL.
//   - Uniformity is empirical, not cryptographic. xxh3 passes SMHasher and
//     is more than uniform enough for population splitting.
//
// Do not use this contract for experiments that must be re-computed outside
// this library. It is deterministic and stable like every other contract.
//
// Returns:
//   - types.Hasher: Stateless hasher, safe to share across goroutines
func NewXXH3() types.Hasher {
	return xxh3Hasher{}
}

// Name returns "xxh3/8".
func (xxh3Hasher) Name() string { return ContractXXH3 }

// Fraction maps data to [0, 1) using the xxh3/8 contract.
func (xxh3Hasher) Fraction(data []byte) float64 {
	return float64(xxh3.Hash(data)) / (1 << 64)
}
