package hasher

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/bbs-caleb/absplit/types"
)

// ContractSHA256 identifies the default bucketing contract:
// SHA-256, first 8 digest bytes big-endian, modulus 2^64.
const ContractSHA256 = "sha256/8"

type sha256Hasher struct{}

var _ types.Hasher = sha256Hasher{}

// NewSHA256 returns the default bucketing contract.
//
// The fraction is computed as:
//
//	digest = SHA256(data)
//	h      = big-endian uint64 of digest[0:8]
//	r      = h / 2^64
//
// SQL equivalent (BigQuery):
//
//	MOD(CAST(CONCAT('0x', SUBSTR(TO_HEX(SHA256(CONCAT(salt, CAST(user_id AS STRING)))), 1, 16)) AS INT64), ...)
//
// Returns:
//   - types.Hasher: Stateless hasher, safe to share across goroutines
func NewSHA256() types.Hasher {
	return sha256Hasher{}
}

// Name returns "sha256/8".
func (sha256Hasher) Name() string { return ContractSHA256 }

// Fraction maps data to [0, 1) using the sha256/8 contract.
func (sha256Hasher) Fraction(data []byte) float64 {
	digest := sha256.Sum256(data)
	h := binary.BigEndian.Uint64(digest[:8])

	return float64(h) / (1 << 64)
}
