package hasher

import (
	"crypto/md5" //nolint:gosec // bucketing contract, not a security boundary
	"encoding/binary"

	"github.com/bbs-caleb/absplit/types"
)

// ContractMD5 identifies the warehouse-parity bucketing contract:
// MD5, first 4 digest bytes big-endian, modulus 2^32.
const ContractMD5 = "md5/4"

type md5Hasher struct{}

var _ types.Hasher = md5Hasher{}

// NewMD5 returns the warehouse-parity bucketing contract.
//
// This contract exists for parity with the classic SQL bucketing idiom
// built on a 32-bit slice of an MD5 digest:
//
//	MOD(CAST(CONCAT('0x', SUBSTR(MD5(salt || user_id), 1, 8)) AS INT64), 100) < 50
//
// The fraction is computed as:
//
//	digest = MD5(data)
//	h      = big-endian uint32 of digest[0:4]
//	r      = h / 2^32
//
// MD5's cryptographic weaknesses are irrelevant here: bucketing needs
// uniformity, not collision resistance against an adversary. Assignments
// produced by this contract are NOT reproducible under sha256/8; the two
// are independent partitions of the identifier space.
//
// Returns:
//   - types.Hasher: Stateless hasher, safe to share across goroutines
func NewMD5() types.Hasher {
	return md5Hasher{}
}

// Name returns "md5/4".
func (md5Hasher) Name() string { return ContractMD5 }

// Fraction maps data to [0, 1) using the md5/4 contract.
func (md5Hasher) Fraction(data []byte) float64 {
	digest := md5.Sum(data) //nolint:gosec // see NewMD5
	h := binary.BigEndian.Uint32(digest[:4])

	return float64(h) / (1 << 32)
}
