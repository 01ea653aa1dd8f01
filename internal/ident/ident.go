// Package ident canonicalizes identifiers to stable byte strings for hashing.
package ident

import (
	"fmt"
	"strconv"

	"github.com/bbs-caleb/absplit/types"
)

// Canonical converts an identifier to its canonical byte representation.
//
// The canonicalization is part of the bucketing contract: switching it after
// an experiment launches changes every assignment, exactly like changing the
// salt. The rules are therefore fixed:
//
//   - string: raw bytes, as-is
//   - []byte: as-is
//   - signed integers (int, int8..int64): base-10 ASCII, e.g. 12345 -> "12345"
//   - unsigned integers (uint, uint8..uint64, uintptr): base-10 ASCII
//   - fmt.Stringer (uuid.UUID, etc.): the String() result
//
// Floats, bools, nil, and any other type are rejected with
// types.ErrUnsupportedIdentifier. Floats in particular have no single stable
// textual representation; silently formatting one would break the
// reproducibility invariant without any way to detect it later.
//
// Parameters:
//   - identifier: Opaque value naming a subject
//
// Returns:
//   - []byte: Canonical byte string
//   - error: types.ErrUnsupportedIdentifier for non-canonicalizable types
func Canonical(identifier any) ([]byte, error) {
	switch v := identifier.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	case uintptr:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case float32, float64:
		// Rejected explicitly rather than falling through to the default so
		// the error message names the real hazard.
		return nil, fmt.Errorf("%w: %T has no stable textual representation", types.ErrUnsupportedIdentifier, identifier)
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return nil, fmt.Errorf("%w: %T", types.ErrUnsupportedIdentifier, identifier)
	}
}
