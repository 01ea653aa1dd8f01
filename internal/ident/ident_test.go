package ident

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bbs-caleb/absplit/types"
)

func TestCanonical_SupportedTypes(t *testing.T) {
	tests := []struct {
		name       string
		identifier any
		want       string
	}{
		{"string", "user-42", "user-42"},
		{"bytes", []byte{0x61, 0x62}, "ab"},
		{"int", 12345, "12345"},
		{"negative int", -7, "-7"},
		{"int8", int8(-128), "-128"},
		{"int16", int16(300), "300"},
		{"int32", int32(1 << 20), "1048576"},
		{"int64", int64(9223372036854775807), "9223372036854775807"},
		{"uint", uint(42), "42"},
		{"uint8", uint8(255), "255"},
		{"uint16", uint16(65535), "65535"},
		{"uint32", uint32(4294967295), "4294967295"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"uintptr", uintptr(8), "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonical(tt.identifier)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonical_Stringer(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, err := Canonical(id)

	require.NoError(t, err)
	require.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", string(got))
}

func TestCanonical_RejectsUnstableTypes(t *testing.T) {
	tests := []struct {
		name       string
		identifier any
	}{
		{"float64", 3.14},
		{"float32", float32(0.5)},
		{"bool", true},
		{"nil", nil},
		{"struct", struct{ ID int }{1}},
		{"slice of int", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Canonical(tt.identifier)
			require.Error(t, err)
			require.ErrorIs(t, err, types.ErrUnsupportedIdentifier)
		})
	}
}

func TestCanonical_IntAndStringDiffer(t *testing.T) {
	// int 12345 and string "12345" canonicalize identically on purpose:
	// the decimal form is the documented stable representation.
	fromInt, err := Canonical(12345)
	require.NoError(t, err)

	fromString, err := Canonical("12345")
	require.NoError(t, err)

	require.Equal(t, fromString, fromInt)
}
