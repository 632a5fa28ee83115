package argtab

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanInt64(t *testing.T) {
	tests := []struct {
		in   string
		val  int64
		kind ErrorKind
	}{
		{"0", 0, ErrNone},
		{"123", 123, ErrNone},
		{"-42", -42, ErrNone},
		{"+7", 7, ErrNone},
		{" 99", 99, ErrNone},
		{"0x1A", 26, ErrNone},
		{"0X1a", 26, ErrNone},
		{"+0x123", 0x123, ErrNone},
		{"-0x10", -16, ErrNone},
		{"0o17", 15, ErrNone},
		{"0O17", 15, ErrNone},
		{"-0o7", -7, ErrNone},
		{"0b101", 5, ErrNone},
		{"0B110", 6, ErrNone},
		{"-0b101", -5, ErrNone},
		{"9223372036854775807", math.MaxInt64, ErrNone},
		{"-9223372036854775808", math.MinInt64, ErrNone},
		{"0x7fffffffffffffff", math.MaxInt64, ErrNone},
		{"-0x8000000000000000", math.MinInt64, ErrNone},

		{"", 0, ErrBadInt},
		{"abc", 0, ErrBadInt},
		{"123abc", 0, ErrBadInt},
		{"1.5", 0, ErrBadInt},
		{"12 3", 0, ErrBadInt},
		{"--5", 0, ErrBadInt},
		{"+", 0, ErrBadInt},
		{"0x", 0, ErrBadInt},  // prefix with no digits falls back to decimal "0" with trailing "x"
		{"0xG", 0, ErrBadInt},
		{"0b2", 0, ErrBadInt},
		{"0o18", 0, ErrBadInt},
		{"0x1A.5", 0, ErrBadInt},

		{"9223372036854775808", 0, ErrOverflow},
		{"-9223372036854775809", 0, ErrOverflow},
		{"0x8000000000000000", 0, ErrOverflow},
		{"-0x8000000000000001", 0, ErrOverflow},
		{"0b10000000000000000000000000000000000000000000000000000000000000000", 0, ErrOverflow},
		{"123456789012345678901234567890", 0, ErrOverflow},
		{"0xffffffffffffffffffff", 0, ErrOverflow},
	}
	for _, tt := range tests {
		val, kind := scanInt64(tt.in)
		assert.Equal(t, tt.kind, kind, "input %q", tt.in)
		if tt.kind == ErrNone {
			assert.Equal(t, tt.val, val, "input %q", tt.in)
		}
	}
}

func TestScanInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 26, -255, 4096, math.MaxInt64, math.MinInt64}
	notations := []struct {
		prefix string
		base   int
	}{
		{"0x", 16},
		{"0o", 8},
		{"0b", 2},
		{"", 10},
	}
	for _, v := range values {
		mag := uint64(v)
		sign := ""
		if v < 0 {
			mag = -mag
			sign = "-"
		}
		for _, n := range notations {
			lit := sign + n.prefix + strconv.FormatUint(mag, n.base)
			got, kind := scanInt64(lit)
			require.Equal(t, ErrNone, kind, "literal %q", lit)
			assert.Equal(t, v, got, "literal %q", lit)
		}
	}
}
