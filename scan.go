package argtab

import "math"

// scanInt64 converts one command-line token into a signed 64-bit
// integer. Hexadecimal ("0x1A"), octal ("0o17") and binary ("0b101")
// notations are tried in that order, each marked by its prefix letter;
// a notation that consumes no digits falls through to the next one,
// ending with plain decimal. Trying the prefixed notations first
// matters: a decimal parse of "0x1A" would happily stop after the
// leading 0. Whichever notation matched must consume the whole token,
// so trailing characters ("123abc", "1.5") are rejected rather than
// silently truncated.
func scanInt64(s string) (int64, ErrorKind) {
	res, ok := scanPrefixed(s, 'X', 16)
	if !ok {
		res, ok = scanPrefixed(s, 'O', 8)
	}
	if !ok {
		res, ok = scanPrefixed(s, 'B', 2)
	}
	if !ok {
		res, ok = scanDecimal(s)
	}
	if !ok {
		return 0, ErrBadInt
	}
	if res.rest != "" {
		return 0, ErrBadInt
	}
	if res.overflow {
		return 0, ErrOverflow
	}
	return res.val, ErrNone
}

type scanned struct {
	val      int64
	rest     string // unconsumed tail of the input
	overflow bool
}

// scanPrefixed recognizes a literal of the form
// [space][sign]0<marker>digits, with a case-insensitive marker.
func scanPrefixed(s string, marker byte, base int) (scanned, bool) {
	p := skipSpace(s)
	p, neg := scanSign(p)
	if len(p) < 2 || p[0] != '0' || upper(p[1]) != marker {
		return scanned{}, false
	}
	return scanDigits(p[2:], base, neg)
}

// scanDecimal recognizes a plain signed decimal literal with no
// prefix.
func scanDecimal(s string) (scanned, bool) {
	p := skipSpace(s)
	p, neg := scanSign(p)
	return scanDigits(p, 10, neg)
}

// scanDigits accumulates the longest run of digits valid in base,
// reporting false when the run is empty. The magnitude saturates on
// overflow instead of stopping, so that the caller's full-consumption
// check still sees everything the notation would have consumed.
func scanDigits(s string, base int, neg bool) (scanned, bool) {
	var mag uint64
	overflow := false
	i := 0
	for ; i < len(s); i++ {
		d, ok := digitVal(s[i])
		if !ok || d >= base {
			break
		}
		if mag > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			mag = math.MaxUint64
			continue
		}
		mag = mag*uint64(base) + uint64(d)
	}
	if i == 0 {
		return scanned{}, false
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if mag > limit {
		overflow = true
	}

	res := scanned{rest: s[i:], overflow: overflow}
	if !overflow {
		if neg {
			// mag <= 1<<63 here; at the limit the negation wraps
			// exactly to MinInt64.
			res.val = -int64(mag)
		} else {
			res.val = int64(mag)
		}
	}
	return res, true
}

func digitVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return s[i:]
		}
	}
	return s[i:]
}

func scanSign(s string) (string, bool) {
	if len(s) > 0 {
		switch s[0] {
		case '+':
			return s[1:], false
		case '-':
			return s[1:], true
		}
	}
	return s, false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}
