package argtab

import (
	"fmt"
	"io"
)

// Int is an option descriptor that accumulates signed 64-bit integer
// values. Values may be written in decimal, or in hexadecimal, octal
// or binary notation using the 0x, 0o and 0b prefixes.
type Int struct {
	Header
	values []int64
	count  int
}

// Int0 declares an integer option that may appear at most once.
func Int0(shortOpts, longOpts, datatype, glossary string) *Int {
	return IntN(shortOpts, longOpts, datatype, 0, 1, glossary)
}

// Int1 declares an integer option that must appear exactly once.
func Int1(shortOpts, longOpts, datatype, glossary string) *Int {
	return IntN(shortOpts, longOpts, datatype, 1, 1, glossary)
}

// IntN declares an integer option that may appear between minCount and
// maxCount times. The value storage is allocated here, once, sized for
// maxCount occurrences; Reset rewinds the descriptor without
// reallocating it.
func IntN(shortOpts, longOpts, datatype string, minCount, maxCount int, glossary string) *Int {
	hdr := newHeader(shortOpts, longOpts, datatype, "<int>", minCount, maxCount, glossary)
	hdr.HasValue = true
	return &Int{
		Header: hdr,
		values: make([]int64, hdr.MaxCount),
	}
}

// Values returns the values scanned so far, in occurrence order. An
// occurrence with an omitted optional value leaves its slot at the
// previous contents.
func (o *Int) Values() []int64 { return o.values[:o.count] }

// Count reports how many occurrences have been scanned.
func (o *Int) Count() int { return o.count }

func (o *Int) Reset() { o.count = 0 }

func (o *Int) Scan(value *string) ErrorKind {
	switch {
	case o.count == o.MaxCount:
		return ErrMaxCount
	case value == nil:
		// Optional value omitted; the occurrence still counts.
		o.count++
	default:
		val, kind := scanInt64(*value)
		if kind != ErrNone {
			return kind
		}
		o.values[o.count] = val
		o.count++
	}
	return ErrNone
}

func (o *Int) Check() ErrorKind {
	if o.count < o.MinCount {
		return ErrMinCount
	}
	return ErrNone
}

func (o *Int) ReportError(w io.Writer, kind ErrorKind, value, progname string) {
	switch kind {
	case ErrMinCount:
		fmt.Fprintf(w, "%s: missing option ", progname)
		o.writeOption(w, o.Datatype, "\n")
	case ErrMaxCount:
		fmt.Fprintf(w, "%s: excess option ", progname)
		o.writeOption(w, value, "\n")
	case ErrBadInt:
		fmt.Fprintf(w, "%s: invalid argument \"%s\" to option ", progname, value)
		o.writeOption(w, o.Datatype, "\n")
	case ErrOverflow:
		fmt.Fprintf(w, "%s: integer overflow at option ", progname)
		o.writeOption(w, o.Datatype, " ")
		fmt.Fprintf(w, "(%s is too large)\n", value)
	}
}
