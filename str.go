package argtab

import (
	"fmt"
	"io"
)

// Str is an option descriptor that accumulates string values verbatim.
type Str struct {
	Header
	values []string
	count  int
}

// Str0 declares a string option that may appear at most once.
func Str0(shortOpts, longOpts, datatype, glossary string) *Str {
	return StrN(shortOpts, longOpts, datatype, 0, 1, glossary)
}

// Str1 declares a string option that must appear exactly once.
func Str1(shortOpts, longOpts, datatype, glossary string) *Str {
	return StrN(shortOpts, longOpts, datatype, 1, 1, glossary)
}

// StrN declares a string option that may appear between minCount and
// maxCount times.
func StrN(shortOpts, longOpts, datatype string, minCount, maxCount int, glossary string) *Str {
	hdr := newHeader(shortOpts, longOpts, datatype, "<string>", minCount, maxCount, glossary)
	hdr.HasValue = true
	return &Str{
		Header: hdr,
		values: make([]string, hdr.MaxCount),
	}
}

// Values returns the values scanned so far, in occurrence order.
func (o *Str) Values() []string { return o.values[:o.count] }

func (o *Str) Count() int { return o.count }

func (o *Str) Reset() { o.count = 0 }

func (o *Str) Scan(value *string) ErrorKind {
	switch {
	case o.count == o.MaxCount:
		return ErrMaxCount
	case value == nil:
		o.count++
	default:
		o.values[o.count] = *value
		o.count++
	}
	return ErrNone
}

func (o *Str) Check() ErrorKind {
	if o.count < o.MinCount {
		return ErrMinCount
	}
	return ErrNone
}

func (o *Str) ReportError(w io.Writer, kind ErrorKind, value, progname string) {
	switch kind {
	case ErrMinCount:
		fmt.Fprintf(w, "%s: missing option ", progname)
		o.writeOption(w, o.Datatype, "\n")
	case ErrMaxCount:
		fmt.Fprintf(w, "%s: excess option ", progname)
		o.writeOption(w, value, "\n")
	}
}
