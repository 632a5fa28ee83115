package argtab

import (
	"fmt"
	"io"
	"strings"
)

// ErrorKind classifies a failure from a descriptor lifecycle operation
// or from the parse driver. The zero value means no error.
type ErrorKind int

const (
	ErrNone ErrorKind = iota

	// Descriptor kinds, reported through Option.ReportError.
	ErrMinCount
	ErrMaxCount
	ErrBadInt
	ErrOverflow
	ErrBadValue

	// Driver kinds, reported by ParseErrors itself; descriptors
	// ignore them.
	ErrUnknownOption
	ErrMissingArg
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrMinCount:
		return "mincount"
	case ErrMaxCount:
		return "maxcount"
	case ErrBadInt:
		return "badint"
	case ErrOverflow:
		return "overflow"
	case ErrBadValue:
		return "badvalue"
	case ErrUnknownOption:
		return "unknownoption"
	case ErrMissingArg:
		return "missingarg"
	}
	return fmt.Sprintf("errorkind(%d)", int(k))
}

// Option is the contract shared by every descriptor type, allowing the
// Table driver to treat heterogeneous options uniformly.
//
// Reset rewinds the descriptor so the same declarations can parse
// another command line without reallocating. Scan consumes one
// occurrence; a nil value means the option appeared with its optional
// value omitted, which still counts toward the multiplicity bounds.
// Check validates the multiplicity bounds after all scanning is done.
// ReportError formats a diagnostic line for one of the descriptor's
// own error kinds; kinds the descriptor does not own produce no
// output. Scan and Check never partially mutate descriptor state on
// failure.
type Option interface {
	Hdr() *Header
	Count() int
	Reset()
	Scan(value *string) ErrorKind
	Check() ErrorKind
	ReportError(w io.Writer, kind ErrorKind, value, progname string)
}

// Header carries the fields common to all descriptor types.
type Header struct {
	ShortOpts string // each rune is a short option trigger
	LongOpts  string // comma-separated long option triggers
	Datatype  string // value placeholder shown in usage and error text
	Glossary  string
	EnvVar    string // environment variable consulted when no occurrence was scanned
	MinCount  int
	MaxCount  int

	HasValue      bool
	OptionalValue bool
}

func (h *Header) Hdr() *Header { return h }

func newHeader(shortOpts, longOpts, datatype, defaultDatatype string, minCount, maxCount int, glossary string) Header {
	// foolproofing: the bounds must satisfy 0 <= min <= max
	if minCount < 0 {
		minCount = 0
	}
	if maxCount < minCount {
		maxCount = minCount
	}
	if datatype == "" {
		datatype = defaultDatatype
	}
	return Header{
		ShortOpts: shortOpts,
		LongOpts:  longOpts,
		Datatype:  datatype,
		Glossary:  glossary,
		MinCount:  minCount,
		MaxCount:  maxCount,
	}
}

func (h *Header) longNames() []string {
	if h.LongOpts == "" {
		return nil
	}
	return strings.Split(h.LongOpts, ",")
}

// writeOption writes the canonical spelling of the option: its first
// short trigger if it has one, otherwise its first long trigger,
// followed by datatype and suffix. Error messages pass the offending
// text in the datatype position for some kinds, so it is a parameter
// here.
func (h *Header) writeOption(w io.Writer, datatype, suffix string) {
	if h.ShortOpts != "" {
		fmt.Fprintf(w, "-%c", h.ShortOpts[0])
	} else if h.LongOpts != "" {
		name := h.LongOpts
		if i := strings.IndexByte(name, ','); i >= 0 {
			name = name[:i]
		}
		fmt.Fprintf(w, "--%s", name)
	}
	if datatype != "" {
		if h.ShortOpts != "" || h.LongOpts != "" {
			io.WriteString(w, " ")
		}
		io.WriteString(w, datatype)
	}
	io.WriteString(w, suffix)
}
