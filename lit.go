package argtab

import (
	"fmt"
	"io"
)

// Lit is a valueless option descriptor: it records how many times the
// option appeared. Typical uses are boolean switches and stackable
// flags like -vvv.
type Lit struct {
	Header
	count int
}

// Lit0 declares a flag that may appear at most once.
func Lit0(shortOpts, longOpts, glossary string) *Lit {
	return LitN(shortOpts, longOpts, 0, 1, glossary)
}

// Lit1 declares a flag that must appear exactly once.
func Lit1(shortOpts, longOpts, glossary string) *Lit {
	return LitN(shortOpts, longOpts, 1, 1, glossary)
}

// LitN declares a flag that may appear between minCount and maxCount
// times.
func LitN(shortOpts, longOpts string, minCount, maxCount int, glossary string) *Lit {
	return &Lit{
		Header: newHeader(shortOpts, longOpts, "", "", minCount, maxCount, glossary),
	}
}

func (o *Lit) Count() int { return o.count }

func (o *Lit) Reset() { o.count = 0 }

// Scan counts an occurrence. Any supplied text, such as the value of
// an environment variable trigger, is ignored.
func (o *Lit) Scan(value *string) ErrorKind {
	if o.count == o.MaxCount {
		return ErrMaxCount
	}
	o.count++
	return ErrNone
}

func (o *Lit) Check() ErrorKind {
	if o.count < o.MinCount {
		return ErrMinCount
	}
	return ErrNone
}

func (o *Lit) ReportError(w io.Writer, kind ErrorKind, value, progname string) {
	switch kind {
	case ErrMinCount:
		fmt.Fprintf(w, "%s: missing option ", progname)
		o.writeOption(w, o.Datatype, "\n")
	case ErrMaxCount:
		fmt.Fprintf(w, "%s: extraneous option ", progname)
		o.writeOption(w, value, "\n")
	}
}
