package argtab

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"time"
)

// Setter converts one raw occurrence value, in the manner of
// flag.Value.
type Setter interface {
	Set(s string) error
}

// Val is an option descriptor that delegates value conversion to a
// Setter. It covers types the built-in descriptors do not, such as
// durations, timestamps, or anything implementing
// encoding.TextUnmarshaler.
type Val struct {
	Header
	set   Setter
	count int
}

// Val0 declares a setter-backed option that may appear at most once.
func Val0(shortOpts, longOpts, datatype, glossary string, set Setter) *Val {
	return ValN(shortOpts, longOpts, datatype, 0, 1, glossary, set)
}

// Val1 declares a setter-backed option that must appear exactly once.
func Val1(shortOpts, longOpts, datatype, glossary string, set Setter) *Val {
	return ValN(shortOpts, longOpts, datatype, 1, 1, glossary, set)
}

// ValN declares a setter-backed option that may appear between
// minCount and maxCount times. Each occurrence invokes the setter, so
// for plain value targets the last occurrence wins; accumulation is up
// to the setter.
func ValN(shortOpts, longOpts, datatype string, minCount, maxCount int, glossary string, set Setter) *Val {
	hdr := newHeader(shortOpts, longOpts, datatype, "<value>", minCount, maxCount, glossary)
	hdr.HasValue = true
	return &Val{
		Header: hdr,
		set:    set,
	}
}

func (o *Val) Count() int { return o.count }

func (o *Val) Reset() { o.count = 0 }

func (o *Val) Scan(value *string) ErrorKind {
	switch {
	case o.count == o.MaxCount:
		return ErrMaxCount
	case value == nil:
		o.count++
	default:
		if err := o.set.Set(*value); err != nil {
			return ErrBadValue
		}
		o.count++
	}
	return ErrNone
}

func (o *Val) Check() ErrorKind {
	if o.count < o.MinCount {
		return ErrMinCount
	}
	return ErrNone
}

func (o *Val) ReportError(w io.Writer, kind ErrorKind, value, progname string) {
	switch kind {
	case ErrMinCount:
		fmt.Fprintf(w, "%s: missing option ", progname)
		o.writeOption(w, o.Datatype, "\n")
	case ErrMaxCount:
		fmt.Fprintf(w, "%s: excess option ", progname)
		o.writeOption(w, value, "\n")
	case ErrBadValue:
		fmt.Fprintf(w, "%s: invalid argument \"%s\" to option ", progname, value)
		o.writeOption(w, o.Datatype, "\n")
	}
}

// SetterFor resolves a Setter for target, which should be a pointer to
// the value to fill in. Setter implementations are used directly;
// encoding.TextUnmarshaler and encoding.BinaryUnmarshaler
// implementations and time.Duration pointers get dedicated adapters;
// the remaining primitive pointers go through fmt.Sscanf. Returns nil
// if the type is not supported.
func SetterFor(target interface{}) Setter {
	switch v := target.(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return textSetter{v}
	case encoding.BinaryUnmarshaler:
		return binarySetter{v}
	case *time.Duration:
		return durationSetter{v}
	case *string:
		return stringSetter{v}
	case
		*bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return scanfSetter{v}
	default:
		return nil
	}
}

type stringSetter struct {
	v *string
}

func (ss stringSetter) Set(s string) error {
	*ss.v = s
	return nil
}

type textSetter struct {
	encoding.TextUnmarshaler
}

func (ts textSetter) Set(s string) error {
	return ts.UnmarshalText([]byte(s))
}

type binarySetter struct {
	encoding.BinaryUnmarshaler
}

func (bs binarySetter) Set(s string) error {
	return bs.UnmarshalBinary([]byte(s))
}

type scanfSetter struct {
	v interface{}
}

func (ss scanfSetter) Set(s string) error {
	n, err := fmt.Sscanf(s, "%v", ss.v)
	if err != nil {
		return err
	} else if n == 0 {
		return errors.New("scanf did not scan any items")
	}
	return nil
}

type durationSetter struct {
	duration *time.Duration
}

func (ds durationSetter) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*ds.duration = v
	return nil
}
