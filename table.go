package argtab

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Table owns a set of option descriptors and drives their lifecycle
// over one command line at a time. A Table may parse any number of
// command lines; each Parse call resets the descriptors first.
type Table struct {
	Name string

	// Env supplies values for options that declare an EnvVar.
	// Defaults to OSEnv.
	Env Env

	// Logger, when set, receives debug traces of each scan.
	Logger *slog.Logger

	opts     []Option
	triggers map[string]Option
	rest     []string
}

// New creates a Table with the provided name and descriptors. New
// panics on invalid declarations, such as duplicate triggers; use
// Build to have errors returned instead.
func New(name string, opts ...Option) *Table {
	t, err := Build(name, opts...)
	if err != nil {
		panic(fmt.Sprintf("argtab: %s", err))
	}
	return t
}

// Build is like New, but it returns any errors instead of calling
// panic, at the expense of being harder to chain.
func Build(name string, opts ...Option) (*Table, error) {
	t := &Table{
		Name:     name,
		Env:      OSEnv{},
		triggers: map[string]Option{},
	}
	for _, opt := range opts {
		if err := t.add(opt); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(opt Option) error {
	hdr := opt.Hdr()
	for _, r := range hdr.ShortOpts {
		key := string(r)
		if _, dup := t.triggers[key]; dup {
			return errors.Errorf("duplicate option -%s", key)
		}
		t.triggers[key] = opt
	}
	for _, name := range hdr.longNames() {
		if _, dup := t.triggers[name]; dup {
			return errors.Errorf("duplicate option --%s", name)
		}
		t.triggers[name] = opt
	}
	t.opts = append(t.opts, opt)
	return nil
}

// Options returns the descriptors in declaration order.
func (t *Table) Options() []Option { return t.opts }

// Args returns the positional arguments left over by the last Parse.
func (t *Table) Args() []string { return t.rest }

// Reset rewinds every descriptor so the same declarations can parse
// another command line.
func (t *Table) Reset() {
	for _, opt := range t.opts {
		opt.Reset()
	}
	t.rest = nil
}

// Parse scans args (the command line without the program name),
// applies environment variable defaults for options that were not
// supplied, and checks every descriptor's multiplicity bounds. All
// failures from the pass accumulate into the returned *ParseErrors; a
// nil error means the whole pass succeeded.
func (t *Table) Parse(args []string) error {
	t.Reset()
	perrs := &ParseErrors{progname: t.Name}

	p := parser{table: t, errs: perrs, args: args}
	p.run()
	t.rest = p.args

	t.parseEnv(perrs)

	for _, opt := range t.opts {
		if kind := opt.Check(); kind != ErrNone {
			perrs.add(opt, kind, "")
		}
	}

	if len(perrs.errs) > 0 {
		return perrs
	}
	return nil
}

// parseEnv scans values from the environment for options that declare
// an EnvVar and saw no occurrence on the command line. Command-line
// occurrences always win.
func (t *Table) parseEnv(perrs *ParseErrors) {
	env := t.Env
	if env == nil {
		env = OSEnv{}
	}
	for _, opt := range t.opts {
		hdr := opt.Hdr()
		if hdr.EnvVar == "" || opt.Count() > 0 {
			continue
		}
		value, ok := env.Lookup(hdr.EnvVar)
		if !ok {
			continue
		}
		t.trace("scan env", "var", hdr.EnvVar)
		if kind := opt.Scan(&value); kind != ErrNone {
			perrs.add(opt, kind, value)
		}
	}
}

func (t *Table) trace(msg string, args ...any) {
	if t.Logger != nil {
		t.Logger.Debug(msg, args...)
	}
}

// ParseError is one failure recorded during a parse pass. Option is
// nil for driver-level failures such as an unrecognized trigger.
type ParseError struct {
	Option Option
	Kind   ErrorKind
	Text   string
}

// ParseErrors collects every failure from one parse pass.
type ParseErrors struct {
	progname string
	errs     []ParseError
}

func (pe *ParseErrors) add(opt Option, kind ErrorKind, text string) {
	pe.errs = append(pe.errs, ParseError{Option: opt, Kind: kind, Text: text})
}

// Errors returns the collected failures in the order they occurred.
func (pe *ParseErrors) Errors() []ParseError { return pe.errs }

// Report writes one diagnostic line per collected failure, routing
// descriptor failures through the owning descriptor's ReportError.
func (pe *ParseErrors) Report(w io.Writer, progname string) {
	for _, e := range pe.errs {
		if e.Option != nil {
			e.Option.ReportError(w, e.Kind, e.Text, progname)
			continue
		}
		switch e.Kind {
		case ErrUnknownOption:
			fmt.Fprintf(w, "%s: invalid option \"%s\"\n", progname, e.Text)
		case ErrMissingArg:
			fmt.Fprintf(w, "%s: option \"%s\" requires an argument\n", progname, e.Text)
		}
	}
}

func (pe *ParseErrors) Error() string {
	sb := strings.Builder{}
	pe.Report(&sb, pe.progname)
	return strings.TrimRight(sb.String(), "\n")
}
