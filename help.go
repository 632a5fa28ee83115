package argtab

import (
	"io"
	"strings"
	"text/tabwriter"
	"text/template"
)

var helpTemplateString = `USAGE:
    {{.Usage}}

{{- if .Options}}

OPTIONS:
{{- range .Options}}
\t    \t{{.Spelling}}\t
{{- if .Glossary}}  {{.Glossary}}{{end}}
{{- end}}

{{- end}}

`
var glossaryTemplateString = `{{range .}}\t{{.Spelling}}\t
{{- if .Glossary}}  {{.Glossary}}{{end}}
{{end}}`

var helpTemplate *template.Template
var glossaryTemplate *template.Template

func init() {
	helpTemplate = template.Must(
		template.New("help").Parse(helpTemplateString),
	)
	glossaryTemplate = template.Must(
		template.New("glossary").Parse(glossaryTemplateString),
	)
}

type helpEntry struct {
	Spelling string
	Glossary string
}

// WriteUsage writes the one-line syntax summary, e.g.
// "prog [-v] -n <int>... [--name <string>]".
func (t *Table) WriteUsage(w io.Writer) {
	io.WriteString(w, t.usageString())
	io.WriteString(w, "\n")
}

func (t *Table) usageString() string {
	sb := strings.Builder{}
	sb.WriteString(t.Name)
	for _, opt := range t.opts {
		sb.WriteString(" ")
		sb.WriteString(syntaxString(opt))
	}
	return sb.String()
}

// WriteGlossary writes the aligned option listing, one option per
// line with its glossary text.
func (t *Table) WriteGlossary(w io.Writer) {
	tw := newEscapedTabWriter(w)
	err := glossaryTemplate.Execute(tw, t.helpEntries())
	if err != nil {
		panic(err)
	}
	tw.Flush()
}

// WriteHelp writes the usage summary followed by the option listing.
func (t *Table) WriteHelp(w io.Writer) {
	data := struct {
		Usage   string
		Options []helpEntry
	}{
		Usage:   t.usageString(),
		Options: t.helpEntries(),
	}

	tw := newEscapedTabWriter(w)
	err := helpTemplate.Execute(tw, data)
	if err != nil {
		panic(err)
	}
	tw.Flush()
}

func (t *Table) HelpString() string {
	sb := strings.Builder{}
	t.WriteHelp(&sb)
	return sb.String()
}

func (t *Table) helpEntries() []helpEntry {
	entries := []helpEntry{}
	for _, opt := range t.opts {
		hdr := opt.Hdr()
		entries = append(entries, helpEntry{
			Spelling: spellingString(hdr),
			Glossary: hdr.Glossary,
		})
	}
	return entries
}

// syntaxString renders one option for the usage line: the canonical
// spelling plus datatype, bracketed when the option need not appear,
// with an ellipsis when it may repeat.
func syntaxString(opt Option) string {
	hdr := opt.Hdr()
	sb := strings.Builder{}
	hdr.writeOption(&sb, syntaxDatatype(hdr), "")
	s := sb.String()
	if hdr.MinCount == 0 {
		s = "[" + s + "]"
	}
	if hdr.MaxCount > 1 {
		s += "..."
	}
	return s
}

// spellingString renders every trigger of the option for the
// glossary, e.g. "-c, --count <int>".
func spellingString(hdr *Header) string {
	parts := []string{}
	for _, r := range hdr.ShortOpts {
		parts = append(parts, "-"+string(r))
	}
	for _, name := range hdr.longNames() {
		parts = append(parts, "--"+name)
	}
	s := strings.Join(parts, ", ")
	if dt := syntaxDatatype(hdr); dt != "" {
		s += " " + dt
	}
	return s
}

func syntaxDatatype(hdr *Header) string {
	switch {
	case !hdr.HasValue:
		return ""
	case hdr.OptionalValue:
		return "[" + hdr.Datatype + "]"
	}
	return hdr.Datatype
}

type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t", `\f`, "\f"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}
