/*
Package argtab provides typed command-line option descriptors and a
small driver for them.

Each descriptor declares one option: its short and long triggers, a
value placeholder, multiplicity bounds, and glossary text. Descriptors
accumulate every occurrence of their option, so repeated options come
for free, and a descriptor can be reset and reused across parse
passes. A Table owns a set of descriptors and drives the whole
lifecycle: scan each recognized occurrence, apply environment variable
defaults, check multiplicity bounds, and report every failure from the
pass at once.

Descriptor API

	verbose := argtab.Lit0("v", "verbose", "print more detail")
	count := argtab.IntN("n", "count", "<int>", 1, 4, "how many (repeatable)")

	tbl := argtab.New("myprog", verbose, count)
	if err := tbl.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		tbl.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	for _, n := range count.Values() {
		// ...
	}

Integer options accept decimal values as well as hexadecimal, octal
and binary literals using the 0x, 0o and 0b prefixes, so 26, 0x1A,
0o32 and 0b11010 are interchangeable on the command line.

Struct binding

Bind derives a Table from a config struct, with declaration details in
`arg:"..."` struct tags:

	type Config struct {
		Verbose bool    `arg:"short=v,help=print more detail"`
		Count   []int64 `arg:"short=n,required,max=4,help=how many (repeatable)"`
		Name    string  `arg:"env=MYPROG_NAME,help=who to greet"`
	}

	cfg := Config{Name: "world"}
	b := argtab.MustBind("myprog", &cfg)
	if err := b.Parse(os.Args[1:]); err != nil {
		// ...
	}

Fields of types beyond bool, integer and string are converted through
SetterFor, which understands flag.Value-style Set methods,
encoding.TextUnmarshaler, encoding.BinaryUnmarshaler, time.Duration,
and the primitive types.
*/
package argtab
