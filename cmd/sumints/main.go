// Command sumints adds up integers given on the command line, in any
// of the notations argtab accepts (decimal, 0x, 0o, 0b). It exists
// mostly as a working example of the struct binding API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/isobit/argtab"
	"github.com/isobit/argtab/slogopt"
)

type config struct {
	slogopt.Options
	Verbose bool    `arg:"short=v,help=log each value as it is added"`
	Value   []int64 `arg:"short=n,required,max=16,help=integer to add (repeatable)"`
}

func main() {
	cfg := config{}
	b := argtab.MustBind("sumints", &cfg)
	if err := b.Parse(os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(color.Error, err)
		fmt.Fprintln(os.Stderr)
		b.Table.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	cfg.Configure()

	var sum int64
	for _, v := range cfg.Value {
		sum += v
		if cfg.Verbose {
			slog.Info("added", "value", v, "sum", sum)
		}
	}
	fmt.Println(sum)
}
