// Package slogopt provides a Bind-able option struct for configuring
// the default slog logger from the command line or the environment.
package slogopt

import (
	"io"
	"log/slog"
	"os"
)

type Options struct {
	LogLevel slog.Level `arg:"env=LOG_LEVEL,help=minimum log level"`
	LogJSON  bool       `arg:"env=LOG_JSON,help=write logs as json"`
}

func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = opts.LogLevel

	var handler slog.Handler
	if opts.LogJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
}

func (opts *Options) Configure() {
	opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
