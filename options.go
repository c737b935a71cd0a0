package main

import (
	"io"
	"os"
)

// Option configures an Interp at construction time.
type Option func(*options)

type options struct {
	width    Width
	silent   bool
	out      io.Writer
	memLimit uint
	logf     func(string, ...interface{})
}

func defaultOptions() options {
	return options{
		width: DefaultWidth,
		out:   os.Stdout,
	}
}

// WithCellWidth sets the interpreter's cell width in bytes; must be one of
// {1, 2, 4, 8}, checked at New.
func WithCellWidth(w Width) Option {
	return func(o *options) { o.width = w }
}

// WithSilent suppresses `.` output and the trailing "ok" (§6).
func WithSilent(silent bool) Option {
	return func(o *options) { o.silent = silent }
}

// WithOutput sets the writer that `.` output and the trailing "ok" go to.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithMemLimit caps the memory arena's addressable extent; zero (the
// default) means unlimited.
func WithMemLimit(limit uint) Option {
	return func(o *options) { o.memLimit = limit }
}

// WithLogf installs a debug log sink, used only for optional step tracing
// (each token is logged as the outer interpreter dispatches it); nil (the
// default) disables it.
func WithLogf(logf func(string, ...interface{})) Option {
	return func(o *options) { o.logf = logf }
}
