package main

import (
	"flag"
	"io"
	"os"

	"github.com/mpetrovic/thforth/internal/flushio"
	"github.com/mpetrovic/thforth/internal/logio"
)

func main() {
	var (
		memLimit uint
		width    int
		silent   bool
		trace    bool
		dump     bool
	)
	flag.UintVar(&memLimit, "mem-limit", 0, "enable memory limit")
	flag.IntVar(&width, "cell-width", int(DefaultWidth), "cell width in bytes {1,2,4,8}")
	flag.BoolVar(&silent, "silent", false, "suppress . output and the trailing ok")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a dump after execution")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	var logf func(string, ...interface{})
	var out io.Writer = os.Stdout
	if trace {
		logf = log.Leveledf("TRACE")
		// mirror `.`/ok output into the trace stream alongside stdout, so a
		// captured trace log reads as a single interleaved transcript.
		tw := &logio.Writer{Logf: log.Leveledf("OUT")}
		defer tw.Close()
		out = flushio.WriteFlushers(flushio.NewWriteFlusher(os.Stdout), flushio.NewWriteFlusher(tw))
	}

	vm, err := New(
		WithCellWidth(Width(width)),
		WithSilent(silent),
		WithMemLimit(memLimit),
		WithOutput(out),
		WithLogf(logf),
	)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	if dump {
		defer func() {
			lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
			defer lw.Close()
			io.WriteString(lw, vm.Dump().String())
		}()
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	log.ErrorIf(vm.Do(string(text)))
}
