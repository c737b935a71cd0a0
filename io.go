package main

import (
	"os"

	"github.com/mpetrovic/thforth/internal/runeio"
)

// writeString writes s through the control-rune-safe writer.
func (it *Interp) writeString(s string) {
	for _, r := range s {
		runeio.WriteANSIRune(it.out, r)
	}
}

// emit implements «.»'s output side: format v in the given base and write
// it followed by a space, unless the interpreter is silent.
func (it *Interp) emit(v Cell, base int) {
	if it.silent {
		return
	}
	it.writeString(formatCell(v, base))
	it.writeString(" ")
}

// includeFile implements «include»: read path and splice its contents
// (plus a trailing space) ahead of the remaining input buffer.
func (it *Interp) includeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileNotFoundError{path}
	}
	it.prependInput(string(data))
	return nil
}
