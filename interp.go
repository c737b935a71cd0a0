package main

import (
	"github.com/mpetrovic/thforth/internal/flushio"
	"github.com/mpetrovic/thforth/internal/mem"
)

// Mode is the outer interpreter's current state.
type Mode int

// Modes.
const (
	ModeExecute Mode = iota
	ModeCompile
)

// baseAddr is the reserved memory cell holding the current I/O numeric
// base; HERE starts just past it so user code's first `,` lands at 1.
const baseAddr = 0

// Interp is a single, independently-owned interpreter instance: the
// dictionary, memory arena, stacks, input buffer, and mode together, with
// no state shared between instances (§5).
type Interp struct {
	dict *Dictionary
	mem  mem.Cells
	here uint

	D []Cell
	R []Cell

	mode    Mode
	builder *Builder

	width  Width
	silent bool

	out flushio.WriteFlusher

	in   []rune
	pos  int
	pad  string

	logf func(string, ...interface{})
}

// New builds an interpreter ready to run, with the primitive table
// installed and the bootstrap prelude executed.
func New(opts ...Option) (*Interp, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validWidth(o.width); err != nil {
		return nil, err
	}

	it := &Interp{
		dict:   NewDictionary(),
		width:  o.width,
		silent: o.silent,
		out:    flushio.NewWriteFlusher(o.out),
		logf:   o.logf,
	}
	it.mem.Limit = o.memLimit

	if err := it.mem.Stor(baseAddr, 10); err != nil {
		return nil, err
	}
	it.here = 1

	installPrimitives(it.dict)
	bootstrapColon(it.dict)

	if err := it.Do(preludeSource); err != nil {
		return nil, err
	}
	return it, nil
}

// push appends a value to the data stack.
func (it *Interp) push(v Cell) { it.D = append(it.D, v) }

// pop removes and returns the top of the data stack; ok is false on
// underflow (callers check depth before invoking a word, so this is only
// used internally where depth is already guaranteed).
func (it *Interp) pop() (v Cell, ok bool) {
	if n := len(it.D); n > 0 {
		v = it.D[n-1]
		it.D = it.D[:n-1]
		return v, true
	}
	return 0, false
}

func (it *Interp) pushR(v Cell) { it.R = append(it.R, v) }

func (it *Interp) popR() (v Cell, ok bool) {
	if n := len(it.R); n > 0 {
		v = it.R[n-1]
		it.R = it.R[:n-1]
		return v, true
	}
	return 0, false
}

// reset clears both stacks, exits Compile mode, and discards the builder,
// per §5/§7's fatal-error unwind contract.
func (it *Interp) reset() {
	it.D = it.D[:0]
	it.R = it.R[:0]
	it.mode = ModeExecute
	it.builder = nil
}

func (it *Interp) log(mess string, args ...interface{}) {
	if it.logf != nil {
		it.logf(mess, args...)
	}
}

// Orphans exposes the dictionary's unreachable-entry analysis.
func (it *Interp) Orphans() []int { return orphans(it.dict) }

// Dictionary exposes the underlying dictionary, chiefly for Dump/tests.
func (it *Interp) Dictionary() *Dictionary { return it.dict }

// Width reports the interpreter's configured cell width.
func (it *Interp) Width() Width { return it.width }

// Stack returns a copy of the current data stack, bottom first.
func (it *Interp) Stack() []Cell { return append([]Cell(nil), it.D...) }
