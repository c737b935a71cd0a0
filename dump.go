package main

import "fmt"

// Dump is a snapshot of interpreter state useful for debugging, grounded
// in the teacher's vmDumper but much smaller: dictionary and memory are
// now separate first-class arenas instead of one shared address space.
type Dump struct {
	Here    uint
	D       []Cell
	R       []Cell
	Mode    Mode
	Entries int
	Orphans []int
}

// Dump captures a snapshot of the interpreter's current state.
func (it *Interp) Dump() Dump {
	return Dump{
		Here:    it.here,
		D:       append([]Cell(nil), it.D...),
		R:       append([]Cell(nil), it.R...),
		Mode:    it.mode,
		Entries: it.dict.Len(),
		Orphans: it.Orphans(),
	}
}

// String renders a Dump for log output.
func (d Dump) String() string {
	mode := "execute"
	if d.Mode == ModeCompile {
		mode = "compile"
	}
	return fmt.Sprintf("here=%d mode=%s D=%v R=%v entries=%d orphans=%v",
		d.Here, mode, d.D, d.R, d.Entries, d.Orphans)
}
