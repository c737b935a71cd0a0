package main

// Builder accumulates the body of the word currently being compiled and
// infers its stack effect as operations are appended, per §4.3. Its
// bookkeeping mirrors Forth.do's Compile-state branch in the Python
// original this interpreter descends from: lin tracks how deep the stack
// must already be for the body to run without underflow, lout tracks the
// depth reached so far, both computed as if the body ran against an
// initially empty stack.
type Builder struct {
	Name string
	Lin  int
	Lout int
	Body []Instruction
}

// newBuilder starts a definition named from the given token.
func newBuilder(name string) *Builder {
	return &Builder{Name: name}
}

// lit appends a literal push; it always yields exactly one more value than
// was on the stack before it, regardless of current depth.
func (b *Builder) lit(v Cell) {
	b.Body = append(b.Body, litInstr(v))
	b.Lout++
}

// call appends an invocation of dictionary entry i with declared effect
// (nlin, nlout), adjusting the body's running (lin, lout) to account for
// whatever i consumes and produces against the accumulated virtual stack.
func (b *Builder) call(i int, nlin, nlout int) {
	d := nlin - b.Lout
	if d > 0 {
		b.Lin += d
		b.Lout += d
	}
	b.Body = append(b.Body, callInstr(i))
	b.Lout = b.Lout - nlin + nlout
}

// end finalizes the body, applying the single-op reduction when requested
// and the body truly is a single Call, else installing it as a Compound
// entry via Install, which reuses a structurally equal entry when one
// exists. It returns the index the name now resolves to.
func (b *Builder) end(d *Dictionary, immediate, reduce bool) int {
	b.Body = append(b.Body, retInstr())

	binding := Normal
	if immediate {
		binding = Immediate
	}

	if reduce && len(b.Body) == 2 {
		switch op := b.Body[0]; op.Op {
		case OpCall:
			d.Rebind(b.Name, op.Idx, binding)
			return op.Idx
		}
	}

	return d.Install(b.Name, Entry{
		Kind: KindCompound,
		Lin:  b.Lin,
		Lout: b.Lout,
		Body: b.Body,
	}, binding)
}
