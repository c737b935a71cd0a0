package main

// invoke drives the threaded inner interpreter for dictionary entry i
// (§4.4). name is used only to annotate a stack-underflow/output-size
// diagnostic for the word the caller asked to run; it may be empty.
func (it *Interp) invoke(i int, name string) error {
	entry := it.dict.Entry(i)
	if len(it.D) < entry.Lin {
		return StackUnderflowError{name, entry.Lin, len(it.D)}
	}

	predepth := len(it.D)
	it.pushR(Cell(it.dict.PCBase(i)))

	if err := it.resolve(); err != nil {
		return err
	}

	want := predepth - entry.Lin + entry.Lout
	if len(it.D) != want {
		return OutputSizeError{name, want, len(it.D)}
	}
	return nil
}

// resolve runs the resolution loop (§4.4) until the return stack empties.
func (it *Interp) resolve() error {
	for len(it.R) > 0 {
		pcCell, _ := it.popR()
		pc := int(pcCell)

		idx, offset, ok := it.dict.Decode(pc)
		if !ok {
			return InvalidReturnItemError{pcCell}
		}
		entry := it.dict.Entry(idx)

		switch entry.Kind {
		case KindPrimitive:
			if offset != 0 {
				return InvalidReturnItemError{pcCell}
			}
			if len(it.D) < entry.Lin {
				return StackUnderflowError{"", entry.Lin, len(it.D)}
			}
			n := len(it.D) - entry.Lin
			args := append([]Cell(nil), it.D[n:]...)
			it.D = it.D[:n]

			res, err := entry.Fn(it, args)
			if err != nil {
				return err
			}
			it.D = append(it.D, res...)

		case KindCompound:
			off := offset
			for off < len(entry.Body) && entry.Body[off].Op == OpLit {
				it.push(entry.Body[off].Lit)
				off++
			}
			if off >= len(entry.Body) {
				continue
			}

			switch ins := entry.Body[off]; ins.Op {
			case OpRet:
				continue
			case OpCall:
				cont := it.dict.PCBase(idx) + off + 1
				it.pushR(Cell(cont))
				it.pushR(Cell(it.dict.PCBase(ins.Idx)))
			}
		}
	}
	return nil
}
