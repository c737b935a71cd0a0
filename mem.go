package main

// load implements «@»: v = memory[a] if a is within the allocated arena,
// else 0. Negative addresses are treated as out of range and read as 0;
// an address past a configured memory limit is reported as an error.
func (it *Interp) load(addr Cell) (Cell, error) {
	a, ok := addrOf(addr)
	if !ok {
		return 0, nil
	}
	v, err := it.mem.Load(a)
	if err != nil {
		return 0, err
	}
	return Cell(v), nil
}

// store implements «!»: zero-extends the arena to at least a+1 cells and
// sets memory[a] = v, without touching HERE.
func (it *Interp) store(addr, v Cell) error {
	a, ok := addrOf(addr)
	if !ok {
		return InvalidAddressError{addr}
	}
	return it.mem.Stor(a, int64(v))
}

// comma implements «,»: place v at memory[HERE] and advance HERE.
func (it *Interp) comma(v Cell) error {
	if err := it.mem.Stor(it.here, int64(v)); err != nil {
		return err
	}
	it.here++
	return nil
}

// hereAddr implements «here»: push current HERE.
func (it *Interp) hereAddr() Cell { return Cell(it.here) }

func addrOf(c Cell) (uint, bool) {
	if c < 0 {
		return 0, false
	}
	return uint(c), true
}
