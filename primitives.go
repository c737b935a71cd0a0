package main

// installPrimitives appends the native operation table (§4.2) to d in
// construction order. `:` is deliberately absent here: it does not exist
// yet when this runs, and is hand-built afterward from word/bd/] (see
// bootstrapColon in prelude.go).
func installPrimitives(d *Dictionary) {
	raw := func(name string, lin, lout int, b Binding, fn PrimFunc) {
		d.Raw(name, Entry{Kind: KindPrimitive, Lin: lin, Lout: lout, Fn: fn}, b)
	}

	raw(",", 1, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, it.comma(d[0])
	})
	raw("here", 0, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{it.hereAddr()}, nil
	})
	raw("@", 1, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		v, err := it.load(d[0])
		if err != nil {
			return nil, err
		}
		return []Cell{v}, nil
	})
	raw("!", 2, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		// (v a →)
		return nil, it.store(d[1], d[0])
	})

	raw("drop", 1, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, nil
	})
	raw("dup", 1, 2, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[0], d[0]}, nil
	})
	raw("swap", 2, 2, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[1], d[0]}, nil
	})
	raw("over", 2, 3, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[0], d[1], d[0]}, nil
	})
	raw("tuck", 2, 3, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[1], d[0], d[1]}, nil
	})
	raw("rot", 3, 3, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[1], d[2], d[0]}, nil
	})
	raw("-rot", 3, 3, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{d[2], d[0], d[1]}, nil
	})

	arith := func(name string, f func(a, b int64) (int64, error)) {
		raw(name, 2, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
			r, err := f(int64(d[0]), int64(d[1]))
			if err != nil {
				return nil, err
			}
			return []Cell{Cell(r).wrap(it.width)}, nil
		})
	}
	arith("+", func(a, b int64) (int64, error) { return a + b, nil })
	arith("-", func(a, b int64) (int64, error) { return a - b, nil })
	arith("*", func(a, b int64) (int64, error) { return a * b, nil })
	arith("/", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, DivisionByZeroError{}
		}
		return floorDiv(a, b), nil
	})

	cmp := func(name string, f func(a, b int64) bool) {
		raw(name, 2, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
			if f(int64(d[0]), int64(d[1])) {
				return []Cell{1}, nil
			}
			return []Cell{0}, nil
		})
	}
	cmp("=", func(a, b int64) bool { return a == b })
	cmp("<", func(a, b int64) bool { return a < b })
	cmp("<=", func(a, b int64) bool { return a <= b })
	cmp(">", func(a, b int64) bool { return a > b })
	cmp(">=", func(a, b int64) bool { return a >= b })
	cmp("<>", func(a, b int64) bool { return a != b })

	raw(">r", 1, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		top, ok := it.popR()
		if !ok {
			return nil, ReturnLookupError{}
		}
		it.pushR(d[0])
		it.pushR(top)
		return nil, nil
	})
	raw("r>", 0, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		top, ok := it.popR()
		if !ok {
			return nil, ReturnLookupError{}
		}
		v, ok := it.popR()
		if !ok {
			return nil, ReturnLookupError{}
		}
		it.pushR(top)
		return []Cell{v}, nil
	})

	raw(".", 1, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		base, _ := it.load(baseAddr)
		it.emit(d[0], int(base))
		return nil, nil
	})

	raw(";", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, it.endDef(false)
	})
	raw(";im", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, it.endDef(true)
	})
	raw(";r", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, it.endDefReduce(false)
	})
	raw(";imr", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		return nil, it.endDefReduce(true)
	})

	raw("[", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		it.mode = ModeExecute
		return nil, nil
	})
	raw("]", 0, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		it.mode = ModeCompile
		return nil, nil
	})

	raw("literal", 1, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		if it.builder == nil {
			return nil, NotCompilingError{"literal"}
		}
		it.builder.lit(d[0])
		return nil, nil
	})

	raw("postpone", 0, 0, Immediate, func(it *Interp, d []Cell) ([]Cell, error) {
		if it.builder == nil {
			return nil, NotCompilingError{"postpone"}
		}
		tok, err := it.nextToken()
		if err != nil {
			return nil, err
		}
		if idx, ok := it.dict.Lookup(tok); ok {
			entry := it.dict.Entry(idx)
			it.builder.call(idx, entry.Lin, entry.Lout)
			return nil, nil
		}
		v, ok := it.parseLiteral(tok)
		if !ok {
			return nil, UndefinedWordError{tok}
		}
		it.builder.lit(v)
		return nil, nil
	})

	raw("word", 0, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		tok, err := it.nextToken()
		if err != nil {
			return nil, err
		}
		it.pad = canon(tok)
		return nil, nil
	})
	raw("bd", 0, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		it.builder = newBuilder(it.pad)
		return nil, nil
	})

	raw("include", 0, 0, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		tok, err := it.nextToken()
		if err != nil {
			return nil, err
		}
		return nil, it.includeFile(tok)
	})

	raw("trace", 0, 2, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		tok, err := it.nextToken()
		if err != nil {
			return nil, err
		}
		idx, ok := it.dict.Lookup(tok)
		if !ok {
			return nil, TraceUnknownError{tok}
		}
		e := it.dict.Entry(idx)
		return []Cell{Cell(e.Lin), Cell(e.Lout)}, nil
	})

	raw("cell", 0, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{Cell(it.width)}, nil
	})
	raw("base", 0, 1, Normal, func(it *Interp, d []Cell) ([]Cell, error) {
		return []Cell{Cell(baseAddr)}, nil
	})
}

// floorDiv implements «/»'s floor-division semantics, unlike Go's
// truncating integer division.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// endDef finalizes the active definition via the builder's plain path
// (§4.3 end, reduce=false).
func (it *Interp) endDef(immediate bool) error {
	if it.builder == nil {
		return NotCompilingError{";"}
	}
	it.builder.end(it.dict, immediate, false)
	it.builder = nil
	it.mode = ModeExecute
	return nil
}

// endDefReduce finalizes the active definition via the single-op
// reduction path (§4.3 end, reduce=true): `;r`/`;imr`.
func (it *Interp) endDefReduce(immediate bool) error {
	if it.builder == nil {
		return NotCompilingError{";r"}
	}
	it.builder.end(it.dict, immediate, true)
	it.builder = nil
	it.mode = ModeExecute
	return nil
}
