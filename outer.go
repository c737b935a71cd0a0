package main

import "github.com/mpetrovic/thforth/internal/panicerr"

// Do drives the outer interpreter over text (§4.5), reusing the existing
// dictionary, memory, and HERE across calls. A fatal error resets both
// stacks, exits Compile mode, and discards any in-progress builder before
// being returned (§7). Any unexpected panic (a bug in the interpreter
// itself, not a user-level error) is recovered and surfaced as an error
// rather than crashing the caller. Buffered output is flushed before an
// error is returned.
func (it *Interp) Do(text string) error {
	err := panicerr.Recover("Do", func() error {
		return it.do(text)
	})
	if err != nil {
		it.out.Flush()
	}
	return err
}

func (it *Interp) do(text string) error {
	it.in = []rune(text)
	it.pos = 0

	for {
		tok, ok := it.readToken()
		if !ok {
			break
		}

		switch tok {
		case "(":
			if !it.skipParenComment() {
				it.reset()
				return UnterminatedCommentError{}
			}
			continue
		case "\\":
			it.skipLineComment()
			continue
		}

		if err := it.dispatch(tok); err != nil {
			// trace on an unknown name is a query, not a fault: it
			// propagates the diagnostic without disturbing state.
			if _, isTraceQuery := err.(TraceUnknownError); !isTraceQuery {
				it.reset()
			}
			return err
		}
	}

	if it.mode == ModeCompile {
		it.reset()
		return IncompleteProgramError{}
	}
	if n := len(it.R); n != 0 {
		it.reset()
		return ReturnStackNotEmptyError{n}
	}

	if !it.silent {
		it.writeString("ok\n")
	}
	it.out.Flush()
	return nil
}

// dispatch resolves one token against the dictionary per §4.5 step 4.
func (it *Interp) dispatch(tok string) error {
	it.log("%s", tok)
	idx, known := it.dict.Lookup(tok)

	if it.mode == ModeExecute {
		if known {
			return it.invoke(idx, tok)
		}
		v, ok := it.parseLiteral(tok)
		if !ok {
			return UndefinedWordError{tok}
		}
		it.push(v)
		return nil
	}

	// Compile mode.
	if known {
		b, _ := it.dict.Binding(tok)
		if b == Immediate {
			return it.invoke(idx, tok)
		}
		entry := it.dict.Entry(idx)
		it.builder.call(idx, entry.Lin, entry.Lout)
		return nil
	}
	v, ok := it.parseLiteral(tok)
	if !ok {
		return UndefinedWordError{tok}
	}
	it.builder.lit(v)
	return nil
}

// readToken reads the next whitespace-delimited token, or ok=false at end
// of input.
func (it *Interp) readToken() (string, bool) {
	for it.pos < len(it.in) && isSpace(it.in[it.pos]) {
		it.pos++
	}
	if it.pos >= len(it.in) {
		return "", false
	}
	start := it.pos
	for it.pos < len(it.in) && !isSpace(it.in[it.pos]) {
		it.pos++
	}
	return string(it.in[start:it.pos]), true
}

// nextToken is readToken with the §7 "No target for create" error for
// exhausted input, shared by word, postpone, trace, and include.
func (it *Interp) nextToken() (string, error) {
	tok, ok := it.readToken()
	if !ok {
		return "", NoCreateTargetError{}
	}
	return tok, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// skipParenComment consumes up to and including the next ')'; false means
// the input ran out first.
func (it *Interp) skipParenComment() bool {
	for it.pos < len(it.in) {
		r := it.in[it.pos]
		it.pos++
		if r == ')' {
			return true
		}
	}
	return false
}

// skipLineComment consumes up to and including the next newline, or to
// end of input.
func (it *Interp) skipLineComment() {
	for it.pos < len(it.in) {
		r := it.in[it.pos]
		it.pos++
		if r == '\n' {
			return
		}
	}
}

// prependInput splices s (plus a trailing space) ahead of the remaining
// input, for «include».
func (it *Interp) prependInput(s string) {
	rest := append([]rune(nil), it.in[it.pos:]...)
	it.in = append([]rune(s+" "), rest...)
	it.pos = 0
}
