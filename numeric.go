package main

import (
	"strconv"
	"strings"
)

// parseLiteral parses tok as a number per §6's literal syntax: a leading
// `#` forces base 10 for that token (dispatch has already failed to find
// tok as a bound name, so the "a word named #... wins" precedence is
// automatically satisfied by lookup running before this fallback); absent
// that prefix, tok is parsed in the current base (memory[0]).
func (it *Interp) parseLiteral(tok string) (Cell, bool) {
	s := tok
	base := 10
	if strings.HasPrefix(tok, "#") {
		s = tok[1:]
	} else if b, err := it.load(baseAddr); err == nil {
		if n := int(b); n >= 2 && n <= 36 {
			base = n
		}
	}
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	return Cell(n).wrap(it.width), true
}

// formatCell renders v in base for «.».
func formatCell(v Cell, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return strings.ToUpper(strconv.FormatInt(int64(v), base))
}
