package fuzzyregex

// extractor walks a filled distance table backwards from the bottom-right
// cell and enumerates every optimal decomposition of the text. All state is
// local to the call: each in-progress decomposition owns a slot, and every
// tie in the table forks the current slot and pushes a frame onto an
// explicit worklist instead of recursing.
type extractor struct {
	pattern           []rune
	text              []rune
	d                 *distanceMatrix
	ignorePunctuation bool

	slots []slot
	work  []frame
}

// slot accumulates one decomposition. Pieces are appended in reverse text
// order while walking and reversed once at the end.
type slot struct {
	vars   []string
	tokens []string
}

// frame is a pending walk: a table position, the slot it writes into, and
// whether the next flushed piece must be preceded by a token to keep the
// token/variable alternation intact.
type frame struct {
	row, col  int
	slot      int
	needToken bool
}

// extract enumerates all optimal decompositions of t against p using the
// filled table d.
func extract(p, t []rune, d *distanceMatrix, ignorePunctuation bool) []Extraction {
	e := &extractor{
		pattern:           p,
		text:              t,
		d:                 d,
		ignorePunctuation: ignorePunctuation,
		slots:             []slot{{}},
	}
	e.work = append(e.work, frame{row: len(p), col: len(t), slot: 0, needToken: true})
	for len(e.work) > 0 {
		f := e.work[len(e.work)-1]
		e.work = e.work[:len(e.work)-1]
		e.walk(f)
	}

	out := make([]Extraction, len(e.slots))
	for i, s := range e.slots {
		out[i] = Extraction{
			Variables: reverseStrings(s.vars),
			Tokens:    reverseStrings(s.tokens),
		}
	}

	return out
}

// walk runs one frame to completion, forking new frames at every tie.
func (e *extractor) walk(f frame) {
	row, col, cur, needToken := f.row, f.col, f.slot, f.needToken
	var pendVar, pendTok []rune // reverse text order, like the slot pieces

	for row >= 0 && col > 0 {
		switch {
		case row > 0 && e.pattern[row-1] == Wildcard:
			// Wildcard row: slide left while the cost stays flat, growing
			// the variable. Every flat cell that also matches the cell
			// above is an equally good exit, so it forks.
			for col >= 1 {
				if e.d.at(row, col-1) == e.d.at(row, col) {
					pendVar = append(pendVar, e.text[col-1])
					col--
				}
				if row > 1 && col >= 1 {
					if e.d.at(row, col-1) != e.d.at(row, col) {
						row--
						if e.d.at(row, col) > e.d.at(row, col-1) {
							col--
						}

						break
					}
					if e.d.at(row, col-1) == e.d.at(row-1, col) {
						e.fork(cur, needToken, reverseRunes(pendVar), true, row-1, col)
					}
				}
			}
			e.flushVar(cur, &needToken, reverseRunes(pendVar))
			pendVar = pendVar[:0]

		case row > 1 && e.pattern[row-2] == Wildcard:
			// Row just past a wildcard: close out the pending token. With
			// punctuation ignored, trailing punctuation columns are
			// absorbed into the token first.
			if e.ignorePunctuation && isSymbol(e.text[col-1]) {
				for col > 1 && e.d.at(row, col-1) == e.d.at(row, col) {
					pendTok = append(pendTok, e.text[col-1])
					col--
				}
			}
			if col > 1 && e.d.at(row-1, col-1) == e.d.at(row-1, col) && e.d.at(row, col) != e.d.at(row-1, col-1) {
				// the character may belong to the token or to the wildcard
				branch := append(append([]rune(nil), pendTok...), e.text[col-1])
				e.fork(cur, needToken, reverseRunes(branch), false, row-1, col-1)
				row--
			} else {
				pendTok = append(pendTok, e.text[col-1])
				row--
				col--
			}
			e.flushToken(cur, &needToken, reverseRunes(pendTok))
			pendTok = pendTok[:0]

		default:
			if row > 0 {
				up := e.d.at(row-1, col)
				diag := e.d.at(row-1, col-1)
				left := e.d.at(row, col-1)
				best := minCost(minCost(up, diag), left)
				switch {
				case up == best && up == diag && e.d.at(row, col) == left:
					row--
				case diag == best:
					pendTok = append(pendTok, e.text[col-1])
					row--
					col--
				case up == best:
					row--
				default:
					pendTok = append(pendTok, e.text[col-1])
					col--
				}
			} else {
				pendTok = append(pendTok, e.text[col-1])
				col--
			}
			if col == 0 {
				e.flushToken(cur, &needToken, reverseRunes(pendTok))
				pendTok = pendTok[:0]
			}
		}
	}

	// Pattern rows left over once the text is exhausted contribute empty
	// pieces so the alternation stays intact.
	if col == 0 {
		for ; row > 0; row-- {
			isVar := e.pattern[row-1] == Wildcard
			if !isVar && needToken {
				e.flushToken(cur, &needToken, "")
			} else if isVar && !needToken {
				e.flushVar(cur, &needToken, "")
			}
		}
	}
	if needToken {
		e.flushToken(cur, &needToken, "")
	}
}

// flushVar appends a finished variable to the slot, padding an empty token
// in front (in text order, behind in reverse order) when two variables would
// otherwise touch.
func (e *extractor) flushVar(s int, needToken *bool, v string) {
	if *needToken {
		e.slots[s].tokens = append(e.slots[s].tokens, "")
	}
	e.slots[s].vars = append(e.slots[s].vars, v)
	*needToken = true
}

// flushToken appends a finished token to the slot.
func (e *extractor) flushToken(s int, needToken *bool, tok string) {
	e.slots[s].tokens = append(e.slots[s].tokens, tok)
	*needToken = false
}

// fork clones slot s, flushes piece into the clone (as a variable when
// isVar, as a token otherwise), and queues a frame that continues the clone
// independently from (row, col).
func (e *extractor) fork(s int, needToken bool, piece string, isVar bool, row, col int) {
	src := e.slots[s]
	e.slots = append(e.slots, slot{
		vars:   append([]string(nil), src.vars...),
		tokens: append([]string(nil), src.tokens...),
	})
	ns := len(e.slots) - 1
	if isVar {
		e.flushVar(ns, &needToken, piece)
	} else {
		e.flushToken(ns, &needToken, piece)
	}
	e.work = append(e.work, frame{row: row, col: col, slot: ns, needToken: needToken})
}

func reverseRunes(rs []rune) string {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}

	return string(out)
}

func reverseStrings(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}

	return out
}
