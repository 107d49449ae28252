package fuzzyregex

import (
	"math"
	"unicode"
)

// cost is a single cell of the distance table: either a concrete edit
// distance or unreachable. unreachable compares greater than every concrete
// cost, and arithmetic on it saturates so the tag survives the fill intact.
// Only the debug renderer turns it into a printable sentinel.
type cost int32

const unreachable cost = math.MaxInt32

func (c cost) reachable() bool { return c != unreachable }

// inc returns c+1, saturating at unreachable.
func (c cost) inc() cost {
	if c == unreachable {
		return unreachable
	}

	return c + 1
}

// dec returns c-by, saturating at unreachable. Reachable cells may go
// transiently negative during the fill; that is fine, inc restores them.
func (c cost) dec(by cost) cost {
	if c == unreachable {
		return unreachable
	}

	return c - by
}

func minCost(a, b cost) cost {
	if a < b {
		return a
	}

	return b
}

// distanceMatrix is the dense (m+1)x(n+1) edit-distance table for one
// comparison: row i, column j holds the cost of aligning the first i pattern
// characters with the first j text characters. Cells are stored row-major in
// a single slice.
type distanceMatrix struct {
	rows, cols int // m+1, n+1
	cells      []cost
}

func newDistanceMatrix(m, n int) *distanceMatrix {
	return &distanceMatrix{
		rows:  m + 1,
		cols:  n + 1,
		cells: make([]cost, (m+1)*(n+1)),
	}
}

func (d *distanceMatrix) at(i, j int) cost     { return d.cells[i*d.cols+j] }
func (d *distanceMatrix) set(i, j int, c cost) { d.cells[i*d.cols+j] = c }

// equalRunes compares two characters, optionally folding case.
func equalRunes(a, b rune, ignoreCase bool) bool {
	if a == b {
		return true
	}

	return ignoreCase && unicode.ToUpper(a) == unicode.ToUpper(b)
}

// buildMatrix fills the distance table for the normalized pattern p against
// the text t.
//
// Base cases: row 0 counts insertions; column 0 counts deletions up to the
// first wildcard. A row whose pattern prefix has a literal beyond a wildcard
// can never align with empty text, so its column-0 cell is unreachable (the
// wildcard row sweep overwrites column 0 where the wildcard absorbs the
// empty run).
//
// A wildcard row is swept left to right: until the row above bottoms out at
// zero, each cell is the running minimum of the cell above and the cell to
// the left (the wildcard absorbing one more character costs nothing extra).
// Once the row above reaches zero, the rest of the row flattens to zero —
// from there the wildcard swallows any remaining prefix for free.
//
// A literal row follows the classic three-way recurrence. When punctuation
// is ignored, a run of punctuation columns is transparent: its cost carries
// over from the left edge of the run, and a run at the very start of the
// table additionally shifts the base row beneath it so leading punctuation
// costs nothing.
func buildMatrix(p, t []rune, o Options) *distanceMatrix {
	m, n := len(p), len(t)
	d := newDistanceMatrix(m, n)

	v := m // index of the first wildcard, or m when there is none
	for i, r := range p {
		if r == Wildcard {
			v = i
			break
		}
	}

	for j := 0; j <= n; j++ {
		d.set(0, j, cost(j))
	}
	for i := 1; i <= m; i++ {
		if i <= v {
			d.set(i, 0, cost(i))
		} else {
			d.set(i, 0, unreachable)
		}
	}

	// started flips once any cell past the leading punctuation run of the
	// first literal row has been filled; the base-row shift only applies
	// before that.
	started := false
	for i := 1; i <= m; i++ {
		if p[i-1] == Wildcard {
			hitZero := false
			for j := 0; j <= n; j++ {
				switch {
				case d.at(i-1, j) == 0:
					d.set(i, j, 1)
					hitZero = true
				case hitZero:
					d.set(i, j-1, d.at(i-1, j-1))
					for ; j <= n; j++ {
						d.set(i, j, 0)
					}
					hitZero = false
				case j > 0:
					d.set(i, j, minCost(d.at(i-1, j), d.at(i, j-1)))
				default:
					d.set(i, j, d.at(i-1, j))
				}
			}
			if hitZero {
				// the row above reached zero only at the last column
				d.set(i, n, d.at(i-1, n))
			}
			started = true

			continue
		}

		for j := 1; j <= n; j++ {
			if o.IgnorePunctuation && isSymbol(t[j-1]) {
				for ; j <= n; j++ {
					if !isSymbol(t[j-1]) {
						j--
						break
					}
					if started {
						d.set(i, j, d.at(i, j-1))
						continue
					}
					adj := cost(0)
					if j == 1 {
						adj = 1
					}
					d.set(i, j, d.at(i, j-1).dec(adj))
					d.set(i-1, j, d.at(i-1, j-1))
				}
			} else {
				match := cost(0)
				if equalRunes(p[i-1], t[j-1], o.IgnoreCase) {
					match = 1
				}
				best := minCost(minCost(d.at(i-1, j), d.at(i, j-1)), d.at(i-1, j-1).dec(match))
				d.set(i, j, best.inc())
			}
			started = true
		}
	}

	return d
}
