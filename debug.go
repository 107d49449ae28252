package fuzzyregex

import (
	"fmt"
	"strconv"
	"strings"
)

// DumpMatrix builds the distance table for pattern and text and renders it
// as a grid: the text across the top, the normalized pattern down the left
// edge, unreachable cells shown as "^". Intended for debugging and for
// inspecting why a comparison scored the way it did.
func DumpMatrix(pattern, text string, opts *Options) string {
	o := resolve(opts)
	p := []rune(pattern)
	if o.IgnorePunctuation {
		p = stripSymbols(p)
	}
	p = collapseWildcards(p)
	t := []rune(text)

	return buildMatrix(p, t, o).dump(p, t, -1, -1)
}

// dump renders the table, starring the cell at (row, col) when both are
// non-negative.
func (d *distanceMatrix) dump(p, t []rune, row, col int) string {
	width := len(strconv.Itoa(d.cols - 1))
	if w := len(strconv.Itoa(d.rows - 1)); w > width {
		width = w
	}
	width += 2

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", width+1)) // label and column-0 gutter
	for _, r := range t {
		fmt.Fprintf(&b, "%*s", width, string(r))
	}
	b.WriteByte('\n')
	for i := 0; i < d.rows; i++ {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(string(p[i-1]))
		}
		for j := 0; j < d.cols; j++ {
			cell := "^"
			if c := d.at(i, j); c.reachable() {
				cell = strconv.Itoa(int(c))
			}
			if i == row && j == col {
				cell = "*" + cell
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
