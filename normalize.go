package fuzzyregex

import "unicode"

// isSymbol reports whether r counts as punctuation for matching purposes:
// anything that is not a letter, digit, whitespace, or NUL. NUL rides along
// with whitespace so padded buffers never register as punctuation.
func isSymbol(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == 0)
}

// collapseWildcards reduces every run of consecutive wildcards in p to a
// single wildcard. Collapsing is idempotent and never reorders characters.
func collapseWildcards(p []rune) []rune {
	out := make([]rune, 0, len(p))
	for _, r := range p {
		if r == Wildcard && len(out) > 0 && out[len(out)-1] == Wildcard {
			continue
		}
		out = append(out, r)
	}

	return out
}

// stripSymbols removes punctuation from p while keeping wildcards, so a
// punctuation-insensitive pattern still carries its structure.
func stripSymbols(p []rune) []rune {
	out := make([]rune, 0, len(p))
	for _, r := range p {
		if r != Wildcard && isSymbol(r) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// removePunctuation returns s with every character that is neither a letter,
// digit, nor whitespace removed. Wildcards do not survive this pass; it is
// only used to measure the text side of a punctuation-insensitive score.
func removePunctuation(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			out = append(out, r)
		}
	}

	return string(out)
}

// countWildcards returns the number of wildcards in p.
func countWildcards(p []rune) int {
	n := 0
	for _, r := range p {
		if r == Wildcard {
			n++
		}
	}

	return n
}
