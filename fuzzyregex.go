package fuzzyregex

import (
	"math"
	"unicode/utf8"
)

// Compare scores how closely text matches pattern, as a value in [0.0, 1.0]:
// 1.0 is a perfect match, 0.0 no meaningful resemblance. Wildcards in the
// pattern match any run of text, including the empty run, at a cost of 1
// against the score's length base. A nil opts means DefaultOptions().
func Compare(pattern, text string, opts *Options) float64 {
	score, _ := compare(pattern, text, resolve(opts), false)

	return score
}

// CompareExtract scores text against pattern like Compare and additionally
// returns every optimal decomposition of the text into per-wildcard
// variables and surrounding tokens. The slice is freshly allocated on every
// call; it is empty when the pattern has no wildcards or either input is
// empty. Ordering among multiple decompositions follows the backtracking
// order and is not otherwise specified.
func CompareExtract(pattern, text string, opts *Options) (float64, []Extraction) {
	return compare(pattern, text, resolve(opts), true)
}

// Distance returns the modified edit distance between pattern and text:
// the classic insert/delete/substitute distance, except that each wildcard
// absorbs any run of text characters at a fixed cost of 1. Distance is not
// necessarily symmetric once wildcards or punctuation handling are involved.
func Distance(pattern, text string, opts *Options) int {
	dist, _ := editDistance(pattern, text, resolve(opts), false)

	return dist
}

// DistanceExtract returns the modified edit distance like Distance along
// with every optimal decomposition, as in CompareExtract.
func DistanceExtract(pattern, text string, opts *Options) (int, []Extraction) {
	return editDistance(pattern, text, resolve(opts), true)
}

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// compare normalizes the pattern, derives the score's length base, and
// turns the edit distance into a clamped closeness score.
func compare(pattern, text string, o Options, withExtractions bool) (float64, []Extraction) {
	if pattern == "" || text == "" {
		return 0, nil
	}

	p := collapseWildcards([]rune(pattern))
	if o.IgnorePunctuation {
		p = stripSymbols(p)
	}
	length := len(p)
	scored := text
	if o.IgnorePunctuation {
		scored = removePunctuation(text)
	}
	if tl := utf8.RuneCountInString(scored); tl > length {
		length = tl
	}
	if length == 0 {
		return 0, nil
	}

	dist, exts := editDistance(pattern, text, o, withExtractions)
	score := float64(length-dist) / float64(length)

	return math.Min(math.Max(score, 0), 1), exts
}

// editDistance normalizes the pattern, fills the distance table, and reads
// off the final distance, backtracking for decompositions when asked.
func editDistance(pattern, text string, o Options, withExtractions bool) (int, []Extraction) {
	p := []rune(pattern)
	if o.IgnorePunctuation {
		p = stripSymbols(p)
	}
	p = collapseWildcards(p)
	t := []rune(text)

	g := countWildcards(p)
	if len(t) == 0 {
		// against empty text every literal is deleted and every wildcard
		// absorbs the empty run for free
		return len(p) - g, nil
	}

	d := buildMatrix(p, t, o)
	dist := d.at(len(p), len(t))

	var exts []Extraction
	if withExtractions && g > 0 && dist.reachable() {
		exts = extract(p, t, d, o.IgnorePunctuation)
	}

	return int(dist), exts
}
