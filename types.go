package fuzzyregex

// Wildcard is the pattern character that matches any run of text characters,
// including the empty run. It is fixed; there is no way to change it per call.
const Wildcard = '¿'

// Options configures a single comparison.
//
// Fields:
//   - IgnoreCase        — literal characters compare equal regardless of case.
//     Extracted variables and tokens keep the original casing of the text.
//   - IgnorePunctuation — punctuation is dropped from the pattern and skipped
//     in the text while scoring. Skipped punctuation still appears verbatim
//     inside extracted variables and tokens.
//
// A nil *Options passed to any entry point means DefaultOptions().
//
// Example:
//
//	opts := fuzzyregex.DefaultOptions()
//	opts.IgnoreCase = true
//
//	score, extractions := fuzzyregex.CompareExtract("¿ else like ¿", text, &opts)
type Options struct {
	IgnoreCase        bool
	IgnorePunctuation bool
}

// DefaultOptions returns the baseline configuration:
// case-sensitive, punctuation-sensitive.
func DefaultOptions() Options {
	return Options{}
}

// Extraction is one optimal decomposition of the text against the pattern.
//
// Variables holds the text consumed by each wildcard, in pattern order.
// Tokens holds the literal text between, before, and after the wildcards.
// For a pattern with g wildcards an Extraction always carries exactly g
// Variables and g+1 Tokens; entries may be empty strings but are never
// omitted, so the text interleaves as
//
//	Tokens[0] Variables[0] Tokens[1] ... Variables[g-1] Tokens[g]
type Extraction struct {
	Variables []string
	Tokens    []string
}
