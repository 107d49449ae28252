// Package fuzzyregex matches text against patterns containing a single kind
// of wildcard ('¿'), scoring closeness and extracting what each wildcard
// consumed — a middle ground between plain edit distance and full regular
// expressions.
//
// 🚀 What does fuzzyregex do?
//
//	A small, dependency-light matching library built around one algorithm:
//		• Closeness scoring: Compare maps any pattern/text pair to [0,1]
//		• Modified edit distance: Distance counts inserts, deletes and
//		  substitutions, with each wildcard absorbing any run of text at cost 1
//		• Variable extraction: CompareExtract / DistanceExtract enumerate
//		  every optimal decomposition of the text into wildcard variables
//		  and the literal tokens between them
//		• Matching flags: case folding and punctuation transparency via Options
//
// ✨ Why choose fuzzyregex?
//
//   - Total functions – every string input maps to a defined output, no errors
//   - All optimal answers – ambiguous matches yield every best decomposition,
//     not an arbitrary one
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood a comparison runs in four stages:
//
//	normalize — collapse wildcard runs, optionally strip punctuation
//	build     — fill the dense (m+1)×(n+1) distance table
//	extract   — backtrack from the bottom-right cell, forking at every tie
//	score     — clamp (length − distance) / length into [0,1]
//
// Quick example:
//
//	score, exts := fuzzyregex.CompareExtract("¿ else like ¿",
//		"Something else like that", nil)
//	// score == 1.0
//	// exts[0].Variables == []string{"Something", "that"}
//	// exts[0].Tokens    == []string{"", " else like ", ""}
//
// For a pattern with g wildcards every Extraction carries exactly g
// Variables and g+1 Tokens, so the original text (minus whatever the flags
// relaxed) interleaves back together from any decomposition.
//
//	go get github.com/ZGorlock/FuzzyRegex
package fuzzyregex
