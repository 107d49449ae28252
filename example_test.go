package fuzzyregex_test

import (
	"fmt"

	fuzzyregex "github.com/ZGorlock/FuzzyRegex"
)

// ExampleCompare scores a close-but-imperfect match.
func ExampleCompare() {
	score := fuzzyregex.Compare("Something", "Samething", nil)
	fmt.Printf("%.4f\n", score)
	// Output:
	// 0.8889
}

// ExampleCompare_options folds case and skips punctuation.
func ExampleCompare_options() {
	opts := fuzzyregex.Options{IgnoreCase: true, IgnorePunctuation: true}
	score := fuzzyregex.Compare("-.SoMe?ThInG+", "Something", &opts)
	fmt.Printf("%.4f\n", score)
	// Output:
	// 1.0000
}

// ExampleCompareExtract captures what each wildcard consumed.
func ExampleCompareExtract() {
	score, exts := fuzzyregex.CompareExtract("¿ else like ¿", "Something else like that", nil)
	fmt.Printf("score %.1f, %d extraction(s)\n", score, len(exts))
	fmt.Printf("variables %q\n", exts[0].Variables)
	fmt.Printf("tokens    %q\n", exts[0].Tokens)
	// Output:
	// score 1.0, 1 extraction(s)
	// variables ["Something" "that"]
	// tokens    ["" " else like " ""]
}

// ExampleDistance counts edits, with the wildcard absorbing a whole word.
func ExampleDistance() {
	fmt.Println(fuzzyregex.Distance("Something", "Nothing", nil))
	fmt.Println(fuzzyregex.Distance("Something else like ¿", "Something else like whatever", nil))
	// Output:
	// 3
	// 0
}

// ExampleDistanceExtract enumerates every optimal split of an ambiguous
// match.
func ExampleDistanceExtract() {
	dist, exts := fuzzyregex.DistanceExtract("¿ ¿s", "What the hell are lobsters", nil)
	fmt.Printf("distance %d, %d extractions\n", dist, len(exts))
	for _, ext := range exts {
		fmt.Printf("%q + %q\n", ext.Variables[0], ext.Variables[1])
	}
	// Output:
	// distance 0, 4 extractions
	// "What" + "the hell are lobster"
	// "What the hell are" + "lobster"
	// "What the hell" + "are lobster"
	// "What the" + "hell are lobster"
}
