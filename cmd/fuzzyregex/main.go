// fuzzyregex scores text against a wildcard pattern from the command line.
package main

import (
	"os"

	"github.com/ZGorlock/FuzzyRegex/cmd/fuzzyregex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
