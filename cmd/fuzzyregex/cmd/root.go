package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	fuzzyregex "github.com/ZGorlock/FuzzyRegex"
)

var (
	ignoreCase        bool
	ignorePunctuation bool
	showExtractions   bool
	showMatrix        bool
)

var rootCmd = &cobra.Command{
	Use:   "fuzzyregex <pattern> <text>",
	Short: "fuzzyregex — fuzzy wildcard matching",
	Long: "Scores how closely text matches a pattern containing '¿' wildcards\n" +
		"and optionally shows what each wildcard consumed.",
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "fold case when comparing literals")
	rootCmd.Flags().BoolVarP(&ignorePunctuation, "ignore-punctuation", "p", false, "skip punctuation when comparing")
	rootCmd.Flags().BoolVarP(&showExtractions, "extract", "x", false, "print every optimal decomposition")
	rootCmd.Flags().BoolVarP(&showMatrix, "matrix", "m", false, "print the distance table")
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, text := args[0], args[1]
	opts := fuzzyregex.Options{
		IgnoreCase:        ignoreCase,
		IgnorePunctuation: ignorePunctuation,
	}

	out := cmd.OutOrStdout()
	if showMatrix {
		fmt.Fprint(out, fuzzyregex.DumpMatrix(pattern, text, &opts))
	}

	score, extractions := fuzzyregex.CompareExtract(pattern, text, &opts)
	fmt.Fprintf(out, "score:    %.4f\n", score)
	fmt.Fprintf(out, "distance: %d\n", fuzzyregex.Distance(pattern, text, &opts))

	if !showExtractions {
		return nil
	}
	if len(extractions) == 0 {
		fmt.Fprintln(out, "no extractions")

		return nil
	}
	for i, ext := range extractions {
		fmt.Fprintf(out, "extraction %d:\n", i+1)
		fmt.Fprintf(out, "  variables: %q\n", ext.Variables)
		fmt.Fprintf(out, "  tokens:    %q\n", ext.Tokens)
	}

	return nil
}
