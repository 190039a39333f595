// Command prestocst is a thin wrapper around the parsing core: it reads
// Presto SQL text from a file or stdin, runs one of the public entry
// points, and prints the result. It contains no parsing logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "prestocst",
		Short:         "Parse Presto SQL into a concrete syntax tree",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newTreeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prestocst: %v\n", err)
		os.Exit(1)
	}
}
