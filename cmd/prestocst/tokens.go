package main

import (
	"fmt"

	"github.com/prestosql/prestocst/pkgs/lexer"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Lex a file and print its token stream, one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			for _, tok := range lexer.TokenizeAll(source) {
				start := tok.Range.Start
				fmt.Printf("%d:%d: %s %q\n", start.Line+1, start.Column+1, tok.Kind, tok.Text)
			}
			return nil
		},
	}
	return cmd
}
