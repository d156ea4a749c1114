package main

import (
	"fmt"
	"os"

	"github.com/go-php/phpfront/diagnostic"
	"github.com/go-php/phpfront/lexer"
	"github.com/go-php/phpfront/sourceunit"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a PHP file and print the resulting tokens",
	Long: `Tokenize a PHP file and print the token stream the lexer and its
post-processor produce.

Examples:
  phpfront lex script.php
  phpfront lex -e '<?php echo 1 + 2;'
  phpfront lex --show-pos --show-kind script.php`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", true, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(args)
	if err != nil {
		return err
	}

	sink := diagnostic.NewColorSink(os.Stderr, name)
	sink.NoColor = noColor

	for _, tok := range lexer.Tokenize(src, sink) {
		printDecodedToken(tok, showKind, showPos)
	}
	return nil
}

func printDecodedToken(tok lexer.DecodedToken, showKind, showPos bool) {
	var out string
	if showKind {
		out += fmt.Sprintf("[%-28s]", tok.Type.String())
	}
	if tok.Literal != "" {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}

// readSource resolves the command's input: an -e expression, a named
// file, or an error if neither was given.
func readSource(args []string) (name, src string, err error) {
	if evalExpr != "" {
		return "<eval>", evalExpr, nil
	}
	if len(args) == 1 {
		unit, err := (sourceunit.FileReader{}).Read(args[0])
		if err != nil {
			return "", "", err
		}
		return unit.Name, unit.Text, nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
