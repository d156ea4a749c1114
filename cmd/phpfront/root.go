package main

import (
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "phpfront",
	Short: "PHP lexer and parser front end",
	Long: `phpfront exposes a PHP 7/8-compatible lexer and parser as a
standalone command-line tool.

It has no evaluator: lex prints the token stream a file scans to, and
parse prints the AST the parser builds from it. Both commands exist to
exercise and debug the front end directly, the way a compiler's -dump
flags do.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().StringVarP(&evalExpr, "eval", "e", "", "read source from this argument instead of a file")
}
