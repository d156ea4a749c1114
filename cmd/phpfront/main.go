// Command phpfront exposes the lexer and parser as a standalone tool:
// it has no evaluator, so its output is always a token stream or an
// AST dump, never a program result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
