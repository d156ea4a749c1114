package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/go-php/phpfront/ast"
	"github.com/go-php/phpfront/diagnostic"
	"github.com/go-php/phpfront/parser"
	"github.com/spf13/cobra"
)

var asJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PHP file and print its AST as an indented tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a PHP file and print its AST shape as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().BoolVar(&asJSON, "json", true, "emit JSON (always on; flag kept for discoverability)")
}

func runParse(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(args)
	if err != nil {
		return err
	}
	sink := diagnostic.NewColorSink(os.Stderr, name)
	sink.NoColor = noColor

	file, _ := parser.ParseSource(src, sink)
	dumpNode(file, 0)
	return nil
}

func runAST(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(args)
	if err != nil {
		return err
	}
	sink := diagnostic.NewColorSink(os.Stderr, name)
	sink.NoColor = noColor

	file, _ := parser.ParseSource(src, sink)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

// dumpNode is a debugging printer, not a stable serialization: it
// walks a node's exported fields with reflection to produce an
// indented tree, the way a compiler's -ast-dump flag would.
func dumpNode(n ast.Node, depth int) {
	if n == nil || reflect.ValueOf(n).IsNil() {
		return
	}
	v := reflect.Indirect(reflect.ValueOf(n))
	fmt.Printf("%s%s\n", indent(depth), v.Type().Name())

	ast.Walk(dumpVisitor{depth: depth + 1}, n)
}

type dumpVisitor struct{ depth int }

func (d dumpVisitor) Visit(n ast.Node) ast.Visitor {
	if n == nil {
		return nil
	}
	dumpNode(n, d.depth)
	return nil // dumpNode's recursive ast.Walk call already covers n's children
}

func indent(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
