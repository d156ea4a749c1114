// Package diagnostic reports lexical and syntax problems found while
// scanning or parsing a source unit. Diagnostics are plain values: the
// lexer and parser never panic or abort on malformed PHP, they record a
// Diagnostic on a Sink and keep going.
package diagnostic

import "github.com/go-php/phpfront/ast"

// Severity distinguishes a hard error (the surrounding construct could
// not be recognized) from a warning (recognized, but with a caveat the
// host should surface to a user).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Code enumerates the diagnostic conditions the lexer and parser can
// raise. New codes are appended, never renumbered, since hosts may
// persist them.
type Code int

const (
	_ Code = iota
	LexicalError
	UnterminatedString
	UnterminatedComment
	UnterminatedHeredoc
	InvalidCodePoint
	InvalidCodePointName
	TooBigIntegerConversion
	UnexpectedToken
	SyntaxError
	UnexpectedEOF
)

var codeNames = map[Code]string{
	LexicalError:            "lexical-error",
	UnterminatedString:      "unterminated-string",
	UnterminatedComment:     "unterminated-comment",
	UnterminatedHeredoc:     "unterminated-heredoc",
	InvalidCodePoint:        "invalid-code-point",
	InvalidCodePointName:    "invalid-code-point-name",
	TooBigIntegerConversion: "too-big-integer-conversion",
	UnexpectedToken:         "unexpected-token",
	SyntaxError:             "syntax-error",
	UnexpectedEOF:           "unexpected-eof",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown-diagnostic"
}

// Diagnostic is one reported problem, anchored to the span of source
// that produced it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Span     ast.Span
	Message  string
}

// Sink receives diagnostics as they are discovered. Implementations
// must not block the caller for long: the lexer and parser call Report
// inline, on the hot path of scanning and parsing.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a Sink that buffers every diagnostic it receives, for
// hosts that want to inspect the full set after a parse completes.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// All returns every diagnostic reported so far, in report order.
func (c *Collector) All() []Diagnostic {
	return c.diagnostics
}

// HasErrors reports whether any collected diagnostic is a SeverityError.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Discard is a Sink that drops every diagnostic; it is the default for
// callers that only want the AST and don't care about error recovery
// detail.
type Discard struct{}

func (Discard) Report(Diagnostic) {}
