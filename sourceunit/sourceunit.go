// Package sourceunit provides the default Character Source: the thing
// a host hands a lexer, not the lexer's own internals. It owns file
// reading, encoding detection, and a stable identity for a unit of
// source text, all of which spec.md explicitly pushes out of the
// lexer/parser/AST core and onto an "external collaborator."
package sourceunit

import (
	"github.com/google/uuid"
)

// Unit is a decoded, UTF-8, ready-to-lex piece of PHP source together
// with enough identity for a host to correlate it across a reparse:
// diagnostics and ASTs produced from the same Unit.ID refer to the
// same edit of the same file.
type Unit struct {
	ID   uuid.UUID
	Name string // display path; not used to re-read the file
	Text string
}

// New wraps already-decoded text as a Unit, stamping it with a fresh
// identity. Use this for in-memory source (a REPL line, a test
// fixture) that never touched a file.
func New(name, text string) *Unit {
	return &Unit{ID: uuid.New(), Name: name, Text: text}
}

// Reader is the Character Source contract: anything that can produce
// decoded source text given a display name. The default implementation
// is FileReader; a host embedding this module as a library can supply
// its own (an in-memory VFS, an LSP document store) by implementing
// this interface instead of FileReader's DecodeFile call.
type Reader interface {
	Read(name string) (*Unit, error)
}

// FileReader is the default Reader, reading from the local filesystem
// and sniffing the byte-order mark the way a build tool is expected to.
type FileReader struct{}

func (FileReader) Read(name string) (*Unit, error) {
	text, err := DecodeFile(name)
	if err != nil {
		return nil, err
	}
	return &Unit{ID: uuid.New(), Name: name, Text: text}, nil
}
