package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorSink writes diagnostics to a writer as they arrive, colorized by
// severity the way a terminal-facing build tool would. It is the
// stderr-rendering counterpart to Collector.
type ColorSink struct {
	w       io.Writer
	file    string
	NoColor bool
}

// NewColorSink returns a ColorSink writing to w, labeling every line
// with file (typically the source unit's display path).
func NewColorSink(w io.Writer, file string) *ColorSink {
	return &ColorSink{w: w, file: file}
}

func (s *ColorSink) Report(d Diagnostic) {
	var c *color.Color
	var symbol string
	switch d.Severity {
	case SeverityError:
		c = color.New(color.FgRed, color.Bold)
		symbol = "error"
	default:
		c = color.New(color.FgYellow, color.Bold)
		symbol = "warning"
	}
	if s.NoColor {
		c.DisableColor()
	}

	pos := d.Span.Start
	c.Fprintf(s.w, "%s: ", symbol)
	fmt.Fprintf(s.w, "%s:%d:%d: [%s] %s\n", s.file, pos.Line, pos.Column, d.Code, d.Message)
}
