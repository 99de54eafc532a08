// Package diag maps byte ranges back to source lines for error display.
package diag

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/agenthands/tlang/pkg/compiler/lexer"
)

// LineInfo locates a byte range within its line. Line and Column are
// 0-based.
type LineInfo struct {
	Line   int
	Column int
	Length int
	Text   string
}

// FromSource computes the line containing pos.Start. Positions past the
// end of src (the End placeholder) land just after the last character.
func FromSource(src []byte, pos lexer.Pos) LineInfo {
	start := pos.Start
	if start > len(src) {
		start = len(src)
	}

	before := src[:start]
	line := bytes.Count(before, []byte{'\n'})
	lineStart := bytes.LastIndexByte(before, '\n') + 1

	lineEnd := len(src)
	if i := bytes.IndexAny(src[lineStart:], "\r\n"); i >= 0 {
		lineEnd = lineStart + i
	}

	length := pos.Len()
	if length < 1 {
		length = 1
	}

	return LineInfo{
		Line:   line,
		Column: pos.Start - lineStart,
		Length: length,
		Text:   string(src[lineStart:lineEnd]),
	}
}

// String renders a header, the source line and a caret marker under the
// range.
func (li LineInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Line: %d, Char: %d\n", li.Line+1, li.Column+1)
	sb.WriteString(li.Text)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", li.Column))
	sb.WriteString(strings.Repeat("^", li.Length))
	return sb.String()
}
