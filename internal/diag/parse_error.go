package diag

import (
	"fmt"
	"strings"

	"kakapo/internal/source"
)

// ParseError reports that the input stopped matching the grammar.
type ParseError struct {
	Path     string
	Offset   uint32
	Pos      source.LineCol
	Expected string // construct the parser was looking for ("expression", "'end'", ...)
	Line     string // offending source line, for caret rendering
}

// NewParseError resolves offset metadata from the source file.
func NewParseError(f *source.File, offset uint32, expected string) *ParseError {
	pos := f.Resolve(offset)
	return &ParseError{
		Path:     f.Path,
		Offset:   offset,
		Pos:      pos,
		Expected: expected,
		Line:     f.Line(pos.Line),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: expected %s", e.Path, e.Pos, e.Expected)
}

// Render returns a two-line message with a caret under the failing column.
func (e *ParseError) Render() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Line != "" {
		sb.WriteByte('\n')
		sb.WriteString(e.Line)
		sb.WriteByte('\n')
		if e.Pos.Col > 0 {
			sb.WriteString(strings.Repeat(" ", int(e.Pos.Col-1)))
		}
		sb.WriteByte('^')
	}
	return sb.String()
}
