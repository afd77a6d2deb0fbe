package parser

import (
	"fmt"

	"fortio.org/safecast"

	"kakapo/internal/source"
)

// cursor is a byte position in a source file. Backtracking choice points
// save a Mark and Reset to it when an alternative fails.
type cursor struct {
	file  *source.File
	off   uint32
	limit uint32
}

func newCursor(f *source.File) cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return cursor{file: f, off: 0, limit: limit}
}

func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek reads the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.file.Content[c.off]
}

// peekAt reads the byte n positions ahead, or 0 past EOF.
func (c *cursor) peekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

// bump advances one byte and returns it.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// eat consumes b if it is the current byte.
func (c *cursor) eat(b byte) bool {
	if c.peek() != b {
		return false
	}
	c.off++
	return true
}

// eatString consumes s if the input starts with it here.
func (c *cursor) eatString(s string) bool {
	if !c.hasString(s) {
		return false
	}
	c.off += uint32(len(s)) // #nosec G115 -- literal lengths are tiny
	return true
}

func (c *cursor) hasString(s string) bool {
	end := c.off + uint32(len(s)) // #nosec G115 -- literal lengths are tiny
	if end > c.limit {
		return false
	}
	return string(c.file.Content[c.off:end]) == s
}

// mark saves the current position.
type mark uint32

func (c *cursor) mark() mark { return mark(c.off) }

// reset backtracks to a saved position.
func (c *cursor) reset(m mark) { c.off = uint32(m) }

// textFrom returns the consumed bytes since m.
func (c *cursor) textFrom(m mark) string {
	return string(c.file.Content[uint32(m):c.off])
}
