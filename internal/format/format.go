// Package format normalizes a parsed tree in place.
//
// The formatter is a fixed, ordered pipeline of passes. Each pass scans the
// tree for one node kind and overwrites specific Text slots; none of them
// adds or removes children. The single structural exception is the block
// terminator: an absent `end` is an empty Leaf reserved by the parser, and
// the terminator pass fills in its value. Every pass is idempotent, so
// formatting already-formatted source is a no-op.
package format

import "kakapo/internal/cst"

// Options control the two tunable knobs of the pipeline. The zero value
// means "use the default".
type Options struct {
	// MaxLineLength is the column limit that triggers argument wrapping.
	MaxLineLength int
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxLineLength == 0 {
		o.MaxLineLength = 120
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

var pipeline = []func(*cst.File, Options){
	normalizeListDelimiters,
	normalizeParenthesizedInterior,
	normalizeAssignmentSpacing,
	cleanupSemicolons,
	normalizeIndentation,
	ensureFunctionTerminators,
	normalizeFileBounds,
	ensureBlankLineBeforeComments,
	breakLongStatements,
}

// Format runs the pass pipeline over f in place and returns f. It cannot
// fail on a tree produced by the parser.
func Format(f *cst.File, opt Options) *cst.File {
	opt = opt.withDefaults()
	for _, pass := range pipeline {
		pass(f, opt)
	}
	return f
}
