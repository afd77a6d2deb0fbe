// Package cst models MATLAB source as a concrete syntax tree.
//
// Unlike an abstract syntax tree, every byte of the input is held somewhere
// in the tree: tokens live in Leaf nodes, while whitespace, delimiters,
// punctuation, continuation markers and "nothing here" placeholders live in
// Text slots at fixed positions inside composite nodes. Serializing a tree
// is plain concatenation in document order, so a freshly parsed tree prints
// back to the exact input.
//
// Every composite kind has a fixed child-slot shape; accessors index into
// that shape and never search. Parent back-references are set once at
// construction. The formatter mutates trees only by overwriting Text slots
// and Leaf values in place (the block terminator slot is the one documented
// exception: an absent `end` is an empty Leaf that the formatter fills in).
package cst
