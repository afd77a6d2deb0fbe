package diag

import "fmt"

// StructuralError is the payload of the panic raised when a node accessor
// finds a child of unexpected shape. It is never returned as an error value.
type StructuralError struct {
	Node  string // node kind whose slot was inspected
	Index int    // child index
	Want  string
	Got   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural assumption violated: %s child %d: want %s, got %s",
		e.Node, e.Index, e.Want, e.Got)
}

// Structural panics with a StructuralError.
func Structural(node string, index int, want, got string) {
	panic(&StructuralError{Node: node, Index: index, Want: want, Got: got})
}
