package cst

import (
	"strings"

	"kakapo/internal/diag"
)

// Child is one slot of a composite node: either a Text slot or a nested Node.
// The interface is sealed; Text and the node types are the only implementations.
type Child interface {
	writeText(sb *strings.Builder)
}

// Text is literal substring content at a fixed position inside a composite:
// whitespace, a delimiter, punctuation, a continuation marker, or emptiness.
type Text string

func (t Text) writeText(sb *strings.Builder) { sb.WriteString(string(t)) }

// Node is implemented by Leaf and by every composite kind.
type Node interface {
	Child
	Kind() Kind
	// Parent returns the owning composite, or nil for the root.
	Parent() Node
	// ChildIndex returns the node's slot position within its parent.
	ChildIndex() int
	// Children returns the ordered slot list. Callers must not grow or
	// shrink it; slots are overwritten in place via SetTextAt.
	Children() []Child

	setParent(p Node, index int)
}

// Leaf is a terminal token holding its exact source text. Value is mutable
// only for documented formatter rewrites (filling in a reserved terminator).
type Leaf struct {
	parent Node
	index  int
	Value  string
}

// NewLeaf creates a parentless Leaf; the parent is set when the leaf is
// placed into a composite.
func NewLeaf(value string) *Leaf { return &Leaf{Value: value} }

func (l *Leaf) writeText(sb *strings.Builder) { sb.WriteString(l.Value) }
func (l *Leaf) Kind() Kind                    { return KindLeaf }
func (l *Leaf) Parent() Node                  { return l.parent }
func (l *Leaf) ChildIndex() int               { return l.index }
func (l *Leaf) Children() []Child             { return nil }

func (l *Leaf) setParent(p Node, index int) {
	l.parent = p
	l.index = index
}

// composite carries the shared state of every non-terminal node kind.
// Concrete kinds embed it and expose fixed-position accessors.
type composite struct {
	parent   Node
	index    int
	children []Child
}

func (c *composite) writeText(sb *strings.Builder) {
	for _, ch := range c.children {
		ch.writeText(sb)
	}
}

func (c *composite) Parent() Node      { return c.parent }
func (c *composite) ChildIndex() int   { return c.index }
func (c *composite) Children() []Child { return c.children }

func (c *composite) setParent(p Node, index int) {
	c.parent = p
	c.index = index
}

// adopt installs children under owner, setting parent back-references once.
func adopt(owner Node, c *composite, children []Child) {
	c.children = children
	for i, ch := range children {
		if n, ok := ch.(Node); ok {
			n.setParent(owner, i)
		}
	}
}

// nodeAt returns the child at index i, which must be a Node.
func nodeAt(owner Node, i int) Node {
	ch := owner.Children()[i]
	n, ok := ch.(Node)
	if !ok {
		diag.Structural(owner.Kind().String(), i, "node", "text")
	}
	return n
}

// textAt returns the child at index i, which must be a Text slot.
func textAt(owner Node, i int) Text {
	ch := owner.Children()[i]
	t, ok := ch.(Text)
	if !ok {
		diag.Structural(owner.Kind().String(), i, "text", ch.(Node).Kind().String())
	}
	return t
}

// SetTextAt overwrites the Text slot at index i. The existing child must
// already be a Text slot: formatter passes never replace nodes.
func SetTextAt(owner Node, i int, value Text) {
	children := owner.Children()
	if _, ok := children[i].(Text); !ok {
		diag.Structural(owner.Kind().String(), i, "text", children[i].(Node).Kind().String())
	}
	children[i] = value
}

// TextAt exposes textAt for formatter passes.
func TextAt(owner Node, i int) Text { return textAt(owner, i) }

// ToText serializes a child (node or text slot) by concatenating every slot
// in document order. For a freshly parsed tree this reproduces the input.
func ToText(c Child) string {
	var sb strings.Builder
	c.writeText(&sb)
	return sb.String()
}

// Predecessor returns the sibling immediately before n, if any.
func Predecessor(n Node) (Child, bool) {
	p := n.Parent()
	if p == nil || n.ChildIndex() == 0 {
		return nil, false
	}
	return p.Children()[n.ChildIndex()-1], true
}

// PredecessorText returns the Text slot immediately before n. The second
// result is false when n is a first child or has no parent; a preceding
// node instead of a slot is a structural violation.
func PredecessorText(n Node) (Text, bool) {
	ch, ok := Predecessor(n)
	if !ok {
		return "", false
	}
	t, ok := ch.(Text)
	if !ok {
		diag.Structural(n.Parent().Kind().String(), n.ChildIndex()-1, "text", ch.(Node).Kind().String())
	}
	return t, true
}

// SetPredecessor rewrites the Text slot immediately preceding n.
func SetPredecessor(n Node, value Text) {
	p := n.Parent()
	if p == nil || n.ChildIndex() == 0 {
		diag.Structural(n.Kind().String(), -1, "preceding text slot", "none")
	}
	SetTextAt(p, n.ChildIndex()-1, value)
}

// Successor returns the sibling immediately after n, if any.
func Successor(n Node) (Child, bool) {
	p := n.Parent()
	if p == nil {
		return nil, false
	}
	siblings := p.Children()
	next := n.ChildIndex() + 1
	if next >= len(siblings) {
		return nil, false
	}
	return siblings[next], true
}
