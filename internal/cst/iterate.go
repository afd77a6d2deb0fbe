package cst

import (
	"iter"
	"slices"
)

// Iterate yields the descendants of root matching the requested kinds,
// depth-first and pre-order. Root itself is never yielded. The sequence is
// lazy: formatter passes stop consuming as soon as they are done.
func Iterate(root Node, kinds ...Kind) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		iterate(root, kinds, yield)
	}
}

func iterate(n Node, kinds []Kind, yield func(Node) bool) bool {
	for _, ch := range n.Children() {
		child, ok := ch.(Node)
		if !ok {
			continue
		}
		if slices.Contains(kinds, child.Kind()) {
			if !yield(child) {
				return false
			}
		}
		if !iterate(child, kinds, yield) {
			return false
		}
	}
	return true
}

// IterateWithIndent yields every descendant node of root together with its
// nesting level. The level increments on entering a block's body region and
// decrements on leaving it. Clause keywords (`elseif`, `else`, `catch`)
// decrement the level just before the keyword and re-increment just after,
// so the keyword renders at the owning block's level while the clause body
// stays one level deeper.
func IterateWithIndent(root Node) iter.Seq2[Node, int] {
	return func(yield func(Node, int) bool) {
		iterateWithIndent(root, 0, yield)
	}
}

func iterateWithIndent(n Node, level int, yield func(Node, int) bool) bool {
	if b, ok := n.(*Block); ok {
		return blockIterateWithIndent(b, level, yield)
	}
	for _, ch := range n.Children() {
		child, ok := ch.(Node)
		if !ok {
			continue
		}
		if !yield(child, level) {
			return false
		}
		if !iterateWithIndent(child, level, yield) {
			return false
		}
	}
	return true
}

func blockIterateWithIndent(b *Block, level int, yield func(Node, int) bool) bool {
	last := len(b.children)
	for i, ch := range b.children {
		if i == blockBody {
			level++
		}
		if i == last-3 {
			level--
		}

		_, isClause := clauseKeyword(ch)
		if isClause {
			level--
		}

		if child, ok := ch.(Node); ok {
			if !yield(child, level) {
				return false
			}
			if !iterateWithIndent(child, level, yield) {
				return false
			}
		}

		if isClause {
			level++
		}
	}
	return true
}
