package format

import (
	"strings"

	"kakapo/internal/cst"
)

// normalizeIndentation rewrites the whitespace in front of every construct
// and every terminator or clause keyword so it ends in a newline plus
// level*IndentWidth spaces. A construct with no preceding slot of its own
// (the first in its code run) gets the rewrite on its parent's preceding
// slot instead, with a blank line separating it from the opening of the
// enclosing block.
func normalizeIndentation(f *cst.File, opt Options) {
	unit := strings.Repeat(" ", opt.IndentWidth)
	for n, level := range cst.IterateWithIndent(f) {
		if !indentTarget(n) {
			continue
		}
		indent := strings.Repeat(unit, level)
		if pred, ok := cst.PredecessorText(n); ok {
			s := strings.TrimRight(string(pred), " ")
			if !strings.HasSuffix(s, "\n") {
				s += "\n"
			}
			cst.SetPredecessor(n, cst.Text(s+indent))
			continue
		}
		parent := n.Parent()
		if parent == nil {
			continue
		}
		if _, ok := cst.PredecessorText(parent); ok {
			cst.SetPredecessor(parent, cst.Text("\n\n"+indent))
		}
	}
}

// indentTarget selects the nodes whose preceding whitespace pass 5 owns:
// code constructs plus the terminator and clause keywords. Head and
// clause-condition statements share their block's opening line and are
// left alone.
func indentTarget(n cst.Node) bool {
	switch {
	case n.Kind() == cst.KindLeaf:
		switch n.(*cst.Leaf).Value {
		case "end", "elseif", "else", "catch":
		default:
			return false
		}
	case !n.Kind().IsConstruct():
		return false
	}
	if p := n.Parent(); p != nil && p.Kind().IsBlock() && n.Kind() == cst.KindStatement {
		return false
	}
	return true
}
