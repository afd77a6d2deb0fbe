package format

import (
	"kakapo/internal/cst"
	"kakapo/internal/parser"
)

// normalizeListDelimiters rewrites every delimiter slot to its bare core
// plus canonical spacing: `, ` in element lists, ` op ` in operator chains.
// Continuation markers inside a delimiter run are dropped along with the
// surrounding whitespace. A bare-whitespace array separator has an empty
// core and collapses to a single space.
func normalizeListDelimiters(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.ElementsListKinds...) {
		list := cst.ElementsListOf(n)
		for i := 0; i < list.Len()-1; i++ {
			core := parser.DelimiterCore(string(list.Delimiter(i)))
			list.SetDelimiter(i, cst.Text(core+" "))
		}
	}
	for n := range cst.Iterate(f, cst.KindOperation) {
		list := n.(*cst.Operation).List()
		for i := 0; i < list.Len()-1; i++ {
			core := parser.DelimiterCore(string(list.Delimiter(i)))
			list.SetDelimiter(i, cst.Text(" "+core+" "))
		}
	}
}

// normalizeParenthesizedInterior clears the whitespace immediately inside
// every bracket pair.
func normalizeParenthesizedInterior(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.KindParenthesized) {
		n.(*cst.Parenthesized).ClearInteriorSpace()
	}
}

// normalizeAssignmentSpacing forces single spaces around the `=` of every
// output-argument clause.
func normalizeAssignmentSpacing(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.KindOutputArguments) {
		n.(*cst.OutputArguments).NormalizeSpacing()
	}
}
