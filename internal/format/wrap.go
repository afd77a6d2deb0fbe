package format

import (
	"strings"

	"kakapo/internal/cst"
)

// breakLongStatements rewrites call statements that do not fit the line
// limit to one argument per line. The arguments move one level deeper, the
// closing bracket returns to the statement's own level, and every break
// gets a continuation marker so the result stays valid source. Only a
// statement whose body is a call with at least one argument qualifies.
func breakLongStatements(f *cst.File, opt Options) {
	unit := strings.Repeat(" ", opt.IndentWidth)
	for n, level := range cst.IterateWithIndent(f) {
		stmt, ok := n.(*cst.Statement)
		if !ok {
			continue
		}
		if level*opt.IndentWidth+len(cst.ToText(stmt)) <= opt.MaxLineLength {
			continue
		}
		body, ok := stmt.Body().(*cst.Parenthesized)
		if !ok {
			continue
		}
		call, ok := body.Content().(*cst.Call)
		if !ok {
			continue
		}
		args, ok := call.ArgumentsList()
		if !ok {
			continue
		}
		list := cst.ElementsListOf(args)
		if list.Len() == 0 {
			continue
		}

		outer := strings.Repeat(unit, level)
		inner := outer + unit
		args.Parenthesized().SetInterior(
			cst.Text(" ...\n"+inner), cst.Text(" ...\n"+outer))
		for i := 0; i < list.Len()-1; i++ {
			list.SetDelimiter(i, cst.Text(", ...\n"+inner))
		}
	}
}
