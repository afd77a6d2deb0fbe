package format

import (
	"strings"

	"kakapo/internal/cst"
)

// ensureBlankLineBeforeComments puts a blank line in front of a comment
// that opens a comment run. Lines inside a run stay adjacent, and a comment
// with no preceding slot (first in the file) is left alone.
func ensureBlankLineBeforeComments(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.KindComment) {
		pred, ok := cst.PredecessorText(n)
		if !ok {
			continue
		}
		i := n.ChildIndex()
		if i >= 2 {
			if _, ok := n.Parent().Children()[i-2].(*cst.Comment); ok {
				continue
			}
		}
		if strings.Count(string(pred), "\n") < 2 {
			cst.SetPredecessor(n, cst.Text("\n"+string(pred)))
		}
	}
}
