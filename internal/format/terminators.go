package format

import "kakapo/internal/cst"

// ensureFunctionTerminators writes `end` into every function's reserved
// terminator slot, appending a newline in front when the body/terminator
// gap is empty. Functions are the one block kind whose terminator the
// grammar lets a file omit.
func ensureFunctionTerminators(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.KindFunction) {
		b := n.(*cst.Block)
		if b.SpaceBeforeTerminator() == "" {
			b.SetSpaceBeforeTerminator("\n")
		}
		b.Terminator().Value = "end"
	}
}

// normalizeFileBounds strips leading whitespace at the start of the file
// and forces exactly one trailing newline.
func normalizeFileBounds(f *cst.File, _ Options) {
	f.NormalizeBounds()
}
