package format

import "kakapo/internal/cst"

// cleanupSemicolons drops the optional `;` after a block terminator and
// after an if condition, then strips the whitespace in front of every
// remaining statement semicolon. A semicolon on a keyword statement stays:
// `return ;` becomes `return;`, not `return`.
func cleanupSemicolons(f *cst.File, _ Options) {
	for n := range cst.Iterate(f, cst.BlockKinds...) {
		b := n.(*cst.Block)
		b.DropTrailingSemicolon()
		if b.Kind() == cst.KindIf {
			if head, ok := b.HeadStatement(); ok {
				head.SetSemicolon("")
			}
		}
	}
	for n := range cst.Iterate(f, cst.KindStatement) {
		n.(*cst.Statement).StripSpaceBeforeSemicolon()
	}
	for n := range cst.Iterate(f, cst.KindCommand) {
		n.(*cst.Command).StripSpaceBeforeSemicolon()
	}
}
