package cst

import "kakapo/internal/diag"

// Block is the shared shape of every block construct: keyword, whitespace,
// optional head, whitespace, body Code, then the terminator region (its
// preceding whitespace, the `end` Leaf, and an optional semicolon slot).
//
// `If` and `TryCatch` splice flat clause children between the body and the
// terminator region: elseif/else and catch clauses are siblings, not nested
// blocks. The terminator Leaf holds "" when the block has no own `end`:
// either because a function omitted it, or because the kind's terminator is
// suppressed (`case` ends at the next sibling keyword).
type Block struct {
	composite
	kind Kind
}

const (
	blockKw = iota
	blockWSAfterKw
	blockHead
	blockWSAfterHead
	blockBody
	// clause children, if any, follow here; the last three slots are always
	// wsBeforeEnd, end, semicolon.
)

func NewBlock(kind Kind, kw *Leaf, wsKw Text, head Child, wsHead Text, body *Code,
	clauses []Child, wsEnd Text, end *Leaf, semi Text) *Block {
	if !kind.IsBlock() {
		diag.Structural(kind.String(), -1, "block kind", kind.String())
	}
	children := make([]Child, 0, 8+len(clauses))
	children = append(children, kw, wsKw, head, wsHead, body)
	children = append(children, clauses...)
	children = append(children, wsEnd, end, semi)
	b := &Block{kind: kind}
	adopt(b, &b.composite, children)
	return b
}

func (b *Block) Kind() Kind     { return b.kind }
func (b *Block) Keyword() *Leaf { return nodeAt(b, blockKw).(*Leaf) }

// Head returns the head slot: a Statement node, or empty Text for headless
// blocks (`try`, `else`, bare `methods`).
func (b *Block) Head() Child { return b.children[blockHead] }

// HeadStatement returns the head as a Statement, or false for headless blocks.
func (b *Block) HeadStatement() (*Statement, bool) {
	ch := b.children[blockHead]
	if _, isText := ch.(Text); isText {
		return nil, false
	}
	st, ok := ch.(*Statement)
	if !ok {
		diag.Structural(b.kind.String(), blockHead, "Statement", ch.(Node).Kind().String())
	}
	return st, true
}

func (b *Block) Body() *Code {
	c, ok := nodeAt(b, blockBody).(*Code)
	if !ok {
		diag.Structural(b.kind.String(), blockBody, "Code", nodeAt(b, blockBody).Kind().String())
	}
	return c
}

// Clauses returns the flat clause children between the body and the
// terminator region (empty for most kinds).
func (b *Block) Clauses() []Child { return b.children[blockBody+1 : len(b.children)-3] }

// Terminator returns the `end` Leaf; its Value is "" when absent.
func (b *Block) Terminator() *Leaf {
	return nodeAt(b, len(b.children)-2).(*Leaf)
}

func (b *Block) SpaceBeforeTerminator() Text { return textAt(b, len(b.children)-3) }

// SetSpaceBeforeTerminator overwrites the whitespace slot before `end`.
func (b *Block) SetSpaceBeforeTerminator(t Text) { SetTextAt(b, len(b.children)-3, t) }

// TrailingSemicolon returns the optional `;` slot directly after `end`.
func (b *Block) TrailingSemicolon() Text { return textAt(b, len(b.children)-1) }

func (b *Block) DropTrailingSemicolon() { SetTextAt(b, len(b.children)-1, "") }

// clauseKeyword reports whether a child is one of the clause keywords that
// render at the owning block's indent level rather than the body's.
func clauseKeyword(ch Child) (*Leaf, bool) {
	leaf, ok := ch.(*Leaf)
	if !ok {
		return nil, false
	}
	switch leaf.Value {
	case "elseif", "else", "catch":
		return leaf, true
	default:
		return nil, false
	}
}

// File is the root: leading whitespace, the top-level Code, trailing
// whitespace.
type File struct{ composite }

const (
	fileLeadWS = iota
	fileCode
	fileTrailWS
)

func NewFile(lead Text, code *Code, trail Text) *File {
	f := &File{}
	adopt(f, &f.composite, []Child{lead, code, trail})
	return f
}

func (f *File) Kind() Kind { return KindFile }

func (f *File) Code() *Code {
	c, ok := nodeAt(f, fileCode).(*Code)
	if !ok {
		diag.Structural("File", fileCode, "Code", nodeAt(f, fileCode).Kind().String())
	}
	return c
}

// NormalizeBounds clears leading whitespace and forces exactly one trailing
// newline.
func (f *File) NormalizeBounds() {
	SetTextAt(f, fileLeadWS, "")
	SetTextAt(f, fileTrailWS, "\n")
}

// Text serializes the whole file.
func (f *File) Text() string { return ToText(f) }
