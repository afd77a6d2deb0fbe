package cst

import "kakapo/internal/diag"

// Statement slot layout: output-argument clause (OutputArguments node or
// empty Text), body, whitespace before the semicolon, semicolon. The last
// two are distinct slots so spacing and the separator normalize
// independently. The body is a Parenthesized expression or a bare control
// keyword Leaf (`return`, `break`, `continue`).
type Statement struct{ composite }

const (
	stmtOutArgs = iota
	stmtBody
	stmtWSBeforeSemi
	stmtSemi
)

func NewStatement(outArgs Child, body Node, wsBeforeSemi, semi Text) *Statement {
	s := &Statement{}
	adopt(s, &s.composite, []Child{outArgs, body, wsBeforeSemi, semi})
	return s
}

func (s *Statement) Kind() Kind { return KindStatement }
func (s *Statement) Body() Node { return nodeAt(s, stmtBody) }

// OutputArguments returns the assignment clause, or false for a plain
// expression statement.
func (s *Statement) OutputArguments() (*OutputArguments, bool) {
	ch := s.children[stmtOutArgs]
	if _, isText := ch.(Text); isText {
		return nil, false
	}
	oa, ok := ch.(*OutputArguments)
	if !ok {
		diag.Structural("Statement", stmtOutArgs, "OutputArguments", ch.(Node).Kind().String())
	}
	return oa, true
}

func (s *Statement) Semicolon() Text            { return textAt(s, stmtSemi) }
func (s *Statement) SetSemicolon(t Text)        { SetTextAt(s, stmtSemi, t) }
func (s *Statement) SpaceBeforeSemicolon() Text { return textAt(s, stmtWSBeforeSemi) }
func (s *Statement) StripSpaceBeforeSemicolon() { SetTextAt(s, stmtWSBeforeSemi, "") }

// ControlKeyword returns the bare control keyword body (`return`, `break`,
// `continue`), or false when the body is an expression.
func (s *Statement) ControlKeyword() (*Leaf, bool) {
	leaf, ok := s.Body().(*Leaf)
	return leaf, ok
}

// Comment slot layout: the `%` marker, then the raw text up to (not
// including) the line break.
type Comment struct{ composite }

func NewComment(marker Text, text Text) *Comment {
	c := &Comment{}
	adopt(c, &c.composite, []Child{marker, text})
	return c
}

func (c *Comment) Kind() Kind   { return KindComment }
func (c *Comment) String() Text { return textAt(c, 1) }

// Command is MATLAB command syntax: a space-delimited run of bare words,
// used for directive-style statements such as imports. Words sit at even
// indices as Leafs, the separating whitespace at odd indices; the last two
// slots carry the optional trailing semicolon and the whitespace in front
// of it, exactly as on Statement.
type Command struct{ composite }

func NewCommand(words []Child, wsBeforeSemi, semi Text) *Command {
	if len(words)%2 == 0 {
		diag.Structural("Command", len(words)-1, "odd word count", "even")
	}
	c := &Command{}
	children := make([]Child, 0, len(words)+2)
	children = append(children, words...)
	children = append(children, wsBeforeSemi, semi)
	adopt(c, &c.composite, children)
	return c
}

func (c *Command) Kind() Kind { return KindCommand }

// Words returns the command words in order.
func (c *Command) Words() []*Leaf {
	out := make([]*Leaf, 0, len(c.children)/2)
	for i := 0; i < len(c.children)-2; i += 2 {
		out = append(out, nodeAt(c, i).(*Leaf))
	}
	return out
}

func (c *Command) Semicolon() Text            { return textAt(c, len(c.children)-1) }
func (c *Command) StripSpaceBeforeSemicolon() { SetTextAt(c, len(c.children)-2, "") }

// Code is an ordered construct sequence: constructs at even indices, the
// whitespace/separator runs between them at odd indices. It may be empty.
type Code struct{ composite }

func NewCode(children []Child) *Code {
	if len(children) > 0 && len(children)%2 == 0 {
		diag.Structural("Code", len(children)-1, "odd child count", "even")
	}
	c := &Code{}
	adopt(c, &c.composite, children)
	return c
}

func (c *Code) Kind() Kind { return KindCode }

// Constructs returns the statements/comments/blocks/commands in order.
func (c *Code) Constructs() []Node {
	out := make([]Node, 0, (len(c.children)+1)/2)
	for i := 0; i < len(c.children); i += 2 {
		out = append(out, nodeAt(c, i))
	}
	return out
}
