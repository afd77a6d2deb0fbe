package cst

import "kakapo/internal/diag"

// DelimitedList alternates elements and delimiter slots: elements sit at even
// indices, delimiter Text at odd indices, so a non-empty list has odd length.
// A delimiter slot holds the delimiter together with the whitespace around it
// ("  ,\n  " is one slot). The zero-element list has no children at all.
type DelimitedList struct{ composite }

// NewDelimitedList builds a list from an already alternating slot sequence.
// Element counts are enforced here, at construction, never re-checked later.
func NewDelimitedList(children []Child) *DelimitedList {
	if len(children) > 0 && len(children)%2 == 0 {
		diag.Structural("DelimitedList", len(children)-1, "odd child count", "even")
	}
	l := &DelimitedList{}
	adopt(l, &l.composite, children)
	return l
}

func (l *DelimitedList) Kind() Kind { return KindDelimitedList }

// Len returns the number of elements (not slots).
func (l *DelimitedList) Len() int { return (len(l.children) + 1) / 2 }

// Element returns the i-th element (children index 2*i).
func (l *DelimitedList) Element(i int) Node { return nodeAt(l, 2*i) }

// Elements returns every element in order.
func (l *DelimitedList) Elements() []Node {
	out := make([]Node, 0, l.Len())
	for i := 0; i < len(l.children); i += 2 {
		out = append(out, nodeAt(l, i))
	}
	return out
}

// Delimiter returns the delimiter slot after element i (children index 2*i+1).
func (l *DelimitedList) Delimiter(i int) Text { return textAt(l, 2*i+1) }

// SetDelimiter overwrites the delimiter slot after element i.
func (l *DelimitedList) SetDelimiter(i int, value Text) { SetTextAt(l, 2*i+1, value) }

// Parenthesized slot layout: open bracket, interior space, content, interior
// space, close bracket. For optional parenthesization that matched no actual
// brackets, the bracket and interior slots are empty Text.
type Parenthesized struct{ composite }

const (
	parenOpen = iota
	parenLeadWS
	parenContent
	parenTrailWS
	parenClose
)

func NewParenthesized(open, lead Text, content Node, trail, closing Text) *Parenthesized {
	p := &Parenthesized{}
	adopt(p, &p.composite, []Child{open, lead, content, trail, closing})
	return p
}

func (p *Parenthesized) Kind() Kind    { return KindParenthesized }
func (p *Parenthesized) Content() Node { return nodeAt(p, parenContent) }
func (p *Parenthesized) Open() Text    { return textAt(p, parenOpen) }
func (p *Parenthesized) Close() Text   { return textAt(p, parenClose) }

// Bracketed reports whether actual brackets were present in the source.
func (p *Parenthesized) Bracketed() bool { return textAt(p, parenOpen) != "" }

// ClearInteriorSpace empties the whitespace slots just inside the brackets.
func (p *Parenthesized) ClearInteriorSpace() {
	SetTextAt(p, parenLeadWS, "")
	SetTextAt(p, parenTrailWS, "")
}

// SetInterior overwrites the whitespace slots just inside the brackets,
// used when breaking an argument list across lines.
func (p *Parenthesized) SetInterior(lead, trail Text) {
	SetTextAt(p, parenLeadWS, lead)
	SetTextAt(p, parenTrailWS, trail)
}

// Call is an identifier with zero or more stacked argument lists
// (chained indexing: `a(1){2}`). Child 0 is the identifier Leaf; every
// further child is an ArgumentsList.
type Call struct{ composite }

func NewCall(ident *Leaf, lists []*ArgumentsList) *Call {
	children := make([]Child, 0, 1+len(lists))
	children = append(children, ident)
	for _, al := range lists {
		children = append(children, al)
	}
	c := &Call{}
	adopt(c, &c.composite, children)
	return c
}

func (c *Call) Kind() Kind         { return KindCall }
func (c *Call) Identifier() *Leaf  { return nodeAt(c, 0).(*Leaf) }
func (c *Call) ArgumentCount() int { return len(c.children) - 1 }

// ArgumentsList returns the first stacked argument list, if any.
func (c *Call) ArgumentsList() (*ArgumentsList, bool) {
	if len(c.children) < 2 {
		return nil, false
	}
	al, ok := nodeAt(c, 1).(*ArgumentsList)
	if !ok {
		diag.Structural("Call", 1, "ArgumentsList", nodeAt(c, 1).Kind().String())
	}
	return al, true
}

// elementsList is the shared shape of ArgumentsList, OutputArguments and
// Array: a single Parenthesized child whose content is a DelimitedList.
type elementsList struct{ composite }

func (e *elementsList) parenthesized(owner Node) *Parenthesized {
	p, ok := nodeAt(owner, 0).(*Parenthesized)
	if !ok {
		diag.Structural(owner.Kind().String(), 0, "Parenthesized", nodeAt(owner, 0).Kind().String())
	}
	return p
}

// ElementsListOf returns the inner DelimitedList of an ArgumentsList,
// OutputArguments or Array node.
func ElementsListOf(n Node) *DelimitedList {
	var p *Parenthesized
	switch v := n.(type) {
	case *ArgumentsList:
		p = v.Parenthesized()
	case *OutputArguments:
		p = v.Parenthesized()
	case *Array:
		p = v.Parenthesized()
	default:
		diag.Structural(n.Kind().String(), 0, "elements-list kind", n.Kind().String())
	}
	dl, ok := p.Content().(*DelimitedList)
	if !ok {
		diag.Structural(n.Kind().String(), 0, "DelimitedList content", p.Content().Kind().String())
	}
	return dl
}

// ArgumentsList wraps `(...)` or `{...}` call arguments.
type ArgumentsList struct{ elementsList }

func NewArgumentsList(p *Parenthesized) *ArgumentsList {
	al := &ArgumentsList{}
	adopt(al, &al.composite, []Child{p})
	return al
}

func (a *ArgumentsList) Kind() Kind                    { return KindArgumentsList }
func (a *ArgumentsList) Parenthesized() *Parenthesized { return a.parenthesized(a) }

// OutputArguments is the assignment clause `x = ` or `[x, y] = `. Slot
// layout: Parenthesized target list, space, `=`, space. The bracket slots of
// the Parenthesized are empty for the single-target form.
type OutputArguments struct{ elementsList }

const (
	outArgsParen = iota
	outArgsLeadWS
	outArgsEquals
	outArgsTrailWS
)

func NewOutputArguments(p *Parenthesized, lead Text, equals Text, trail Text) *OutputArguments {
	oa := &OutputArguments{}
	adopt(oa, &oa.composite, []Child{p, lead, equals, trail})
	return oa
}

func (o *OutputArguments) Kind() Kind                    { return KindOutputArguments }
func (o *OutputArguments) Parenthesized() *Parenthesized { return o.parenthesized(o) }

// NormalizeSpacing forces a single space on both sides of the equals sign.
func (o *OutputArguments) NormalizeSpacing() {
	SetTextAt(o, outArgsLeadWS, " ")
	SetTextAt(o, outArgsTrailWS, " ")
}

// Array is a `[...]` array or `{...}` cell literal.
type Array struct{ elementsList }

func NewArray(p *Parenthesized) *Array {
	a := &Array{}
	adopt(a, &a.composite, []Child{p})
	return a
}

func (a *Array) Kind() Kind                    { return KindArray }
func (a *Array) Parenthesized() *Parenthesized { return a.parenthesized(a) }

// AnonymousFunction is `@(args) expr` or the handle form `@name`. Slot
// layout: `@`, space, argument list (empty Text for the handle form),
// space, expression.
type AnonymousFunction struct{ composite }

const (
	anonAt = iota
	anonLeadWS
	anonArgs
	anonTrailWS
	anonExpr
)

func NewAnonymousFunction(at Text, lead Text, args Child, trail Text, expr Node) *AnonymousFunction {
	f := &AnonymousFunction{}
	adopt(f, &f.composite, []Child{at, lead, args, trail, expr})
	return f
}

func (f *AnonymousFunction) Kind() Kind       { return KindAnonymousFunction }
func (f *AnonymousFunction) Expression() Node { return nodeAt(f, anonExpr) }

// Arguments returns the argument list, or false for the `@name` handle form.
func (f *AnonymousFunction) Arguments() (*ArgumentsList, bool) {
	ch := f.children[anonArgs]
	if _, isText := ch.(Text); isText {
		return nil, false
	}
	al, ok := ch.(*ArgumentsList)
	if !ok {
		diag.Structural("AnonymousFunction", anonArgs, "ArgumentsList", ch.(Node).Kind().String())
	}
	return al, true
}

// Operation is a flat operand/operator chain. Its single child is a
// DelimitedList whose delimiter slots carry the binary operators; chained
// same-level operators stay one flat list, precedence is deliberately not
// modeled.
type Operation struct{ composite }

func NewOperation(list *DelimitedList) *Operation {
	o := &Operation{}
	adopt(o, &o.composite, []Child{list})
	return o
}

func (o *Operation) Kind() Kind { return KindOperation }

func (o *Operation) List() *DelimitedList {
	dl, ok := nodeAt(o, 0).(*DelimitedList)
	if !ok {
		diag.Structural("Operation", 0, "DelimitedList", nodeAt(o, 0).Kind().String())
	}
	return dl
}

// SingleElementOperation is a unary prefix (`-x`, `~x`) or postfix
// (`x'`, `x.'`) operation: exactly one operator Leaf and one operand.
type SingleElementOperation struct{ composite }

// NewPrefixOperation builds `op operand`.
func NewPrefixOperation(op *Leaf, operand Node) *SingleElementOperation {
	s := &SingleElementOperation{}
	adopt(s, &s.composite, []Child{op, operand})
	return s
}

// NewPostfixOperation builds `operand op`.
func NewPostfixOperation(operand Node, op *Leaf) *SingleElementOperation {
	s := &SingleElementOperation{}
	adopt(s, &s.composite, []Child{operand, op})
	return s
}

func (s *SingleElementOperation) Kind() Kind { return KindSingleElementOperation }
