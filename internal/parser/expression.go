package parser

import "kakapo/internal/cst"

// parseExpression parses one expression and returns it wrapped in a
// Parenthesized node. Bare expressions get empty bracket slots, so the
// wrapper is always present and the formatter can materialize brackets
// without reshaping the tree.
func (p *Parser) parseExpression() (*cst.Parenthesized, bool) {
	if op, ok := p.parseOperation(); ok {
		return cst.NewParenthesized("", "", op, "", ""), true
	}
	if operand, ok := p.parseOperand(); ok {
		return cst.NewParenthesized("", "", operand, "", ""), true
	}
	if p.cur.peek() == '(' {
		return p.parseBracketedExpression()
	}
	p.fail("expression")
	return nil, false
}

// parseBracketedExpression parses `( expr )` with the brackets and interior
// whitespace captured in the Parenthesized slots.
func (p *Parser) parseBracketedExpression() (*cst.Parenthesized, bool) {
	m := p.cur.mark()
	if !p.cur.eat('(') {
		p.fail("expression")
		return nil, false
	}
	lead := p.scanOptionalWhitespace()
	var content cst.Node
	if op, ok := p.parseOperation(); ok {
		content = op
	} else if operand, ok := p.parseOperand(); ok {
		content = operand
	} else {
		p.cur.reset(m)
		p.fail("expression")
		return nil, false
	}
	trail := p.scanOptionalWhitespace()
	if !p.cur.eat(')') {
		p.fail("closing parenthesis")
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewParenthesized("(", cst.Text(lead), content, cst.Text(trail), ")"), true
}

// parseOperation parses a flat operator chain of at least two elements.
// Operators are not ranked: the chain is one delimited list whose delimiter
// slots hold the operator together with its surrounding whitespace.
func (p *Parser) parseOperation() (*cst.Operation, bool) {
	m := p.cur.mark()
	first, ok := p.parseOperationElement()
	if !ok {
		return nil, false
	}
	children := []cst.Child{first}
	for {
		m2 := p.cur.mark()
		wsL := p.scanOptionalWhitespace()
		op, ok := p.scanBinaryOperator()
		if !ok {
			p.cur.reset(m2)
			break
		}
		wsR := p.scanOptionalWhitespace()
		elem, ok := p.parseOperationElement()
		if !ok {
			p.cur.reset(m2)
			break
		}
		children = append(children, cst.Text(wsL+op+wsR), elem)
	}
	if len(children) < 3 {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewOperation(cst.NewDelimitedList(children)), true
}

// parseOperationElement parses one element of an operator chain: an operand
// or a parenthesized subexpression, each wrapped in a Parenthesized node.
func (p *Parser) parseOperationElement() (*cst.Parenthesized, bool) {
	if operand, ok := p.parseOperand(); ok {
		return cst.NewParenthesized("", "", operand, "", ""), true
	}
	if p.cur.peek() == '(' {
		return p.parseBracketedExpression()
	}
	return nil, false
}

// parseOperand parses an atom with an optional unary operator. Prefix `-`
// and `~` and postfix `'` and `.'` bind directly to the atom with no
// whitespace in between.
func (p *Parser) parseOperand() (cst.Node, bool) {
	if b := p.cur.peek(); b == '-' || b == '~' {
		m := p.cur.mark()
		p.cur.bump()
		if atom, ok := p.parseAtom(); ok {
			return cst.NewPrefixOperation(cst.NewLeaf(string(b)), atom), true
		}
		p.cur.reset(m)
		return nil, false
	}
	atom, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	if p.cur.eatString(".'") {
		return cst.NewPostfixOperation(atom, cst.NewLeaf(".'")), true
	}
	// Transpose is the one place a quote does not start a string.
	if p.cur.peek() == '\'' {
		p.cur.bump()
		return cst.NewPostfixOperation(atom, cst.NewLeaf("'")), true
	}
	return atom, true
}

// parseAtom dispatches on the first byte: identifiers open calls, digits
// and a dotted digit open numbers, quotes open strings, square and curly
// brackets open arrays and `@` opens an anonymous function.
func (p *Parser) parseAtom() (cst.Node, bool) {
	switch b := p.cur.peek(); {
	case isLetter(b):
		return p.parseCall()
	case isDigit(b), b == '.' && isDigit(p.cur.peekAt(1)):
		text, ok := p.scanNumber()
		if !ok {
			return nil, false
		}
		return cst.NewLeaf(text), true
	case b == '\'' || b == '"':
		text, ok := p.scanString()
		if !ok {
			return nil, false
		}
		return cst.NewLeaf(text), true
	case b == '[':
		return p.parseArray('[', ']')
	case b == '{':
		return p.parseArray('{', '}')
	case b == '@':
		return p.parseAnonymousFunction()
	}
	p.fail("expression")
	return nil, false
}

// parseCall parses an identifier with zero or more adjacent argument lists.
// A bare identifier is a call with no lists; `a(1){2}` chains both bracket
// styles.
func (p *Parser) parseCall() (cst.Node, bool) {
	name, ok := p.scanIdentifier()
	if !ok {
		return nil, false
	}
	var lists []*cst.ArgumentsList
	for {
		var list *cst.ArgumentsList
		switch p.cur.peek() {
		case '(':
			list, ok = p.parseArgumentsList('(', ')')
		case '{':
			list, ok = p.parseArgumentsList('{', '}')
		default:
			return cst.NewCall(cst.NewLeaf(name), lists), true
		}
		if !ok {
			return nil, false
		}
		lists = append(lists, list)
	}
}

// parseArgumentsList parses a bracketed comma-separated argument list.
// Arguments are expressions or the magic colon.
func (p *Parser) parseArgumentsList(open, closing byte) (*cst.ArgumentsList, bool) {
	m := p.cur.mark()
	if !p.cur.eat(open) {
		p.fail("argument list")
		return nil, false
	}
	lead := p.scanOptionalWhitespace()
	var children []cst.Child
	if first, ok := p.parseArgument(); ok {
		children = append(children, first)
		for {
			m2 := p.cur.mark()
			wsL := p.scanOptionalWhitespace()
			if !p.cur.eat(',') {
				p.cur.reset(m2)
				break
			}
			wsR := p.scanOptionalWhitespace()
			elem, ok := p.parseArgument()
			if !ok {
				p.cur.reset(m2)
				break
			}
			children = append(children, cst.Text(wsL+","+wsR), elem)
		}
	}
	trail := p.scanOptionalWhitespace()
	if !p.cur.eat(closing) {
		p.fail("closing bracket")
		p.cur.reset(m)
		return nil, false
	}
	paren := cst.NewParenthesized(
		cst.Text(open), cst.Text(lead), cst.NewDelimitedList(children), cst.Text(trail), cst.Text(closing))
	return cst.NewArgumentsList(paren), true
}

func (p *Parser) parseArgument() (cst.Node, bool) {
	if expr, ok := p.parseExpression(); ok {
		return expr, true
	}
	if p.cur.eat(':') {
		return cst.NewLeaf(":"), true
	}
	return nil, false
}

// parseArray parses a matrix or cell literal. Elements separate with
// commas, semicolons or bare whitespace; the whole delimiter run lands in
// one slot.
func (p *Parser) parseArray(open, closing byte) (cst.Node, bool) {
	m := p.cur.mark()
	if !p.cur.eat(open) {
		p.fail("array")
		return nil, false
	}
	lead := p.scanOptionalWhitespace()
	var children []cst.Child
	if first, ok := p.parseExpression(); ok {
		children = append(children, first)
		for {
			m2 := p.cur.mark()
			wsL := p.scanOptionalWhitespace()
			var delim string
			switch {
			case p.cur.eat(','):
				delim = wsL + "," + p.scanOptionalWhitespace()
			case p.cur.eat(';'):
				delim = wsL + ";" + p.scanOptionalWhitespace()
			case wsL != "":
				delim = wsL
			default:
				p.cur.reset(m2)
				goto done
			}
			elem, ok := p.parseExpression()
			if !ok {
				p.cur.reset(m2)
				break
			}
			children = append(children, cst.Text(delim), elem)
		}
	}
done:
	trail := p.scanOptionalWhitespace()
	if !p.cur.eat(closing) {
		p.fail("closing bracket")
		p.cur.reset(m)
		return nil, false
	}
	paren := cst.NewParenthesized(
		cst.Text(open), cst.Text(lead), cst.NewDelimitedList(children), cst.Text(trail), cst.Text(closing))
	return cst.NewArray(paren), true
}

// parseAnonymousFunction parses `@(args) expr` or the handle form `@name`.
// When the argument list is present the body expression must follow, else
// the whole thing reparses as a handle.
func (p *Parser) parseAnonymousFunction() (cst.Node, bool) {
	if !p.cur.eat('@') {
		p.fail("function handle")
		return nil, false
	}
	m := p.cur.mark()
	ws1 := p.scanOptionalWhitespace()
	if p.cur.peek() == '(' {
		if args, ok := p.parseArgumentsList('(', ')'); ok {
			ws2 := p.scanOptionalWhitespace()
			if expr, ok := p.parseExpression(); ok {
				return cst.NewAnonymousFunction("@", cst.Text(ws1), args, cst.Text(ws2), expr), true
			}
		}
		p.cur.reset(m)
		ws1 = p.scanOptionalWhitespace()
	}
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return cst.NewAnonymousFunction("@", cst.Text(ws1), cst.Text(""), "", expr), true
}
