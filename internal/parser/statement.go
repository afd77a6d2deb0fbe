package parser

import "kakapo/internal/cst"

// controlKeywords may stand alone as a statement body.
var controlKeywords = []string{"return", "break", "continue"}

// parseStatement parses an optional output-argument clause, a body and the
// optional trailing semicolon with the whitespace in front of it. When the
// clause matched but no body follows, the clause is given back and the
// whole input reparses as a bare expression (`x == 1` must not start as an
// assignment to x).
func (p *Parser) parseStatement() (*cst.Statement, bool) {
	m := p.cur.mark()
	if oa, ok := p.parseOutputArguments(); ok {
		if body, ok := p.parseExpression(); ok {
			wsSemi, semi := p.scanSemicolon()
			return cst.NewStatement(oa, body, wsSemi, semi), true
		}
		p.cur.reset(m)
	}
	body, ok := p.parseStatementBody()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	wsSemi, semi := p.scanSemicolon()
	return cst.NewStatement(cst.Text(""), body, wsSemi, semi), true
}

func (p *Parser) parseStatementBody() (cst.Node, bool) {
	if expr, ok := p.parseExpression(); ok {
		return expr, true
	}
	for _, kw := range controlKeywords {
		if p.scanKeyword(kw) {
			return cst.NewLeaf(kw), true
		}
	}
	p.fail("expression")
	return nil, false
}

// scanSemicolon scans the two trailing statement slots: whitespace kept
// only when a semicolon actually follows it, then the semicolon itself.
func (p *Parser) scanSemicolon() (cst.Text, cst.Text) {
	m := p.cur.mark()
	ws := p.scanOptionalWhitespace()
	if p.cur.peek() != ';' {
		p.cur.reset(m)
		ws = ""
	}
	if p.cur.eat(';') {
		return cst.Text(ws), ";"
	}
	return cst.Text(ws), ""
}

// parseOutputArguments parses `x =` or `[x, y] =`. Targets are plain
// identifiers; the single form still carries a Parenthesized wrapper with
// empty bracket slots. The `=` must not open `==`.
func (p *Parser) parseOutputArguments() (*cst.OutputArguments, bool) {
	m := p.cur.mark()
	var paren *cst.Parenthesized
	if p.cur.eat('[') {
		lead := p.scanOptionalWhitespace()
		list, ok := p.parseIdentifierList()
		if !ok {
			p.cur.reset(m)
			return nil, false
		}
		trail := p.scanOptionalWhitespace()
		if !p.cur.eat(']') {
			p.fail("closing bracket")
			p.cur.reset(m)
			return nil, false
		}
		paren = cst.NewParenthesized("[", cst.Text(lead), list, cst.Text(trail), "]")
	} else {
		name, ok := p.scanIdentifier()
		if !ok {
			return nil, false
		}
		list := cst.NewDelimitedList([]cst.Child{cst.NewLeaf(name)})
		paren = cst.NewParenthesized("", "", list, "", "")
	}
	wsL := p.scanOptionalWhitespace()
	if p.cur.peek() != '=' || p.cur.peekAt(1) == '=' {
		p.cur.reset(m)
		return nil, false
	}
	p.cur.bump()
	wsR := p.scanOptionalWhitespace()
	return cst.NewOutputArguments(paren, cst.Text(wsL), "=", cst.Text(wsR)), true
}

func (p *Parser) parseIdentifierList() (*cst.DelimitedList, bool) {
	name, ok := p.scanIdentifier()
	if !ok {
		return nil, false
	}
	children := []cst.Child{cst.NewLeaf(name)}
	for {
		m := p.cur.mark()
		wsL := p.scanOptionalWhitespace()
		if !p.cur.eat(',') {
			p.cur.reset(m)
			break
		}
		wsR := p.scanOptionalWhitespace()
		next, ok := p.scanIdentifier()
		if !ok {
			p.cur.reset(m)
			break
		}
		children = append(children, cst.Text(wsL+","+wsR), cst.NewLeaf(next))
	}
	return cst.NewDelimitedList(children), true
}

// parseCommand parses directive-style statements such as `import pkg.*`:
// two or more bare words on one line, accepted only when the line ends
// right after them. Anything followed by operator or call syntax falls
// through to the ordinary statement rule.
func (p *Parser) parseCommand() (*cst.Command, bool) {
	m := p.cur.mark()
	word, ok := p.scanCommandWord()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	children := []cst.Child{cst.NewLeaf(word)}
	for {
		m2 := p.cur.mark()
		ws := p.scanHorizontalSpace()
		if ws == "" {
			break
		}
		next, ok := p.scanCommandWord()
		if !ok {
			p.cur.reset(m2)
			break
		}
		children = append(children, cst.Text(ws), cst.NewLeaf(next))
	}
	if len(children) < 3 || !p.atStatementBoundary() {
		p.cur.reset(m)
		return nil, false
	}
	wsSemi, semi := p.scanSemicolon()
	return cst.NewCommand(children, wsSemi, semi), true
}

// scanCommandWord scans a bare word: identifier characters with an optional
// trailing `*` wildcard after a dot, as in `import pkg.*`.
func (p *Parser) scanCommandWord() (string, bool) {
	if !isLetter(p.cur.peek()) {
		return "", false
	}
	m := p.cur.mark()
	for isIdentChar(p.cur.peek()) && !p.cur.hasString("...") {
		p.cur.bump()
	}
	word := p.cur.textFrom(m)
	if word[len(word)-1] == '.' && p.cur.eat('*') {
		word += "*"
	}
	if isKeyword(word) {
		p.cur.reset(m)
		return "", false
	}
	return word, true
}

func (p *Parser) scanHorizontalSpace() string {
	m := p.cur.mark()
	for b := p.cur.peek(); b == ' ' || b == '\t'; b = p.cur.peek() {
		p.cur.bump()
	}
	return p.cur.textFrom(m)
}

// atStatementBoundary reports whether only horizontal space separates the
// cursor from the end of the statement: a newline, a semicolon, a comment
// or the end of input.
func (p *Parser) atStatementBoundary() bool {
	m := p.cur.mark()
	p.scanHorizontalSpace()
	atEnd := p.cur.eof()
	b := p.cur.peek()
	p.cur.reset(m)
	return atEnd || b == '\n' || b == ';' || b == '%'
}
