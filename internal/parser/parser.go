// Package parser builds the concrete syntax tree for MATLAB source.
//
// The parser is a scannerless recursive descent over raw bytes with
// backtracking. There is no token stream: whitespace is significant and is
// captured verbatim into the tree, so every rule reads and restores the
// cursor itself. On failure the deepest reach into the input wins; the
// reported error names the expectation that failed there.
package parser

import (
	"kakapo/internal/cst"
	"kakapo/internal/diag"
	"kakapo/internal/source"
)

// Parser holds the cursor state and the furthest-failure record for one
// parse. A Parser is single-use.
type Parser struct {
	cur cursor

	failOff uint32
	failExp string
}

// Parse parses an entire file into a CST whose text round-trips to the
// input byte for byte. On failure it returns a *diag.ParseError pointing at
// the furthest position the parser reached.
func Parse(f *source.File) (*cst.File, error) {
	p := &Parser{cur: newCursor(f)}
	lead := p.scanOptionalWhitespace()
	code := p.parseCode()
	trail := p.scanOptionalWhitespace()
	if !p.cur.eof() {
		return nil, p.parseError()
	}
	return cst.NewFile(cst.Text(lead), code, cst.Text(trail)), nil
}

// ParseFromPath loads path and parses it.
func ParseFromPath(path string) (*cst.File, error) {
	f, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

// fail records an expectation failure at the current position. Only the
// furthest failure survives; ties keep the earlier expectation.
func (p *Parser) fail(expected string) {
	if p.cur.off > p.failOff || p.failExp == "" {
		p.failOff = p.cur.off
		p.failExp = expected
	}
}

func (p *Parser) parseError() error {
	off, exp := p.failOff, p.failExp
	if p.cur.off > off {
		off, exp = p.cur.off, "statement"
	}
	if exp == "" {
		exp = "statement"
	}
	return diag.NewParseError(p.cur.file, off, exp)
}

// parseCode parses a run of constructs joined by separator slots. It never
// fails: zero constructs yield an empty Code.
func (p *Parser) parseCode() *cst.Code {
	first, ok := p.parseConstruct()
	if !ok {
		return cst.NewCode(nil)
	}
	children := []cst.Child{first}
	for {
		m := p.cur.mark()
		sep := p.scanSeparator()
		next, ok := p.parseConstruct()
		if !ok {
			p.cur.reset(m)
			break
		}
		children = append(children, cst.Text(sep), next)
	}
	return cst.NewCode(children)
}

// scanSeparator consumes the slot between two constructs: optional
// whitespace with any number of embedded statement terminators.
func (p *Parser) scanSeparator() string {
	m := p.cur.mark()
	p.scanOptionalWhitespace()
	for p.cur.eat(';') {
		p.scanOptionalWhitespace()
	}
	return p.cur.textFrom(m)
}

// parseConstruct parses one top-of-code construct: a comment, a block, a
// command or a statement. Block-closing keywords are rejected here so that
// nested code runs stop in front of them.
func (p *Parser) parseConstruct() (cst.Node, bool) {
	switch {
	case p.cur.peek() == '%':
		return p.parseComment()
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("for"):
		return p.parseLoop(cst.KindForLoop, "for")
	case p.atKeyword("while"):
		return p.parseLoop(cst.KindWhileLoop, "while")
	case p.atKeyword("function"):
		return p.parseFunction()
	case p.atKeyword("try"):
		return p.parseTryCatch()
	case p.atKeyword("switch"):
		return p.parseSwitch()
	case p.atKeyword("classdef"):
		return p.parseClassdef()
	case p.atKeyword("methods"):
		return p.parseMethods()
	case p.atKeyword("end"), p.atKeyword("else"), p.atKeyword("elseif"),
		p.atKeyword("catch"), p.atKeyword("case"), p.atKeyword("otherwise"):
		p.fail("statement")
		return nil, false
	}
	if cmd, ok := p.parseCommand(); ok {
		return cmd, true
	}
	stmt, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseComment() (cst.Node, bool) {
	if !p.cur.eat('%') {
		p.fail("comment")
		return nil, false
	}
	return cst.NewComment(cst.Text("%"), cst.Text(p.scanRestOfLine())), true
}
