package parser

import "kakapo/internal/cst"

func (p *Parser) requireWhitespace() (string, bool) {
	ws, ok := p.scanWhitespace()
	if !ok {
		p.fail("whitespace")
	}
	return ws, ok
}

// parseBlockEnd parses the mandatory `end` terminator with the whitespace
// in front of it and a directly adjacent optional semicolon.
func (p *Parser) parseBlockEnd() (cst.Text, *cst.Leaf, cst.Text, bool) {
	m := p.cur.mark()
	ws := p.scanOptionalWhitespace()
	if !p.scanKeyword("end") {
		p.fail("end")
		p.cur.reset(m)
		return "", nil, "", false
	}
	semi := cst.Text("")
	if p.cur.eat(';') {
		semi = ";"
	}
	return cst.Text(ws), cst.NewLeaf("end"), semi, true
}

// parseHeadedBlockStart parses `<kw> <ws> <head statement> <ws>`, the
// common opening of if, loops, switch and case arms.
func (p *Parser) parseHeadedBlockStart(kw string) (ws1 cst.Text, head *cst.Statement, ws2 cst.Text, ok bool) {
	if !p.scanKeyword(kw) {
		p.fail(kw)
		return "", nil, "", false
	}
	w1, ok := p.requireWhitespace()
	if !ok {
		return "", nil, "", false
	}
	head, ok = p.parseStatement()
	if !ok {
		return "", nil, "", false
	}
	w2, ok := p.requireWhitespace()
	if !ok {
		return "", nil, "", false
	}
	return cst.Text(w1), head, cst.Text(w2), true
}

// parseIf parses an if block with any number of elseif clauses and an
// optional final else clause.
func (p *Parser) parseIf() (cst.Node, bool) {
	m := p.cur.mark()
	ws1, head, ws2, ok := p.parseHeadedBlockStart("if")
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	var clauses []cst.Child
	for {
		m2 := p.cur.mark()
		ws, ok := p.scanWhitespace()
		if !ok {
			break
		}
		switch {
		case p.atKeyword("elseif"):
			p.scanKeyword("elseif")
			ws3, ok := p.requireWhitespace()
			if !ok {
				p.cur.reset(m)
				return nil, false
			}
			cond, ok := p.parseStatement()
			if !ok {
				p.cur.reset(m)
				return nil, false
			}
			ws4, ok := p.requireWhitespace()
			if !ok {
				p.cur.reset(m)
				return nil, false
			}
			clauses = append(clauses, cst.Text(ws), cst.NewLeaf("elseif"),
				cst.Text(ws3), cond, cst.Text(ws4), p.parseCode())
			continue
		case p.atKeyword("else"):
			p.scanKeyword("else")
			ws3, ok := p.requireWhitespace()
			if !ok {
				p.cur.reset(m)
				return nil, false
			}
			clauses = append(clauses, cst.Text(ws), cst.NewLeaf("else"),
				cst.Text(ws3), p.parseCode())
		default:
			p.cur.reset(m2)
		}
		break
	}
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewBlock(cst.KindIf, cst.NewLeaf("if"), ws1, head, ws2, body,
		clauses, wsEnd, end, semi), true
}

// parseLoop parses a for or while block; both share the headed shape with
// no clauses.
func (p *Parser) parseLoop(kind cst.Kind, kw string) (cst.Node, bool) {
	m := p.cur.mark()
	ws1, head, ws2, ok := p.parseHeadedBlockStart(kw)
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewBlock(kind, cst.NewLeaf(kw), ws1, head, ws2, body,
		nil, wsEnd, end, semi), true
}

// parseFunction parses a function definition. The signature is a statement
// whose body is the name-with-parameters call, optionally preceded by
// output arguments. The terminator is optional: script-style functions run
// to the end of the enclosing code.
func (p *Parser) parseFunction() (cst.Node, bool) {
	m := p.cur.mark()
	p.scanKeyword("function")
	ws1, ok := p.requireWhitespace()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	head, ok := p.parseFunctionSignature()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	ws2, ok := p.requireWhitespace()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	wsEnd, end, semi := cst.Text(""), cst.NewLeaf(""), cst.Text("")
	if w, e, s, ok := p.parseBlockEnd(); ok {
		wsEnd, end, semi = w, e, s
	}
	return cst.NewBlock(cst.KindFunction, cst.NewLeaf("function"), cst.Text(ws1),
		head, cst.Text(ws2), body, nil, wsEnd, end, semi), true
}

func (p *Parser) parseFunctionSignature() (*cst.Statement, bool) {
	var outArgs cst.Child = cst.Text("")
	if oa, ok := p.parseOutputArguments(); ok {
		outArgs = oa
	}
	call, ok := p.parseCall()
	if !ok {
		return nil, false
	}
	body := cst.NewParenthesized("", "", call, "", "")
	return cst.NewStatement(outArgs, body, "", ""), true
}

// parseTryCatch parses a try block with an optional catch clause. The head
// slots are empty: try has no condition. The catch error variable, when
// present, sits on the catch line itself.
func (p *Parser) parseTryCatch() (cst.Node, bool) {
	m := p.cur.mark()
	p.scanKeyword("try")
	ws1, ok := p.requireWhitespace()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	var clauses []cst.Child
	m2 := p.cur.mark()
	if ws, ok := p.scanWhitespace(); ok && p.atKeyword("catch") {
		p.scanKeyword("catch")
		varWS, errVar := cst.Text(""), cst.Child(cst.Text(""))
		m3 := p.cur.mark()
		if h := p.scanHorizontalSpace(); h != "" {
			if expr, ok := p.parseExpression(); ok {
				varWS, errVar = cst.Text(h), expr
			} else {
				p.cur.reset(m3)
			}
		}
		ws2, ok := p.requireWhitespace()
		if !ok {
			p.cur.reset(m)
			return nil, false
		}
		clauses = append(clauses, cst.Text(ws), cst.NewLeaf("catch"),
			varWS, errVar, cst.Text(ws2), p.parseCode())
	} else {
		p.cur.reset(m2)
	}
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	// The post-keyword whitespace sits in the head-gap slot so the body's
	// preceding slot is the one re-indentation rewrites.
	return cst.NewBlock(cst.KindTryCatch, cst.NewLeaf("try"), cst.Text(""),
		cst.Text(""), cst.Text(ws1), body, clauses, wsEnd, end, semi), true
}

// parseSwitch parses a switch block. Its body holds only case and
// otherwise arms plus comments; the arms themselves have no terminator of
// their own.
func (p *Parser) parseSwitch() (cst.Node, bool) {
	m := p.cur.mark()
	ws1, head, ws2, ok := p.parseHeadedBlockStart("switch")
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseSwitchBody()
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewBlock(cst.KindSwitch, cst.NewLeaf("switch"), ws1, head, ws2, body,
		nil, wsEnd, end, semi), true
}

func (p *Parser) parseSwitchBody() *cst.Code {
	first, ok := p.parseSwitchItem()
	if !ok {
		return cst.NewCode(nil)
	}
	children := []cst.Child{first}
	for {
		m := p.cur.mark()
		sep := p.scanSeparator()
		next, ok := p.parseSwitchItem()
		if !ok {
			p.cur.reset(m)
			break
		}
		children = append(children, cst.Text(sep), next)
	}
	return cst.NewCode(children)
}

func (p *Parser) parseSwitchItem() (cst.Node, bool) {
	switch {
	case p.cur.peek() == '%':
		return p.parseComment()
	case p.atKeyword("case"):
		return p.parseCase()
	case p.atKeyword("otherwise"):
		return p.parseOtherwise()
	}
	return nil, false
}

// parseCase parses one case arm. The arm ends where the next arm or the
// switch terminator begins, so its own terminator slots stay empty.
func (p *Parser) parseCase() (cst.Node, bool) {
	m := p.cur.mark()
	ws1, head, ws2, ok := p.parseHeadedBlockStart("case")
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	return cst.NewBlock(cst.KindCase, cst.NewLeaf("case"), ws1, head, ws2, body,
		nil, "", cst.NewLeaf(""), ""), true
}

func (p *Parser) parseOtherwise() (cst.Node, bool) {
	m := p.cur.mark()
	p.scanKeyword("otherwise")
	ws1, ok := p.requireWhitespace()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	return cst.NewBlock(cst.KindCase, cst.NewLeaf("otherwise"), cst.Text(""),
		cst.Text(""), cst.Text(ws1), body, nil, "", cst.NewLeaf(""), ""), true
}

// parseClassdef parses a class definition. The head covers the name and an
// optional superclass chain (`classdef Foo < Base` parses the chain as one
// operation).
func (p *Parser) parseClassdef() (cst.Node, bool) {
	m := p.cur.mark()
	ws1, head, ws2, ok := p.parseHeadedBlockStart("classdef")
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	body := p.parseCode()
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewBlock(cst.KindClassdef, cst.NewLeaf("classdef"), ws1, head, ws2, body,
		nil, wsEnd, end, semi), true
}

// parseMethods parses a methods section, with or without an attribute
// head (`methods (Static)`).
func (p *Parser) parseMethods() (cst.Node, bool) {
	m := p.cur.mark()
	p.scanKeyword("methods")
	ws1, ok := p.requireWhitespace()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	m2 := p.cur.mark()
	wsKw, head, wsHead := cst.Text(""), cst.Child(cst.Text("")), cst.Text(ws1)
	if h, ok := p.parseStatement(); ok {
		if w2, ok := p.requireWhitespace(); ok {
			wsKw, head, wsHead = cst.Text(ws1), h, cst.Text(w2)
		} else {
			p.cur.reset(m2)
		}
	}
	body := p.parseCode()
	wsEnd, end, semi, ok := p.parseBlockEnd()
	if !ok {
		p.cur.reset(m)
		return nil, false
	}
	return cst.NewBlock(cst.KindMethods, cst.NewLeaf("methods"), wsKw,
		head, wsHead, body, nil, wsEnd, end, semi), true
}
