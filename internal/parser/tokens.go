package parser

import "strings"

// maxIdentifierLength mirrors MATLAB's identifier limit.
const maxIdentifierLength = 63

// reservedKeywords is the closed keyword set. A keyword never parses as an
// identifier, even where no block grammar consumes it yet.
var reservedKeywords = map[string]struct{}{
	"if": {}, "for": {}, "while": {}, "function": {}, "end": {},
	"switch": {}, "case": {}, "otherwise": {}, "try": {}, "catch": {},
	"classdef": {}, "methods": {}, "properties": {}, "arguments": {},
	"global": {}, "persistent": {}, "parfor": {}, "spmd": {},
	"break": {}, "continue": {}, "return": {}, "else": {}, "elseif": {},
}

// binaryOperators is matched longest-first so `.*` wins over `*` and `<=`
// over `<`. Chains of these stay one flat list; no precedence is modeled.
var binaryOperators = []string{
	".*", "./", ".^", "==", "~=", ">=", "<=", "&&", "||",
	"+", "-", "*", "/", "^", "\\", ">", "<", "&", "|", ":",
}

func isKeyword(s string) bool {
	_, ok := reservedKeywords[s]
	return ok
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isIdentChar covers identifier continuation characters; the dot admits
// namespace access (`pkg.fn`).
func isIdentChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_' || b == '.'
}

func isSpaceChar(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

// scanWhitespace consumes a run of spaces, tabs, newlines and line
// continuations. A continuation is `...` plus everything up to the next
// newline; the newline itself is picked up as ordinary whitespace on the
// next round. Whitespace is significant content: the verbatim run is
// returned for storage in a Text slot.
func (p *Parser) scanWhitespace() (string, bool) {
	m := p.cur.mark()
	for {
		switch {
		case isSpaceChar(p.cur.peek()):
			p.cur.bump()
		case p.cur.hasString("..."):
			p.cur.eatString("...")
			for !p.cur.eof() && p.cur.peek() != '\n' {
				p.cur.bump()
			}
		default:
			if p.cur.mark() == m {
				return "", false
			}
			return p.cur.textFrom(m), true
		}
	}
}

// scanOptionalWhitespace is scanWhitespace that accepts emptiness.
func (p *Parser) scanOptionalWhitespace() string {
	ws, _ := p.scanWhitespace()
	return ws
}

// scanKeyword consumes kw only when the following character does not extend
// it into an identifier (negative lookahead against the identifier class).
func (p *Parser) scanKeyword(kw string) bool {
	if !p.atKeyword(kw) {
		return false
	}
	p.cur.eatString(kw)
	return true
}

func (p *Parser) atKeyword(kw string) bool {
	if !p.cur.hasString(kw) {
		return false
	}
	next := p.cur.peekAt(uint32(len(kw))) // #nosec G115 -- keyword lengths are tiny
	return !isIdentChar(next)
}

// scanIdentifier consumes a name: a letter followed by up to 62 further
// identifier characters, not equal to a reserved keyword.
func (p *Parser) scanIdentifier() (string, bool) {
	if !isLetter(p.cur.peek()) {
		p.fail("identifier")
		return "", false
	}
	m := p.cur.mark()
	p.cur.bump()
	for p.continuesName() && p.cur.off-uint32(m) < maxIdentifierLength {
		p.cur.bump()
	}
	if p.continuesName() {
		p.cur.reset(m)
		p.fail("identifier of at most 63 characters")
		return "", false
	}
	name := p.cur.textFrom(m)
	if isKeyword(name) {
		p.cur.reset(m)
		p.fail("identifier")
		return "", false
	}
	return name, true
}

// continuesName reports whether the byte under the cursor extends the name
// being scanned. A `...` run is a continuation marker, never part of a
// name, and a dot counts only when a letter follows it: the dot in `b.*`
// or `b.'` belongs to the operator.
func (p *Parser) continuesName() bool {
	b := p.cur.peek()
	if !isIdentChar(b) || p.cur.hasString("...") {
		return false
	}
	if b == '.' {
		return isLetter(p.cur.peekAt(1))
	}
	return true
}

// scanNumber consumes an unsigned numeric literal: digits with optional
// fraction and exponent, or a bare `.5` fraction. The leading sign is a
// prefix operation, not part of the literal.
func (p *Parser) scanNumber() (string, bool) {
	m := p.cur.mark()
	hasIntPart := false
	for isDigit(p.cur.peek()) {
		hasIntPart = true
		p.cur.bump()
	}
	// A dot starts the fraction only when it is not a continuation marker.
	if p.cur.peek() == '.' && !p.cur.hasString("...") && (hasIntPart || isDigit(p.cur.peekAt(1))) {
		p.cur.bump()
		for isDigit(p.cur.peek()) {
			p.cur.bump()
		}
	} else if !hasIntPart {
		p.cur.reset(m)
		p.fail("number")
		return "", false
	}
	if b := p.cur.peek(); b == 'e' || b == 'E' {
		m2 := p.cur.mark()
		p.cur.bump()
		if b := p.cur.peek(); b == '+' || b == '-' {
			p.cur.bump()
		}
		if isDigit(p.cur.peek()) {
			for isDigit(p.cur.peek()) {
				p.cur.bump()
			}
		} else {
			p.cur.reset(m2)
		}
	}
	return p.cur.textFrom(m), true
}

// scanString consumes a quoted string with doubled-quote escapes, keeping
// the quotes in the returned text.
func (p *Parser) scanString() (string, bool) {
	quote := p.cur.peek()
	if quote != '\'' && quote != '"' {
		p.fail("string")
		return "", false
	}
	m := p.cur.mark()
	p.cur.bump()
	for {
		if p.cur.eof() || p.cur.peek() == '\n' {
			p.fail("closing quote")
			p.cur.reset(m)
			return "", false
		}
		b := p.cur.bump()
		if b == quote {
			if p.cur.peek() == quote {
				p.cur.bump() // escaped quote
				continue
			}
			return p.cur.textFrom(m), true
		}
	}
}

// scanBinaryOperator consumes the longest matching binary operator.
func (p *Parser) scanBinaryOperator() (string, bool) {
	for _, op := range binaryOperators {
		if p.cur.eatString(op) {
			return op, true
		}
	}
	p.fail("operator")
	return "", false
}

// scanRestOfLine consumes everything up to (not including) the next newline.
func (p *Parser) scanRestOfLine() string {
	m := p.cur.mark()
	for !p.cur.eof() && p.cur.peek() != '\n' {
		p.cur.bump()
	}
	return p.cur.textFrom(m)
}

// DelimiterCore extracts the operator or separator core from a delimiter
// slot by stripping the surrounding whitespace and continuation runs. The
// result is empty for a bare-whitespace array delimiter.
func DelimiterCore(slot string) string {
	s := slot
	// leading whitespace/continuations
	for {
		switch {
		case s != "" && (s[0] == ' ' || s[0] == '\t' || s[0] == '\n'):
			s = s[1:]
		case strings.HasPrefix(s, "..."):
			if idx := strings.IndexByte(s, '\n'); idx >= 0 {
				s = s[idx+1:]
			} else {
				s = ""
			}
		default:
			goto trailing
		}
	}
trailing:
	// The core never contains whitespace, so cut at the first space-class
	// byte or continuation start.
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			return s[:i]
		}
		if strings.HasPrefix(s[i:], "...") {
			return s[:i]
		}
	}
	return s
}
