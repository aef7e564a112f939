package lexer

import (
	"github.com/cwbudde/jslex/internal/litbuf"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// scanIdentifierOrKeyword implements spec.md 4.3.3: consume an
// IdentifierName one character at a time, decoding any \u escape in
// the run, then classify it against the keyword
// table. An identifier written using any \u escape is never recognized
// as a keyword even if it decodes to one (e.g. "if" spelled with a
// backslash-u escape for its 'i' is never the IF keyword) — matching ECMAScript's prohibition on spelling a reserved word
// via escapes, enforced here at the scanner rather than the parser.
func (sc *Scanner) scanIdentifierOrKeyword(info *tokenInfo, lit *litbuf.Buffer) {
	hasEscapes := false

	if sc.c == '\\' {
		r, ok := sc.scanIdentifierEscape(true)
		if !ok {
			info.typ = token.ILLEGAL
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		}
		hasEscapes = true
		lit.Add(r)
	} else {
		lit.Add(sc.c)
		sc.advance()
	}

	for {
		if sc.c == '\\' {
			r, ok := sc.scanIdentifierEscape(false)
			if !ok {
				break
			}
			hasEscapes = true
			lit.Add(r)
			continue
		}
		if !unicodetables.IsIdentifierPart(sc.c) {
			break
		}
		lit.Add(sc.c)
		sc.advance()
	}

	text := lit.String()
	info.text = text
	info.oneByte = lit.IsOneByte()
	info.hasEscapes = hasEscapes

	if hasEscapes {
		info.typ = token.IDENTIFIER
		return
	}
	info.typ = token.LookupIdent(text, sc.flags)
}

// scanIdentifierEscape consumes a \uXXXX or \u{XXXXXX} escape starting
// at sc.c == '\\' and returns the decoded code point. atStart gates
// whether the result is validated as a legal identifier-start character
// (true) or identifier-part character (false), per spec.md 4.6.
func (sc *Scanner) scanIdentifierEscape(atStart bool) (rune, bool) {
	pos := sc.currentPos()
	if sc.peekNext() != 'u' {
		sc.addError(InvalidIdentifierEscape, pos, "expected unicode escape after '\\'")
		sc.advance() // consume '\\' so scanning always makes progress
		return 0, false
	}
	sc.advance() // consume '\\', sc.c now 'u'
	sc.advance() // consume 'u', sc.c now first hex digit or '{'

	var r rune
	if sc.c == '{' {
		sc.advance()
		digits := 0
		for unicodetables.IsHexDigit(sc.c) {
			r = r*16 + hexValue(sc.c)
			sc.advance()
			digits++
			if r > 0x10FFFF {
				sc.addError(InvalidIdentifierEscape, pos, "unicode escape out of range")
				return 0, false
			}
		}
		if digits == 0 || sc.c != '}' {
			sc.addError(InvalidIdentifierEscape, pos, "malformed \\u{...} escape")
			return 0, false
		}
		sc.advance() // consume '}'
	} else {
		for i := 0; i < 4; i++ {
			if !unicodetables.IsHexDigit(sc.c) {
				sc.addError(InvalidIdentifierEscape, pos, "malformed \\uXXXX escape")
				return 0, false
			}
			r = r*16 + hexValue(sc.c)
			sc.advance()
		}
	}

	valid := false
	if atStart {
		valid = unicodetables.IsIdentifierStart(r)
	} else {
		valid = unicodetables.IsIdentifierPart(r)
	}
	if !valid {
		sc.addError(InvalidIdentifierEscape, pos, "escape does not name a valid identifier character")
		return 0, false
	}
	return r, true
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10
	default:
		return 0
	}
}
