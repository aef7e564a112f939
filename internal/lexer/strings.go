package lexer

import (
	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/litbuf"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// scanString implements spec.md 4.3.5: a single- or double-quoted
// StringLiteral with full ECMA-262 §7.8.4 escape processing. An
// unterminated string (EOF or a raw line terminator before the closing
// quote) becomes ILLEGAL with whatever was decoded so far as its text.
func (sc *Scanner) scanString(info *tokenInfo, lit *litbuf.Buffer) {
	quote := sc.c
	start := sc.currentPos()
	sc.advance()

	for {
		switch {
		case sc.c == quote:
			sc.advance()
			info.typ = token.STRING
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		case sc.c == charstream.EndOfInput || unicodetables.IsLineTerminator(sc.c):
			sc.addError(UnterminatedString, start, "unterminated string literal")
			info.typ = token.ILLEGAL
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		case sc.c == '\\':
			r, ok := sc.scanEscapeSequence()
			if !ok {
				info.typ = token.ILLEGAL
				info.text = lit.String()
				info.oneByte = lit.IsOneByte()
				return
			}
			if r != charstream.EndOfInput {
				lit.Add(r)
			}
		default:
			lit.Add(sc.c)
			sc.advance()
		}
	}
}

// scanTemplate implements the template-literal half of spec.md 4.3.5:
// a backtick-delimited span ending either at the closing backtick (a
// complete, non-substituted literal) or at "${" (the start of an
// embedded expression). isHead distinguishes a span starting at the
// opening backtick (produces TEMPLATE_LITERAL/TEMPLATE_HEAD) from one
// resuming after a '}' that closed a substitution (produces
// TEMPLATE_TAIL/TEMPLATE_MIDDLE, via ScanTemplateContinuation).
func (sc *Scanner) scanTemplate(info *tokenInfo, lit *litbuf.Buffer, isHead bool) {
	sc.advance() // consume the opening backtick
	sc.scanTemplateBody(info, lit, isHead)
}

// scanTemplateBody is the shared span-scanning loop behind scanTemplate
// and ScanTemplateContinuation. It assumes sc.c already sits on the
// first content character of the span (whatever opening delimiter
// preceded it — a backtick or a substitution's closing '}' — has
// already been consumed by the caller).
func (sc *Scanner) scanTemplateBody(info *tokenInfo, lit *litbuf.Buffer, isHead bool) {
	start := sc.currentPos()

	for {
		switch {
		case sc.c == charstream.EndOfInput:
			sc.addError(UnterminatedString, start, "unterminated template literal")
			info.typ = token.ILLEGAL
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		case sc.c == '`':
			sc.advance()
			info.typ = token.TEMPLATE_LITERAL
			if !isHead {
				info.typ = token.TEMPLATE_TAIL
			}
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		case sc.c == '$' && sc.peekNext() == '{':
			sc.advance() // consume '$'
			sc.advance() // consume '{'
			info.typ = token.TEMPLATE_HEAD
			if !isHead {
				info.typ = token.TEMPLATE_MIDDLE
			}
			info.text = lit.String()
			info.oneByte = lit.IsOneByte()
			return
		case sc.c == '\\':
			r, ok := sc.scanEscapeSequence()
			if !ok {
				info.typ = token.ILLEGAL
				info.text = lit.String()
				info.oneByte = lit.IsOneByte()
				return
			}
			if r != charstream.EndOfInput {
				lit.Add(r)
			}
		default:
			lit.Add(sc.c)
			sc.advance()
		}
	}
}

// ScanTemplateContinuation re-enters template scanning after a parser
// has consumed a '}' token (sc.current, of type token.RBRACE) that it
// knows closes a template substitution rather than an ordinary block.
// The scanner's ordinary one-token lookahead already scanned past that
// '}' as if it were unremarkable punctuation, so this re-seeks the
// stream to just past it and rescans the template span from there,
// producing TEMPLATE_MIDDLE or TEMPLATE_TAIL depending on what follows.
// Like ScanRegExpPattern, the resumed line/column are best-effort: exact
// only when the substitution did not itself span multiple lines.
func (sc *Scanner) ScanTemplateContinuation() token.TokenType {
	closeBrace := sc.current.pos
	sc.stream.Seek(closeBrace.Offset + 1)
	sc.line = closeBrace.Line
	sc.col = closeBrace.Column // advance moves it onto the character after '}'
	sc.offset = closeBrace.Offset + 1
	sc.advance()

	sc.curLit.Reset()
	sc.octalPos = token.Position{}
	sc.scanTemplateBody(&sc.current, sc.curLit, false)
	sc.current.octalPos = sc.octalPos
	sc.current.end = sc.currentPos()
	sc.scanInto(&sc.next, sc.nextLit)
	return sc.current.typ
}

// scanEscapeSequence consumes a backslash escape (the '\\' itself plus
// whatever follows) and returns the code point it produces, or
// charstream.EndOfInput to signal that the escape produced no
// character at all (a line continuation). ok is false when the escape
// is malformed, in which case the caller should stop scanning the
// enclosing literal.
func (sc *Scanner) scanEscapeSequence() (rune, bool) {
	start := sc.currentPos()
	sc.advance() // consume '\\'

	switch sc.c {
	case 'n':
		sc.advance()
		return '\n', true
	case 't':
		sc.advance()
		return '\t', true
	case 'r':
		sc.advance()
		return '\r', true
	case 'b':
		sc.advance()
		return '\b', true
	case 'f':
		sc.advance()
		return '\f', true
	case 'v':
		sc.advance()
		return '\v', true
	case '\'', '"', '`', '\\':
		r := sc.c
		sc.advance()
		return r, true
	case 'x':
		sc.advance()
		var v rune
		for i := 0; i < 2; i++ {
			if !unicodetables.IsHexDigit(sc.c) {
				sc.addError(InvalidEscape, start, "malformed \\x escape")
				return 0, false
			}
			v = v*16 + hexValue(sc.c)
			sc.advance()
		}
		return v, true
	case 'u':
		sc.advance() // consume 'u'
		return sc.scanUnicodeEscapeValue(start)
	case '0':
		if unicodetables.IsDecimalDigit(sc.peekNext()) {
			return sc.scanLegacyOctalEscape(start)
		}
		sc.advance()
		return 0, true
	case '1', '2', '3', '4', '5', '6', '7':
		return sc.scanLegacyOctalEscape(start)
	case '\n', 0x2028, 0x2029:
		sc.advance()
		return charstream.EndOfInput, true
	case '\r':
		sc.advance()
		if sc.c == '\n' {
			sc.advance()
		}
		return charstream.EndOfInput, true
	case charstream.EndOfInput:
		sc.addError(InvalidEscape, start, "unterminated escape sequence")
		return 0, false
	default:
		// IdentityEscape: any other character escapes to itself.
		r := sc.c
		sc.advance()
		return r, true
	}
}

// scanUnicodeEscapeValue parses the \uXXXX / \u{XXXXXX} forms (sc.c is
// positioned just after the 'u') for use inside string and template
// literals, where (unlike in an identifier) any code point up to
// 0x10FFFF is acceptable.
func (sc *Scanner) scanUnicodeEscapeValue(start token.Position) (rune, bool) {
	var r rune
	if sc.c == '{' {
		sc.advance()
		digits := 0
		for unicodetables.IsHexDigit(sc.c) {
			r = r*16 + hexValue(sc.c)
			sc.advance()
			digits++
			if r > 0x10FFFF {
				sc.addError(InvalidEscape, start, "unicode escape out of range")
				return 0, false
			}
		}
		if digits == 0 || sc.c != '}' {
			sc.addError(InvalidEscape, start, "malformed \\u{...} escape")
			return 0, false
		}
		sc.advance()
		return r, true
	}
	for i := 0; i < 4; i++ {
		if !unicodetables.IsHexDigit(sc.c) {
			sc.addError(InvalidEscape, start, "malformed \\uXXXX escape")
			return 0, false
		}
		r = r*16 + hexValue(sc.c)
		sc.advance()
	}
	return r, true
}

// scanLegacyOctalEscape consumes a legacy octal escape (\0-\377) of up
// to 3 octal digits (2 if the first digit is 4-7, so the value never
// exceeds \377 = 0xFF), recording its position via sc.octalPos for a
// parser to reject in strict mode.
func (sc *Scanner) scanLegacyOctalEscape(start token.Position) (rune, bool) {
	maxDigits := 3
	if sc.c >= '4' && sc.c <= '7' {
		maxDigits = 2
	}
	var v rune
	digits := 0
	for digits < maxDigits && unicodetables.IsOctalDigit(sc.c) {
		v = v*8 + hexValue(sc.c)
		sc.advance()
		digits++
	}
	sc.octalPos = start
	return v, true
}
