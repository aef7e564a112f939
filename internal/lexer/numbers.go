package lexer

import (
	"github.com/cwbudde/jslex/internal/litbuf"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// scanNumber implements spec.md 4.3.4: decimal, hexadecimal, legacy and
// modern octal, binary, and floating-point literals with an optional
// exponent. 0b/0o syntax is gated by Flags.HarmonyNumericLiterals; a
// legacy octal literal (a 0 followed directly by octal digits, no
// radix prefix) is always accepted but records its position via
// Scanner.octalPos for a parser to reject in strict mode.
func (sc *Scanner) scanNumber(info *tokenInfo, lit *litbuf.Buffer) {
	start := sc.currentPos()

	if sc.c == '0' {
		switch next := sc.peekNext(); {
		case next == 'x' || next == 'X':
			sc.scanRadixNumber(info, lit, start, unicodetables.IsHexDigit, "hexadecimal")
			sc.rejectTrailingIdentifierChars(info, start)
			return
		case (next == 'b' || next == 'B') && sc.flags.HarmonyNumericLiterals:
			sc.scanRadixNumber(info, lit, start, unicodetables.IsBinaryDigit, "binary")
			sc.rejectTrailingIdentifierChars(info, start)
			return
		case (next == 'o' || next == 'O') && sc.flags.HarmonyNumericLiterals:
			sc.scanRadixNumber(info, lit, start, unicodetables.IsOctalDigit, "octal")
			sc.rejectTrailingIdentifierChars(info, start)
			return
		case unicodetables.IsOctalDigit(next):
			sc.scanLegacyOctalOrDecimal(info, lit, start)
			sc.rejectTrailingIdentifierChars(info, start)
			return
		}
	}

	sc.scanDecimalNumber(info, lit)
	sc.rejectTrailingIdentifierChars(info, start)
}

// scanRadixNumber consumes "0" + prefix letter + a run of digits valid
// in the given base.
func (sc *Scanner) scanRadixNumber(info *tokenInfo, lit *litbuf.Buffer, start token.Position, isDigit func(rune) bool, kind string) {
	lit.Add(sc.c) // '0'
	sc.advance()
	lit.Add(sc.c) // prefix letter
	sc.advance()

	digits := 0
	for isDigit(sc.c) {
		lit.Add(sc.c)
		sc.advance()
		digits++
	}
	if digits == 0 {
		sc.addError(InvalidNumericLiteral, start, "missing digits in "+kind+" literal")
		info.typ = token.ILLEGAL
	} else {
		info.typ = token.NUMBER
	}
	info.text = lit.String()
	info.oneByte = lit.IsOneByte()
}

// scanLegacyOctalOrDecimal handles a literal starting "0" followed by a
// digit: if every digit that follows is octal (0-7), it is a legacy
// octal literal (its position recorded via sc.octalPos); if an 8 or 9
// appears, or a '.'/'e' follows, ECMAScript requires it be treated as
// a plain (non-octal) decimal NumericLiteral instead.
func (sc *Scanner) scanLegacyOctalOrDecimal(info *tokenInfo, lit *litbuf.Buffer, start token.Position) {
	lit.Add(sc.c) // '0'
	sc.advance()

	allOctal := true
	for unicodetables.IsDecimalDigit(sc.c) {
		if !unicodetables.IsOctalDigit(sc.c) {
			allOctal = false
		}
		lit.Add(sc.c)
		sc.advance()
	}

	if sc.c == '.' || sc.c == 'e' || sc.c == 'E' {
		sc.scanFractionAndExponent(lit)
		info.typ = token.NUMBER
		info.text = lit.String()
		info.oneByte = lit.IsOneByte()
		return
	}

	if allOctal {
		sc.octalPos = start
	}
	info.typ = token.NUMBER
	info.text = lit.String()
	info.oneByte = lit.IsOneByte()
}

// scanDecimalNumber consumes an integer part (possibly empty, when
// called with sc.c == '.'), an optional fractional part, and an
// optional exponent.
func (sc *Scanner) scanDecimalNumber(info *tokenInfo, lit *litbuf.Buffer) {
	for unicodetables.IsDecimalDigit(sc.c) {
		lit.Add(sc.c)
		sc.advance()
	}
	if sc.c == '.' {
		sc.scanFractionAndExponent(lit)
	} else if sc.c == 'e' || sc.c == 'E' {
		sc.scanExponent(lit)
	}
	info.typ = token.NUMBER
	info.text = lit.String()
	info.oneByte = lit.IsOneByte()
}

// scanFractionAndExponent consumes a '.' followed by fraction digits
// and then delegates to scanExponent for a trailing e/E part.
func (sc *Scanner) scanFractionAndExponent(lit *litbuf.Buffer) {
	lit.Add(sc.c) // '.'
	sc.advance()
	for unicodetables.IsDecimalDigit(sc.c) {
		lit.Add(sc.c)
		sc.advance()
	}
	if sc.c == 'e' || sc.c == 'E' {
		sc.scanExponent(lit)
	}
}

// scanExponent consumes an 'e'/'E', an optional sign, and a mandatory
// run of decimal digits.
func (sc *Scanner) scanExponent(lit *litbuf.Buffer) {
	start := sc.currentPos()
	lit.Add(sc.c) // e/E
	sc.advance()
	if sc.c == '+' || sc.c == '-' {
		lit.Add(sc.c)
		sc.advance()
	}
	digits := 0
	for unicodetables.IsDecimalDigit(sc.c) {
		lit.Add(sc.c)
		sc.advance()
		digits++
	}
	if digits == 0 {
		sc.addError(InvalidNumericLiteral, start, "missing digits in exponent")
	}
}

// rejectTrailingIdentifierChars flags a NumericLiteral immediately
// followed by an identifier-start character or stray digit invalid in
// its radix (e.g. "3abc", "0x1g") as malformed, per ECMA-262's
// requirement that a NumericLiteral not be immediately followed by an
// IdentifierStart or another DecimalDigit.
func (sc *Scanner) rejectTrailingIdentifierChars(info *tokenInfo, start token.Position) {
	if unicodetables.IsIdentifierStart(sc.c) || unicodetables.IsDecimalDigit(sc.c) {
		sc.addError(InvalidNumericLiteral, start, "identifier starts immediately after numeric literal")
		info.typ = token.ILLEGAL
		for unicodetables.IsIdentifierPart(sc.c) {
			sc.advance()
		}
	}
}
