package lexer

import (
	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// ScanRegExpPattern re-scans the current token as a RegularExpressionLiteral
// body, starting from the '/' (or "/=") that Next already classified as
// DIV or ASSIGN_DIV. A parser calls this once it has determined from
// grammatical context that a '/' at this position begins a regular
// expression rather than a division operator; seenEqual tells the
// scanner whether the already-emitted token consumed a following '='
// (ASSIGN_DIV) that actually belongs to the pattern body, in which case
// that '=' is scanned as the first body character.
//
// It returns the position of the regex body's closing '/' (the flags,
// if any, immediately follow) and an error if the pattern is
// unterminated or contains a raw line terminator.
func (sc *Scanner) ScanRegExpPattern(seenEqual bool) (token.Position, error) {
	start := sc.current.pos
	sc.stream.Seek(start.Offset + 1) // resume just past the opening '/'
	sc.line = start.Line
	sc.col = start.Column // advance moves it onto the character after '/'
	sc.offset = start.Offset + 1
	sc.advance()

	if seenEqual {
		// The '=' the ASSIGN_DIV token consumed belongs to the pattern;
		// the seek above has just re-read it as the first body
		// character.
		sc.c = '='
	}

	inClass := false
	for {
		switch {
		case sc.c == charstream.EndOfInput || unicodetables.IsLineTerminator(sc.c):
			err := Error{Kind: UnterminatedRegExp, Pos: start, Message: "unterminated regular expression literal"}
			sc.addError(err.Kind, err.Pos, err.Message)
			return sc.currentPos(), err
		case sc.c == '\\':
			sc.advance()
			if sc.c == charstream.EndOfInput || unicodetables.IsLineTerminator(sc.c) {
				err := Error{Kind: UnterminatedRegExp, Pos: start, Message: "unterminated regular expression literal"}
				sc.addError(err.Kind, err.Pos, err.Message)
				return sc.currentPos(), err
			}
			sc.advance()
		case sc.c == '[':
			inClass = true
			sc.advance()
		case sc.c == ']':
			inClass = false
			sc.advance()
		case sc.c == '/' && !inClass:
			end := sc.currentPos()
			sc.advance()
			return end, nil
		default:
			sc.advance()
		}
	}
}

// ScanRegExpFlags consumes the IdentifierPart run immediately following
// a regular expression body (its flags, e.g. "gi") and returns the
// position just past them. It then re-primes the one-token-lookahead
// buffer so Next resumes normal tokenization from there.
func (sc *Scanner) ScanRegExpFlags() token.Position {
	for unicodetables.IsIdentifierPart(sc.c) {
		sc.advance()
	}
	end := sc.currentPos()
	sc.scanInto(&sc.next, sc.nextLit)
	return end
}
