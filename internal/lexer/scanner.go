// Package lexer implements the tokenizer: a one-token-lookahead scanner
// over a charstream.Stream that produces the token vocabulary defined
// in pkg/token. It is the direct descendant of go-dws's
// internal/lexer.Lexer: the same dispatch-table-of-handlers shape, the
// same flags-threaded constructor, the same accumulated-errors (never
// panics) policy — generalized from a single UTF-8 rune scan over
// Pascal lexemes to the multi-encoding Stream abstraction and the
// ECMAScript token set.
package lexer

import (
	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/litbuf"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// Flags controls which harmony-era and contextual keywords/literal
// syntaxes the scanner recognizes; it is pkg/token's Flags type,
// threaded through from LookupIdent down to the number scanner.
type Flags = token.Flags

// Literal is the decoded payload of the current token: its text (always
// a Go/UTF-8 string regardless of source encoding) and whether the
// internal litbuf.Buffer that produced it stayed in one-byte (Latin-1)
// representation.
type Literal struct {
	Text    string
	OneByte bool
}

// tokenInfo is the scanner's internal record of one scanned token,
// richer than a token.Token value: it also
// carries whether the literal required escape processing and which
// literal buffer backs it.
type tokenInfo struct {
	typ        token.TokenType
	pos        token.Position
	end        token.Position
	text       string
	oneByte    bool
	hasEscapes bool
	octalPos   token.Position
}

// Scanner is the tokenizer. It holds two ping-ponged literal buffers
// (litbuf.Buffer) so a freshly scanned "next" token can accumulate its
// literal into the buffer the now-stale "current" token no longer
// needs, without copying.
type Scanner struct {
	stream charstream.Stream
	flags  Flags

	c      rune // lookahead: the code point about to be consumed
	line   int
	col    int
	offset int

	errors []Error

	litBufA, litBufB litbuf.Buffer
	curLit, nextLit  *litbuf.Buffer

	current tokenInfo
	next    tokenInfo

	lineTerminatorBeforeNext   bool
	multilineCommentBeforeNext bool

	octalPos     token.Position
	octalMessage string

	// atLineStart tracks whether nothing but whitespace/comments has
	// been seen since the start of input or the last line terminator,
	// which gates recognition of the Annex B "-->" legacy comment form
	// (only valid at the start of a line).
	atLineStart bool
}

// New constructs a Scanner over s and immediately scans the first token
// of input into the lookahead slot, matching the one-token-lookahead
// contract: the first call to Next returns the very first token of the
// source.
func New(s charstream.Stream, flags Flags) *Scanner {
	sc := &Scanner{stream: s, flags: flags, line: 1, col: 0, atLineStart: true}
	sc.curLit = &sc.litBufA
	sc.nextLit = &sc.litBufB
	sc.advance()
	sc.scanInto(&sc.next, sc.nextLit)
	return sc
}

// Next consumes the current lookahead token, makes it current, scans a
// fresh lookahead token, and returns the newly current token's type.
func (sc *Scanner) Next() token.TokenType {
	sc.current = sc.next
	sc.curLit, sc.nextLit = sc.nextLit, sc.curLit
	sc.scanInto(&sc.next, sc.nextLit)
	return sc.current.typ
}

// Peek reports the type of the token that the next call to Next will
// return, without consuming anything.
func (sc *Scanner) Peek() token.TokenType {
	return sc.next.typ
}

// Location returns the position of the current token (the one last
// returned by Next).
func (sc *Scanner) Location() token.Position {
	return sc.current.pos
}

// EndLocation returns the position immediately after the current
// token's last source character — the real source-span end, tracked
// independently of the token's (possibly escape-decoded) literal text
// so it is exact for STRING/TEMPLATE_*/escaped-identifier tokens, per
// spec.md §3.2's Location{begin,end}.
func (sc *Scanner) EndLocation() token.Position {
	return sc.current.end
}

// PeekLocation returns the position of the lookahead token.
func (sc *Scanner) PeekLocation() token.Position {
	return sc.next.pos
}

// Literal returns the decoded literal payload of the current token.
func (sc *Scanner) Literal() Literal {
	return Literal{Text: sc.current.text, OneByte: sc.current.oneByte}
}

// LiteralIsOneByte reports whether the current token's literal buffer
// stayed in one-byte (Latin-1) representation.
func (sc *Scanner) LiteralIsOneByte() bool {
	return sc.current.oneByte
}

// HasLineTerminatorBeforeNext reports whether a line terminator appeared
// in the source between the current token and the lookahead token —
// the signal a parser needs for automatic semicolon insertion.
func (sc *Scanner) HasLineTerminatorBeforeNext() bool {
	return sc.lineTerminatorBeforeNext
}

// HasMultilineCommentBeforeNext reports whether a comment spanning at
// least one line terminator was skipped between the current and
// lookahead tokens.
func (sc *Scanner) HasMultilineCommentBeforeNext() bool {
	return sc.multilineCommentBeforeNext
}

// OctalPosition returns the position of the legacy octal escape or
// literal encountered while scanning the current token, or the zero
// Position (IsValid() == false) if none was seen. A parser operating in
// strict mode uses this to reject the token. It is recorded per token
// (not as transient scanner state) specifically so that pre-scanning
// the one-token lookahead can never clobber it before the parser reads
// it back.
func (sc *Scanner) OctalPosition() token.Position {
	return sc.current.octalPos
}

// Errors returns every diagnostic accumulated since construction, in
// the order encountered. Scanning never aborts on error: a malformed
// token is reported as ILLEGAL and scanning continues from just past
// the offending span.
func (sc *Scanner) Errors() []Error {
	return sc.errors
}

func (sc *Scanner) addError(kind ErrorKind, pos token.Position, message string) {
	sc.errors = append(sc.errors, Error{Kind: kind, Pos: pos, Message: message})
}

// SeekForward repositions the scanner to resume scanning at the given
// stream offset, discarding whatever lookahead had been pre-scanned.
// line and col are best-effort: since an offset alone does not carry
// line/column information, position tracking restarts from line 1 at
// the sought offset. Only meaningful for pos == 0 (resetting a freshly
// decoded stream to its start) unless the caller also tracks line/column
// out of band; there is no support for splicing Positions across two
// differently-truncated buffers of the same logical source.
func (sc *Scanner) SeekForward(pos int) {
	sc.stream.Seek(pos)
	sc.line = 1
	sc.col = 0
	sc.offset = pos
	sc.errors = nil
	sc.octalPos = token.Position{}
	sc.atLineStart = true
	sc.advance()
	sc.scanInto(&sc.next, sc.nextLit)
}

// advance pulls the next code point from the stream into sc.c, updating
// line/column/offset bookkeeping to describe the position of the
// newly-current sc.c (mirroring go-dws's readChar: column/line describe
// whatever character is about to be consumed, not the one just left).
func (sc *Scanner) advance() rune {
	sc.offset = sc.stream.Position()
	r := sc.stream.Advance()
	sc.c = r
	if r == charstream.EndOfInput {
		return r
	}
	if unicodetables.IsLineTerminator(r) {
		sc.line++
		sc.col = 0
	} else {
		sc.col++
	}
	return r
}

// peekNext returns the code point after sc.c without consuming it.
func (sc *Scanner) peekNext() rune {
	return sc.stream.Peek()
}

// currentPos returns the position of sc.c (the next character to be
// consumed), used as the start position of whatever token scanning is
// about to begin.
func (sc *Scanner) currentPos() token.Position {
	return token.Position{Line: sc.line, Column: sc.col, Offset: sc.offset}
}

// scanInto runs the full scan() algorithm for one token, writing the
// result into info and resetting/filling lit as needed. It also
// resets and recomputes lineTerminatorBeforeNext/multilineCommentBeforeNext
// to describe the whitespace/comments skipped immediately before this
// token — the gap between whatever token preceded it and this one.
func (sc *Scanner) scanInto(info *tokenInfo, lit *litbuf.Buffer) {
	lit.Reset()
	sc.octalPos = token.Position{}
	info.octalPos = token.Position{}

	sc.lineTerminatorBeforeNext = false
	sc.multilineCommentBeforeNext = false
	if err := sc.skipWhitespaceAndComments(); err != nil {
		info.typ = token.ILLEGAL
		// The only error this can be is an unterminated block comment,
		// whose Pos already names the comment's opening "/*", not
		// wherever scanning gave up (EOF). Fall back to the current
		// position only for an error shape this package didn't produce.
		if scanErr, ok := err.(Error); ok {
			info.pos = scanErr.Pos
		} else {
			info.pos = sc.currentPos()
		}
		info.end = sc.currentPos()
		info.text = err.Error()
		info.oneByte = true
		return
	}

	start := sc.currentPos()
	info.pos = start
	sc.atLineStart = false

	if sc.c == charstream.EndOfInput {
		info.typ = token.EOS
		info.end = start
		info.text = ""
		info.oneByte = true
		return
	}

	switch {
	case unicodetables.IsIdentifierStart(sc.c) || sc.c == '\\':
		sc.scanIdentifierOrKeyword(info, lit)
	case unicodetables.IsDecimalDigit(sc.c):
		sc.scanNumber(info, lit)
		info.octalPos = sc.octalPos
	case sc.c == '.' && unicodetables.IsDecimalDigit(sc.peekNext()):
		sc.scanNumber(info, lit)
		info.octalPos = sc.octalPos
	case sc.c == '"' || sc.c == '\'':
		sc.scanString(info, lit)
		info.octalPos = sc.octalPos
	case sc.c == '`':
		sc.scanTemplate(info, lit, true)
		info.octalPos = sc.octalPos
	default:
		sc.scanPunctuation(info, lit)
	}
	// Every branch above leaves sc.c positioned at the first character
	// past the token just scanned, so this single read of currentPos
	// captures the real source-span end for every token class — no need
	// to duplicate it inside each scan function.
	info.end = sc.currentPos()
}
