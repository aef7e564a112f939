package lexer

import (
	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/litbuf"
	"github.com/cwbudde/jslex/internal/unicodetables"
	"github.com/cwbudde/jslex/pkg/token"
)

// tokenHandler scans one punctuation/operator token starting at sc.c,
// filling info. sc.c is guaranteed to be the handler's own trigger rune
// on entry. This is the direct generalization of go-dws's
// internal/lexer.tokenHandler dispatch table, keyed here by the
// ECMAScript punctuator set instead of Pascal operators.
type tokenHandler func(sc *Scanner, info *tokenInfo)

var tokenHandlers = map[rune]tokenHandler{
	'(': simpleToken(token.LPAREN),
	')': simpleToken(token.RPAREN),
	'[': simpleToken(token.LBRACK),
	']': simpleToken(token.RBRACK),
	'{': simpleToken(token.LBRACE),
	'}': simpleToken(token.RBRACE),
	';': simpleToken(token.SEMICOLON),
	',': simpleToken(token.COMMA),
	':': simpleToken(token.COLON),
	'~': simpleToken(token.BIT_NOT),

	'.': (*Scanner).handlePeriod,
	'?': (*Scanner).handleQuestion,
	'+': (*Scanner).handlePlus,
	'-': (*Scanner).handleMinus,
	'*': (*Scanner).handleStar,
	'/': (*Scanner).handleSlash,
	'%': (*Scanner).handlePercent,
	'=': (*Scanner).handleEquals,
	'!': (*Scanner).handleBang,
	'<': (*Scanner).handleLess,
	'>': (*Scanner).handleGreater,
	'&': (*Scanner).handleAmp,
	'|': (*Scanner).handlePipe,
	'^': (*Scanner).handleCaret,
}

func simpleToken(tt token.TokenType) tokenHandler {
	return func(sc *Scanner, info *tokenInfo) {
		info.text = string(sc.c)
		sc.advance()
		info.typ = tt
		info.oneByte = true
	}
}

// scanPunctuation dispatches sc.c to its handler, or records a
// StrayCharacter error and emits ILLEGAL if sc.c starts nothing
// recognized.
func (sc *Scanner) scanPunctuation(info *tokenInfo, lit *litbuf.Buffer) {
	if h, ok := tokenHandlers[sc.c]; ok {
		h(sc, info)
		return
	}
	bad := sc.c
	pos := sc.currentPos()
	sc.addError(StrayCharacter, pos, "unexpected character '"+string(bad)+"'")
	info.typ = token.ILLEGAL
	info.text = string(bad)
	info.oneByte = bad < 256
	sc.advance()
}

// match2 consumes sc.c's immediate follower if it equals want, and
// returns whether it did — the maximal-munch building block every
// multi-character operator handler below is built from.
func (sc *Scanner) match2(want rune) bool {
	if sc.peekNext() == want {
		sc.advance()
		return true
	}
	return false
}

func (sc *Scanner) handlePeriod(info *tokenInfo) {
	sc.advance()
	info.typ = token.PERIOD
	info.text = "."
	info.oneByte = true
}

func (sc *Scanner) handleQuestion(info *tokenInfo) {
	sc.advance()
	info.typ = token.CONDITIONAL
	info.text = "?"
	info.oneByte = true
}

func (sc *Scanner) handlePlus(info *tokenInfo) {
	if sc.match2('+') {
		sc.advance()
		info.typ, info.text = token.INC, "++"
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_ADD, "+="
	} else {
		sc.advance()
		info.typ, info.text = token.ADD, "+"
	}
	info.oneByte = true
}

func (sc *Scanner) handleMinus(info *tokenInfo) {
	if sc.match2('-') {
		sc.advance()
		info.typ, info.text = token.DEC, "--"
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_SUB, "-="
	} else {
		sc.advance()
		info.typ, info.text = token.SUB, "-"
	}
	info.oneByte = true
}

func (sc *Scanner) handleStar(info *tokenInfo) {
	if sc.match2('*') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.ASSIGN_EXP, "**="
		} else {
			sc.advance()
			info.typ, info.text = token.EXP, "**"
		}
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_MUL, "*="
	} else {
		sc.advance()
		info.typ, info.text = token.MUL, "*"
	}
	info.oneByte = true
}

// handleSlash only ever produces DIV/ASSIGN_DIV: comment-starting slash
// sequences are consumed by skipWhitespaceAndComments before
// scanPunctuation ever sees sc.c == '/'. Resolving '/' as the start of
// a regular expression instead of division is the parser's job — it
// calls ScanRegExpPattern to re-scan from this token's position once it
// knows an expression, not a division, is expected here.
func (sc *Scanner) handleSlash(info *tokenInfo) {
	if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_DIV, "/="
	} else {
		sc.advance()
		info.typ, info.text = token.DIV, "/"
	}
	info.oneByte = true
}

func (sc *Scanner) handlePercent(info *tokenInfo) {
	if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_MOD, "%="
	} else {
		sc.advance()
		info.typ, info.text = token.MOD, "%"
	}
	info.oneByte = true
}

func (sc *Scanner) handleEquals(info *tokenInfo) {
	if sc.match2('=') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.EQ_STRICT, "==="
		} else {
			sc.advance()
			info.typ, info.text = token.EQ, "=="
		}
	} else if sc.match2('>') {
		sc.advance()
		info.typ, info.text = token.ARROW, "=>"
	} else {
		sc.advance()
		info.typ, info.text = token.ASSIGN, "="
	}
	info.oneByte = true
}

func (sc *Scanner) handleBang(info *tokenInfo) {
	if sc.match2('=') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.NE_STRICT, "!=="
		} else {
			sc.advance()
			info.typ, info.text = token.NE, "!="
		}
	} else {
		sc.advance()
		info.typ, info.text = token.NOT, "!"
	}
	info.oneByte = true
}

func (sc *Scanner) handleLess(info *tokenInfo) {
	if sc.match2('<') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.ASSIGN_SHL, "<<="
		} else {
			sc.advance()
			info.typ, info.text = token.SHL, "<<"
		}
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.LTE, "<="
	} else {
		sc.advance()
		info.typ, info.text = token.LT, "<"
	}
	info.oneByte = true
}

func (sc *Scanner) handleGreater(info *tokenInfo) {
	if sc.match2('>') {
		if sc.match2('>') {
			if sc.match2('=') {
				sc.advance()
				info.typ, info.text = token.ASSIGN_SHR, ">>>="
			} else {
				sc.advance()
				info.typ, info.text = token.SHR, ">>>"
			}
		} else if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.ASSIGN_SAR, ">>="
		} else {
			sc.advance()
			info.typ, info.text = token.SAR, ">>"
		}
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.GTE, ">="
	} else {
		sc.advance()
		info.typ, info.text = token.GT, ">"
	}
	info.oneByte = true
}

func (sc *Scanner) handleAmp(info *tokenInfo) {
	if sc.match2('&') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.ASSIGN_AND, "&&="
		} else {
			sc.advance()
			info.typ, info.text = token.AND, "&&"
		}
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_BIT_AND, "&="
	} else {
		sc.advance()
		info.typ, info.text = token.BIT_AND, "&"
	}
	info.oneByte = true
}

func (sc *Scanner) handlePipe(info *tokenInfo) {
	if sc.match2('|') {
		if sc.match2('=') {
			sc.advance()
			info.typ, info.text = token.ASSIGN_OR, "||="
		} else {
			sc.advance()
			info.typ, info.text = token.OR, "||"
		}
	} else if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_BIT_OR, "|="
	} else {
		sc.advance()
		info.typ, info.text = token.BIT_OR, "|"
	}
	info.oneByte = true
}

func (sc *Scanner) handleCaret(info *tokenInfo) {
	if sc.match2('=') {
		sc.advance()
		info.typ, info.text = token.ASSIGN_BIT_XOR, "^="
	} else {
		sc.advance()
		info.typ, info.text = token.BIT_XOR, "^"
	}
	info.oneByte = true
}

// skipWhitespaceAndComments advances past any run of whitespace, line
// terminators, and comments (// line, /* block */, and the Annex B
// legacy <!-- / --> single-line forms), setting
// lineTerminatorBeforeNext/multilineCommentBeforeNext as it goes. It
// returns an error only for an unterminated block comment.
func (sc *Scanner) skipWhitespaceAndComments() error {
	for {
		switch {
		case sc.c == charstream.EndOfInput:
			return nil
		case unicodetables.IsLineTerminator(sc.c):
			sc.lineTerminatorBeforeNext = true
			sc.atLineStart = true
			sc.advance()
		case unicodetables.IsWhiteSpace(sc.c):
			// Batch-consume the rest of the run in one pass (the
			// character stream's AdvanceUntil-style fast path, spec.md
			// §9/SUPPLEMENTED FEATURES) rather than one Advance per
			// space character; safe because whitespace never includes
			// a line terminator, so a flat column increment is exact.
			n := sc.stream.AdvanceWhile(unicodetables.IsWhiteSpace)
			sc.col += n
			sc.advance()
		case sc.c == '/' && sc.peekNext() == '/':
			sc.skipLineComment()
			sc.atLineStart = false
		case sc.c == '/' && sc.peekNext() == '*':
			if err := sc.skipBlockComment(); err != nil {
				return err
			}
			sc.atLineStart = false
		case sc.c == '<' && sc.matchAhead("!--"):
			sc.skipLineComment()
			sc.atLineStart = false
		case sc.c == '-' && sc.atLineStart && sc.matchAhead("->"):
			sc.skipLineComment()
			sc.atLineStart = false
		default:
			return nil
		}
	}
}

// matchAhead reports whether the code points immediately following
// sc.c spell out rest, without consuming them either way. rest must be
// ASCII and no longer than 3 runes (the stream's pushback bound).
func (sc *Scanner) matchAhead(rest string) bool {
	consumed := make([]rune, 0, len(rest))
	ok := true
	for _, want := range rest {
		r := sc.stream.Peek()
		if r != want {
			ok = false
			break
		}
		sc.stream.Advance()
		consumed = append(consumed, r)
	}
	for i := len(consumed) - 1; i >= 0; i-- {
		sc.stream.PushBack(consumed[i])
	}
	return ok && len(consumed) == len([]rune(rest))
}

func (sc *Scanner) skipLineComment() {
	for sc.c != charstream.EndOfInput && !unicodetables.IsLineTerminator(sc.c) {
		sc.advance()
	}
}

func (sc *Scanner) skipBlockComment() error {
	start := sc.currentPos()
	sc.advance() // consume '*'
	sc.advance()
	for {
		if sc.c == charstream.EndOfInput {
			sc.addError(UnterminatedComment, start, "unterminated block comment")
			return Error{Kind: UnterminatedComment, Pos: start, Message: "unterminated block comment"}
		}
		if unicodetables.IsLineTerminator(sc.c) {
			sc.multilineCommentBeforeNext = true
			sc.lineTerminatorBeforeNext = true
		}
		if sc.c == '*' && sc.peekNext() == '/' {
			sc.advance()
			sc.advance()
			return nil
		}
		sc.advance()
	}
}
