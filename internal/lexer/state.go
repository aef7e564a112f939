package lexer

// State is an opaque snapshot of a Scanner's position suitable for
// speculative parsing: save it before trying a grammar production that
// might not match, and restore it to back out with no side effects
// other than whatever diagnostics were already accumulated in errors
// (matching go-dws's lexer, accumulated errors are never rolled back by
// a restore — a parser that backtracks past a genuine lexical error
// still wants to see it reported once).
//
// octalPos is not part of this snapshot: it is transient scratch state
// live only during a single scanInto call, already folded into
// current.octalPos/next.octalPos by the time any caller could observe
// it, so there is nothing for a save/restore to preserve.
type State struct {
	streamPos int

	c      rune
	line   int
	col    int
	offset int

	current tokenInfo
	next    tokenInfo

	lineTerminatorBeforeNext   bool
	multilineCommentBeforeNext bool
	atLineStart                bool
}

// SaveState captures everything needed to resume scanning from exactly
// where the Scanner is now, including its one-token lookahead.
func (sc *Scanner) SaveState() State {
	return State{
		streamPos:                  sc.stream.Position(),
		c:                          sc.c,
		line:                       sc.line,
		col:                        sc.col,
		offset:                     sc.offset,
		current:                    sc.current,
		next:                       sc.next,
		lineTerminatorBeforeNext:   sc.lineTerminatorBeforeNext,
		multilineCommentBeforeNext: sc.multilineCommentBeforeNext,
		atLineStart:                sc.atLineStart,
	}
}

// RestoreState returns the Scanner to a previously saved State. The
// underlying Stream is repositioned via Seek, discarding any pushed-back
// code units from scanning that happened after the save.
func (sc *Scanner) RestoreState(s State) {
	sc.stream.Seek(s.streamPos)
	sc.c = s.c
	sc.line = s.line
	sc.col = s.col
	sc.offset = s.offset
	sc.current = s.current
	sc.next = s.next
	sc.lineTerminatorBeforeNext = s.lineTerminatorBeforeNext
	sc.multilineCommentBeforeNext = s.multilineCommentBeforeNext
	sc.atLineStart = s.atLineStart
}
