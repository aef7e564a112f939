// Package charstream implements the scanner's character source
// abstraction: a uniform Peek/Advance/PushBack/Position/Seek contract
// over Latin-1, UTF-16, and UTF-8 source buffers. Every Stream
// implementation exposes decoded Unicode code points (runes) through
// Advance/Peek, while Position reports an offset in the code units of
// the stream's own backing encoding — bytes for Latin-1 and UTF-8,
// UTF-16 code units for UTF-16 — so a position captured from one Stream
// is only ever replayed against that same Stream via Seek, never
// reinterpreted as a raw pointer into another buffer.
package charstream

// EndOfInput is returned by Peek and Advance once the stream is
// exhausted. It is not a valid Unicode code point (it is negative), so
// it can never collide with real source content.
const EndOfInput rune = -1

// Stream is the character source the scanner consumes. All positions
// are relative offsets (code units of the stream's own encoding) rather
// than pointers, so they remain valid across any internal buffer
// relocation the implementation performs.
type Stream interface {
	// Peek returns the next code point without consuming it.
	Peek() rune

	// Advance consumes and returns the next code point, or EndOfInput.
	Advance() rune

	// PushBack returns r to the front of the stream so the next
	// Peek/Advance sees it again. At most 3 code units may be pushed
	// back without an intervening Advance; pushing a 4th panics, since
	// no caller in this scanner's design needs more lookahead than
	// that (see Scanner's one-token-lookahead architecture).
	PushBack(r rune)

	// Position returns the stream's current offset, in code units of
	// its own backing encoding, measured from the start of input.
	Position() int

	// Seek repositions the stream to a previously observed Position,
	// discarding any pending pushed-back code units.
	Seek(pos int)

	// Rebase shifts the origin Position reports from without moving the
	// read cursor: after Rebase(offset), Position() reports offset plus
	// however many code units have been consumed since. It lets a
	// caller splice together Positions across a stream that is fed in
	// successive chunks of the same logical source, each chunk starting
	// its own Stream at code unit 0.
	Rebase(offset int)

	// AdvanceWhile consumes code points while pred returns true (or
	// until end of input) and returns the number consumed. It is a
	// batch form of repeated Peek/Advance/pred/Advance used by runs of
	// identifier or whitespace characters, avoiding a virtual dispatch
	// per character on the hot path.
	AdvanceWhile(pred func(rune) bool) int
}

// pushback is a small LIFO embeddable by every Stream implementation.
// Its capacity of 3 matches the scanner's maximum lookahead requirement
// (two-character operators plus one unit of backtrack). Alongside each
// pushed-back code point it records how many code units of the stream's
// backing encoding that code point occupies, so Position can be
// recomputed exactly even when a pushed-back rune came from a
// surrogate pair or a multi-byte UTF-8 sequence.
type pushback struct {
	runes  [3]rune
	widths [3]int
	n      int
}

func (p *pushback) push(r rune, width int) {
	if p.n >= len(p.runes) {
		panic("charstream: push back buffer exhausted (more than 3 pending code units)")
	}
	p.runes[p.n] = r
	p.widths[p.n] = width
	p.n++
}

// top returns the most recently pushed-back code point without removing
// it, and whether one was available.
func (p *pushback) top() (rune, bool) {
	if p.n == 0 {
		return 0, false
	}
	return p.runes[p.n-1], true
}

// pop removes and returns the most recently pushed-back code point.
func (p *pushback) pop() (rune, bool) {
	if p.n == 0 {
		return 0, false
	}
	p.n--
	return p.runes[p.n], true
}

func (p *pushback) len() int {
	return p.n
}

// unitWidth returns the sum of backing-encoding code units occupied by
// all currently pending pushed-back code points.
func (p *pushback) unitWidth() int {
	w := 0
	for i := 0; i < p.n; i++ {
		w += p.widths[i]
	}
	return w
}

func (p *pushback) reset() {
	p.n = 0
}
