package charstream

import "unicode/utf8"

// UTF8Stream is a Stream over raw UTF-8 encoded source bytes. Code
// points are decoded on demand; Position reports the byte offset into
// the original buffer, since bytes are UTF-8's own code unit.
type UTF8Stream struct {
	data []byte
	pos  int
	base int
	pb   pushback
	// advanced records the byte-width of each of the last few Advance
	// calls, most recent last, so PushBack can recover the exact width
	// to undo even for a malformed single byte whose U+FFFD replacement
	// would otherwise look like a 3-byte-wide rune.
	advanced []int
}

// NewUTF8Stream constructs a Stream over raw UTF-8 bytes. Callers
// should strip a leading byte-order-mark first, or use FromUTF8Bytes
// which does so automatically.
func NewUTF8Stream(data []byte) *UTF8Stream {
	return &UTF8Stream{data: data}
}

func (s *UTF8Stream) decodeAt(i int) (rune, int) {
	r, size := utf8.DecodeRune(s.data[i:])
	if r == utf8.RuneError && size <= 1 {
		// Invalid byte: surface it as U+FFFD covering exactly that one
		// byte, so the scanner reports ILLEGAL at the precise offset
		// instead of swallowing bytes.
		if i < len(s.data) {
			return utf8.RuneError, 1
		}
		return EndOfInput, 0
	}
	return r, size
}

func (s *UTF8Stream) Peek() rune {
	if r, ok := s.pb.top(); ok {
		return r
	}
	if s.pos >= len(s.data) {
		return EndOfInput
	}
	r, _ := s.decodeAt(s.pos)
	return r
}

func (s *UTF8Stream) Advance() rune {
	if r, ok := s.pb.pop(); ok {
		return r
	}
	if s.pos >= len(s.data) {
		return EndOfInput
	}
	r, size := s.decodeAt(s.pos)
	s.pos += size
	s.advanced = append(s.advanced, size)
	if len(s.advanced) > 3 {
		copy(s.advanced, s.advanced[1:])
		s.advanced = s.advanced[:3]
	}
	return r
}

func (s *UTF8Stream) PushBack(r rune) {
	width := 1
	if n := len(s.advanced); n > 0 {
		width = s.advanced[n-1]
		s.advanced = s.advanced[:n-1]
	}
	s.pb.push(r, width)
}

func (s *UTF8Stream) Position() int {
	return s.base + s.pos - s.pb.unitWidth()
}

func (s *UTF8Stream) Seek(pos int) {
	s.pb.reset()
	s.pos = pos - s.base
	s.advanced = s.advanced[:0]
}

func (s *UTF8Stream) Rebase(offset int) {
	s.base = offset - (s.pos - s.pb.unitWidth())
}

func (s *UTF8Stream) AdvanceWhile(pred func(rune) bool) int {
	n := 0
	for {
		r := s.Peek()
		if r == EndOfInput || !pred(r) {
			return n
		}
		s.Advance()
		n++
	}
}
