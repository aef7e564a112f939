package charstream

// UTF16Stream is a Stream over source already decoded into UTF-16 code
// units. Advance and Peek combine surrogate pairs into a single
// supplementary-plane code point; Position reports the UTF-16 code unit
// offset, so a surrogate pair advances Position by 2 even though it
// yields one rune.
type UTF16Stream struct {
	data []uint16
	idx  int
	base int
	pb   pushback
}

// NewUTF16Stream constructs a Stream over UTF-16 code units. Callers
// constructing from raw bytes should use FromUTF16Bytes instead, which
// also strips a byte-order-mark.
func NewUTF16Stream(data []uint16) *UTF16Stream {
	return &UTF16Stream{data: data}
}

// decodeAt returns the code point starting at code-unit index i, and
// the number of code units it occupies (1, or 2 for a valid surrogate
// pair).
func (s *UTF16Stream) decodeAt(i int) (rune, int) {
	u := s.data[i]
	if u >= 0xD800 && u <= 0xDBFF && i+1 < len(s.data) {
		lo := s.data[i+1]
		if lo >= 0xDC00 && lo <= 0xDFFF {
			r := rune(0x10000 + (rune(u)-0xD800)<<10 + (rune(lo) - 0xDC00))
			return r, 2
		}
	}
	return rune(u), 1
}

func (s *UTF16Stream) Peek() rune {
	if r, ok := s.pb.top(); ok {
		return r
	}
	if s.idx >= len(s.data) {
		return EndOfInput
	}
	r, _ := s.decodeAt(s.idx)
	return r
}

func (s *UTF16Stream) Advance() rune {
	if r, ok := s.pb.pop(); ok {
		return r
	}
	if s.idx >= len(s.data) {
		return EndOfInput
	}
	r, width := s.decodeAt(s.idx)
	s.idx += width
	return r
}

// PushBack returns r to the stream. The code unit width it occupies
// (1, or 2 for a supplementary-plane code point) is recomputed from r
// itself so Position stays accurate after the pushed-back value is
// re-consumed.
func (s *UTF16Stream) PushBack(r rune) {
	width := 1
	if r > 0xFFFF {
		width = 2
	}
	s.pb.push(r, width)
}

func (s *UTF16Stream) Position() int {
	return s.base + s.idx - s.pb.unitWidth()
}

func (s *UTF16Stream) Seek(pos int) {
	s.pb.reset()
	s.idx = pos - s.base
}

func (s *UTF16Stream) Rebase(offset int) {
	s.base = offset - (s.idx - s.pb.unitWidth())
}

func (s *UTF16Stream) AdvanceWhile(pred func(rune) bool) int {
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
