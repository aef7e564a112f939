package lexer

import (
	"testing"

	"github.com/cwbudde/jslex/pkg/token"
)

func TestPositionTracksLineAndColumn(t *testing.T) {
	sc := newScanner(t, "var x\nvar y")

	sc.Next() // var
	if loc := sc.Location(); loc.Line != 1 || loc.Column != 1 {
		t.Fatalf("Location() = %+v, want line 1 col 1", loc)
	}
	sc.Next() // x
	if loc := sc.Location(); loc.Line != 1 {
		t.Fatalf("Location() = %+v, want line 1", loc)
	}
	sc.Next() // var (line 2)
	if loc := sc.Location(); loc.Line != 2 || loc.Column != 1 {
		t.Fatalf("Location() = %+v, want line 2 col 1", loc)
	}
	sc.Next() // y
	if loc := sc.Location(); loc.Line != 2 {
		t.Fatalf("Location() = %+v, want line 2", loc)
	}
}

func TestPositionOffsetTracksByteCount(t *testing.T) {
	sc := newScanner(t, "abc def")
	sc.Next()
	if loc := sc.Location(); loc.Offset != 0 {
		t.Fatalf("Location().Offset = %d, want 0", loc.Offset)
	}
	sc.Next()
	if loc := sc.Location(); loc.Offset != 4 {
		t.Fatalf("Location().Offset = %d, want 4", loc.Offset)
	}
}

func TestPeekLocationIsAheadOfLocation(t *testing.T) {
	sc := newScanner(t, "a b")
	sc.Next() // "a"
	loc := sc.Location()
	peek := sc.PeekLocation()
	if peek.Offset <= loc.Offset {
		t.Fatalf("PeekLocation().Offset = %d, want > Location().Offset (%d)", peek.Offset, loc.Offset)
	}
}

func TestEndLocationSpansTheToken(t *testing.T) {
	sc := newScanner(t, "abc def")
	sc.Next() // "abc"
	begin := sc.Location()
	end := sc.EndLocation()
	if begin.Offset != 0 || end.Offset != 3 {
		t.Fatalf("Location/EndLocation = %+v/%+v, want offsets 0/3", begin, end)
	}
	sc.Next() // "def"
	if loc := sc.Location(); loc.Offset != 4 {
		t.Fatalf("Location().Offset = %d, want 4", loc.Offset)
	}
	if end := sc.EndLocation(); end.Offset != 7 {
		t.Fatalf("EndLocation().Offset = %d, want 7", end.Offset)
	}
}

func TestHasLineTerminatorBeforeNext(t *testing.T) {
	sc := newScanner(t, "a\nb c")
	sc.Next() // "a"; lookahead "b" was scanned across the newline
	if !sc.HasLineTerminatorBeforeNext() {
		t.Fatal("HasLineTerminatorBeforeNext() = false, want true")
	}
	sc.Next() // "b"; lookahead "c" has no line terminator before it
	if sc.HasLineTerminatorBeforeNext() {
		t.Fatal("HasLineTerminatorBeforeNext() = true, want false")
	}
}

func TestPositionStringFormat(t *testing.T) {
	p := token.Position{Line: 3, Column: 7, Offset: 40}
	if got := p.String(); got != "3:7" {
		t.Fatalf("String() = %q, want %q", got, "3:7")
	}
}
