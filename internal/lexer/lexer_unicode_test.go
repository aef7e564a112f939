package lexer

import (
	"testing"

	"github.com/cwbudde/jslex/pkg/token"
)

func TestUnicodeIdentifierLetters(t *testing.T) {
	for _, src := range []string{"café", "Ωmega", "変数"} {
		sc := newScanner(t, src)
		if typ := sc.Next(); typ != token.IDENTIFIER {
			t.Fatalf("%q: type = %s, want IDENTIFIER", src, typ)
		}
		if got := sc.Literal().Text; got != src {
			t.Fatalf("%q: literal = %q, want %q", src, got, src)
		}
	}
}

func TestUnicodeLiteralPromotesToTwoByte(t *testing.T) {
	sc := newScanner(t, "Ωmega")
	sc.Next()
	if sc.LiteralIsOneByte() {
		t.Fatal("LiteralIsOneByte() = true, want false: Ω (U+03A9) is >= 256, past litbuf's one-byte fast path boundary")
	}
}

func TestUnicodeLatin1RangeLiteralStaysOneByte(t *testing.T) {
	// é is U+00E9 = 233, still within Latin-1's one-byte range even
	// though it is non-ASCII.
	sc := newScanner(t, "café")
	sc.Next()
	if !sc.LiteralIsOneByte() {
		t.Fatal("LiteralIsOneByte() = false, want true: every code point in café fits in one byte")
	}
}

func TestUnicodeSupplementaryPlaneIdentifierPart(t *testing.T) {
	// U+1F600 is not a valid identifier character; it should end the
	// identifier and surface as a stray character afterward.
	sc := newScanner(t, "x😀")
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "x" {
		t.Fatalf("literal = %q, want %q", got, "x")
	}
}

func TestWhitespaceUnicodeSeparator(t *testing.T) {
	// U+00A0 NO-BREAK SPACE is Zs, a valid whitespace separator.
	sc := newScanner(t, "a b")
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "a" {
		t.Fatalf("literal = %q, want %q", got, "a")
	}
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "b" {
		t.Fatalf("literal = %q, want %q", got, "b")
	}
}
