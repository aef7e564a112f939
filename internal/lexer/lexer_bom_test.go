package lexer

import (
	"testing"

	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/pkg/token"
)

func TestUTF8BOMIsStripped(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x")...)
	s, err := charstream.FromUTF8Bytes(data)
	if err != nil {
		t.Fatalf("FromUTF8Bytes: %v", err)
	}
	sc := New(s, token.Flags{})
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "x" {
		t.Fatalf("literal = %q, want %q", got, "x")
	}
	if loc := sc.Location(); loc.Offset != 0 {
		t.Fatalf("Location().Offset = %d, want 0 (BOM must not count toward position)", loc.Offset)
	}
}

func TestUTF16BOMSelectsByteOrder(t *testing.T) {
	// "x" as big-endian UTF-16 with a BOM.
	data := []byte{0xFE, 0xFF, 0x00, 'x'}
	s, err := charstream.FromUTF16Bytes(data)
	if err != nil {
		t.Fatalf("FromUTF16Bytes: %v", err)
	}
	sc := New(s, token.Flags{})
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "x" {
		t.Fatalf("literal = %q, want %q", got, "x")
	}
}

func TestUTF16LittleEndianBOM(t *testing.T) {
	data := []byte{0xFF, 0xFE, 'x', 0x00}
	s, err := charstream.FromUTF16Bytes(data)
	if err != nil {
		t.Fatalf("FromUTF16Bytes: %v", err)
	}
	sc := New(s, token.Flags{})
	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "x" {
		t.Fatalf("literal = %q, want %q", got, "x")
	}
}
