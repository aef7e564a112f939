package lexer

import (
	"testing"

	"github.com/cwbudde/jslex/pkg/token"
)

func TestStringLiteralsBasic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`""`, ""},
		{`"it's"`, "it's"},
		{`'she said "hi"'`, `she said "hi"`},
	}
	for _, tt := range tests {
		sc := newScanner(t, tt.src)
		if typ := sc.Next(); typ != token.STRING {
			t.Fatalf("%q: type = %s, want STRING", tt.src, typ)
		}
		if got := sc.Literal().Text; got != tt.want {
			t.Fatalf("%q: literal = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestStringLiteralsEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"\n"`, "\n"},
		{`"\t"`, "\t"},
		{`"\\"`, "\\"},
		{`"\""`, "\""},
		{`"\x41"`, "A"},
		{"\"\x5cu0041\"", "A"},
		{`"\u{1F600}"`, "😀"},
		{`"\q"`, "q"}, // IdentityEscape
	}
	for _, tt := range tests {
		sc := newScanner(t, tt.src)
		if typ := sc.Next(); typ != token.STRING {
			t.Fatalf("%q: type = %s, want STRING", tt.src, typ)
		}
		if got := sc.Literal().Text; got != tt.want {
			t.Fatalf("%q: literal = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestStringLiteralsLineContinuation(t *testing.T) {
	sc := newScanner(t, "\"a\\\nb\"")
	if typ := sc.Next(); typ != token.STRING {
		t.Fatalf("type = %s, want STRING", typ)
	}
	if got := sc.Literal().Text; got != "ab" {
		t.Fatalf("literal = %q, want %q", got, "ab")
	}
}

func TestStringLiteralsLegacyOctalEscape(t *testing.T) {
	sc := newScanner(t, `"\101"`) // octal 101 = 'A'
	if typ := sc.Next(); typ != token.STRING {
		t.Fatalf("type = %s, want STRING", typ)
	}
	if got := sc.Literal().Text; got != "A" {
		t.Fatalf("literal = %q, want %q", got, "A")
	}
	if !sc.OctalPosition().IsValid() {
		t.Fatal("OctalPosition() invalid, want a recorded legacy-octal escape")
	}
}

// TestStringLiteralEndSpanIndependentOfDecodedLiteral exercises spec.md
// §8.3 scenario 2: a single-quoted string of 'a', a six-character
// backslash-u escape for 'A', and 'b' decodes to the literal "aAb"
// (3 runes) but the token's source span is the full 10 code units,
// including quotes and the escape — Location()/EndLocation()
// must report that real span, not something derived from len(Literal).
func TestStringLiteralEndSpanIndependentOfDecodedLiteral(t *testing.T) {
	sc := newScanner(t, "'a\x5cu0041b'")
	if typ := sc.Next(); typ != token.STRING {
		t.Fatalf("type = %s, want STRING", typ)
	}
	if got := sc.Literal().Text; got != "aAb" {
		t.Fatalf("literal = %q, want %q", got, "aAb")
	}
	begin := sc.Location()
	if begin.Offset != 0 {
		t.Fatalf("Location().Offset = %d, want 0", begin.Offset)
	}
	end := sc.EndLocation()
	if end.Offset != 10 {
		t.Fatalf("EndLocation().Offset = %d, want 10 (source span, not len(%q)=%d)", end.Offset, "aAb", len("aAb"))
	}
}

func TestStringLiteralsUnterminated(t *testing.T) {
	sc := newScanner(t, `"never closed`)
	if typ := sc.Next(); typ != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", typ)
	}
	errs := sc.Errors()
	if len(errs) != 1 || errs[0].Kind != UnterminatedString {
		t.Fatalf("errors = %+v, want one UnterminatedString", errs)
	}
}

func TestStringLiteralsRawLineTerminatorIsUnterminated(t *testing.T) {
	sc := newScanner(t, "\"broken\nstring\"")
	if typ := sc.Next(); typ != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", typ)
	}
}

func TestTemplateLiteralNoSubstitution(t *testing.T) {
	sc := newScanner(t, "`hello world`")
	if typ := sc.Next(); typ != token.TEMPLATE_LITERAL {
		t.Fatalf("type = %s, want TEMPLATE_LITERAL", typ)
	}
	if got := sc.Literal().Text; got != "hello world" {
		t.Fatalf("literal = %q, want %q", got, "hello world")
	}
}

func TestTemplateLiteralHeadAndContinuation(t *testing.T) {
	// `head${x}tail`: HEAD "head", the substitution's single identifier
	// token, then a parser-driven continuation producing TAIL "tail".
	sc := newScanner(t, "`head${x}tail`")

	if typ := sc.Next(); typ != token.TEMPLATE_HEAD {
		t.Fatalf("type = %s, want TEMPLATE_HEAD", typ)
	}
	if got := sc.Literal().Text; got != "head" {
		t.Fatalf("literal = %q, want %q", got, "head")
	}

	if typ := sc.Next(); typ != token.IDENTIFIER {
		t.Fatalf("type = %s, want IDENTIFIER", typ)
	}
	if got := sc.Literal().Text; got != "x" {
		t.Fatalf("literal = %q, want %q", got, "x")
	}

	if typ := sc.Next(); typ != token.RBRACE {
		t.Fatalf("type = %s, want RBRACE", typ)
	}

	// The parser's own brace-depth tracking recognizes this '}' closes
	// the substitution, so it resumes template scanning here instead of
	// trusting the scanner's already-mis-scanned ordinary lookahead.
	if typ := sc.ScanTemplateContinuation(); typ != token.TEMPLATE_TAIL {
		t.Fatalf("ScanTemplateContinuation() type = %s, want TEMPLATE_TAIL", typ)
	}
	if got := sc.Literal().Text; got != "tail" {
		t.Fatalf("literal = %q, want %q", got, "tail")
	}

	if typ := sc.Next(); typ != token.EOS {
		t.Fatalf("type = %s, want EOS", typ)
	}
}
