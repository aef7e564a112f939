package unicodetables

import "testing"

func TestIsIdentifierStartASCII(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '_', '$'} {
		if !IsIdentifierStart(r) {
			t.Errorf("IsIdentifierStart(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'0', '9', ' ', '-', '@'} {
		if IsIdentifierStart(r) {
			t.Errorf("IsIdentifierStart(%q) = true, want false", r)
		}
	}
}

func TestIsIdentifierPartASCII(t *testing.T) {
	for _, r := range []rune{'a', '0', '_', '$'} {
		if !IsIdentifierPart(r) {
			t.Errorf("IsIdentifierPart(%q) = false, want true", r)
		}
	}
	if IsIdentifierPart(' ') {
		t.Error("IsIdentifierPart(' ') = true, want false")
	}
}

func TestIsIdentifierUnicode(t *testing.T) {
	// Greek small letter alpha: a valid identifier start/part.
	if !IsIdentifierStart('α') {
		t.Error("IsIdentifierStart('α') = false, want true")
	}
	if !IsIdentifierPart('α') {
		t.Error("IsIdentifierPart('α') = false, want true")
	}
	// Repeated lookups must agree (exercises the memoization cache).
	for i := 0; i < 3; i++ {
		if !IsIdentifierStart('α') {
			t.Fatal("cached IsIdentifierStart('α') flipped to false")
		}
	}
	// A combining mark is valid only as an identifier part, not a start.
	const combiningAcute = '́'
	if IsIdentifierStart(combiningAcute) {
		t.Error("IsIdentifierStart(combining acute) = true, want false")
	}
	if !IsIdentifierPart(combiningAcute) {
		t.Error("IsIdentifierPart(combining acute) = false, want true")
	}
}

func TestIsIdentifierPartZeroWidthJoiners(t *testing.T) {
	if !IsIdentifierPart(0x200C) {
		t.Error("IsIdentifierPart(ZWNJ) = false, want true")
	}
	if !IsIdentifierPart(0x200D) {
		t.Error("IsIdentifierPart(ZWJ) = false, want true")
	}
}

func TestIsWhiteSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\v', '\f', 0xFEFF, 0x00A0} {
		if !IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '\n', '\r'} {
		if IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%U) = true, want false", r)
		}
	}
}

func TestIsLineTerminator(t *testing.T) {
	for _, r := range []rune{'\n', '\r', 0x2028, 0x2029} {
		if !IsLineTerminator(r) {
			t.Errorf("IsLineTerminator(%U) = false, want true", r)
		}
	}
	if IsLineTerminator(' ') {
		t.Error("IsLineTerminator(' ') = true, want false")
	}
}

func TestDigitPredicates(t *testing.T) {
	if !IsDecimalDigit('5') || IsDecimalDigit('a') {
		t.Error("IsDecimalDigit broken")
	}
	if !IsHexDigit('f') || !IsHexDigit('F') || !IsHexDigit('9') || IsHexDigit('g') {
		t.Error("IsHexDigit broken")
	}
	if !IsOctalDigit('7') || IsOctalDigit('8') {
		t.Error("IsOctalDigit broken")
	}
	if !IsBinaryDigit('0') || !IsBinaryDigit('1') || IsBinaryDigit('2') {
		t.Error("IsBinaryDigit broken")
	}
}
