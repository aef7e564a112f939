// Package unicodetables implements the character predicates the scanner
// consults on every advance: identifier start/part, whitespace, and line
// terminators. ASCII is handled with a direct range check; non-ASCII
// code points fall back to the standard library's Unicode tables and are
// memoized, mirroring the cache V8's scanner keeps in front of its own
// character classification tables (UnicodeCache in the original source)
// so that re-scanning the same identifier characters across Peek/Next
// calls does not repeatedly walk the Unicode range tables.
package unicodetables

import (
	"sync"
	"unicode"
)

// IsWhiteSpace reports whether r is ECMAScript whitespace: the ASCII
// space/tab/vertical-tab/form-feed set, plus any other Unicode code
// point in category Zs, and the BOM (treated as whitespace when it
// appears mid-stream rather than as a leading marker).
func IsWhiteSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0xFEFF:
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(unicode.Zs, r)
}

// IsLineTerminator reports whether r is one of the four ECMAScript line
// terminators: LF, CR, U+2028 (LINE SEPARATOR), U+2029 (PARAGRAPH
// SEPARATOR).
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// IsIdentifierStart reports whether r may begin an IdentifierName: ASCII
// letter, '$', '_', or a Unicode code point with the ID_Start property
// (approximated here via unicode.IsLetter, which is the standard
// library's closest built-in table).
func IsIdentifierStart(r rune) bool {
	if isASCIIIdentStart(r) {
		return true
	}
	if r < 0x80 {
		return false
	}
	return idStartCache.classify(r)
}

// IsIdentifierPart reports whether r may continue an IdentifierName
// after its first character: everything IsIdentifierStart accepts, plus
// ASCII digits, the zero-width joiner/non-joiner (U+200C, U+200D), and
// Unicode code points with the ID_Continue property (approximated via
// unicode.IsLetter/IsDigit/Mn/Mc/Pc, the standard library's nearest
// equivalents).
func IsIdentifierPart(r rune) bool {
	if isASCIIIdentStart(r) || (r >= '0' && r <= '9') {
		return true
	}
	switch r {
	case 0x200C, 0x200D:
		return true
	}
	if r < 0x80 {
		return false
	}
	return idPartCache.classify(r)
}

func isASCIIIdentStart(r rune) bool {
	return r == '$' || r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// IsDecimalDigit reports whether r is an ASCII decimal digit.
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctalDigit reports whether r is an ASCII octal digit.
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsBinaryDigit reports whether r is '0' or '1'.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

var (
	idStartCache = newPredicateCache(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
	})
	idPartCache = newPredicateCache(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) ||
			unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
			unicode.Is(unicode.Pc, r) || unicode.Is(unicode.Nl, r) ||
			unicode.Is(unicode.Other_ID_Start, r) || unicode.Is(unicode.Other_ID_Continue, r)
	})
)

// predicateCache memoizes a rune predicate over the non-ASCII range,
// where Unicode range-table lookups are comparatively expensive and
// identifiers routinely revisit the same few thousand code points
// (CJK source text, accented identifiers) many times during a scan.
// The cache is shared by every Scanner in the process, so access is
// guarded by mu.
type predicateCache struct {
	fn    func(rune) bool
	mu    sync.Mutex
	cache map[rune]bool
}

func newPredicateCache(fn func(rune) bool) *predicateCache {
	return &predicateCache{fn: fn, cache: make(map[rune]bool, 64)}
}

func (c *predicateCache) classify(r rune) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.cache[r]; ok {
		return v
	}
	v := c.fn(r)
	c.cache[r] = v
	return v
}
