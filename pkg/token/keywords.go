package token

// Flags gates the contextual and harmony-era keywords recognized by
// LookupIdent. An unset flag causes the corresponding identifier to
// resolve to IDENTIFIER instead of its keyword TokenType, mirroring how
// a scanner built against an older Annex B / pre-harmony ECMAScript
// edition would see these words as ordinary names.
type Flags struct {
	// HarmonyNumericLiterals enables 0b/0o numeric literal syntax in the
	// number scanner; it does not gate any keyword, but lives alongside
	// the other harmony flags since the scanner threads all four through
	// the same Flags value (see lexer.New).
	HarmonyNumericLiterals bool

	// HarmonyScoping gates let, yield, of, class, and const: the
	// block-scoping, generator, and iteration vocabulary introduced
	// together in the same harmony milestone.
	HarmonyScoping bool

	// HarmonyModules gates import and export.
	HarmonyModules bool

	// AsyncAwait gates async and await.
	AsyncAwait bool
}

var keywords = map[string]TokenType{
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"enum":       ENUM,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"false":      FALSE,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"new":        NEW,
	"null":       NULL,
	"return":     RETURN,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"true":       TRUE,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,

	"let":   LET,
	"yield": YIELD,
	"async": ASYNC,
	"await": AWAIT,
	"of":    OF,
}

// gateFor reports whether the flag governing a contextual keyword's
// TokenType is set in f, so that it is recognized as that keyword rather
// than as a plain IDENTIFIER; ungated keywords always report true.
func gateFor(tt TokenType, f Flags) bool {
	switch tt {
	case LET, YIELD, OF, CLASS, CONST:
		return f.HarmonyScoping
	case IMPORT, EXPORT:
		return f.HarmonyModules
	case ASYNC, AWAIT:
		return f.AsyncAwait
	default:
		return true
	}
}

// LookupIdent classifies an already-scanned identifier string: it
// returns the keyword TokenType for a reserved or harmony-gated word
// whose gate is open under f, and IDENTIFIER otherwise. Matching is
// case-sensitive, per ECMAScript's IdentifierName grammar (unlike the
// teacher's case-insensitive Pascal lookup).
func LookupIdent(literal string, f Flags) TokenType {
	tt, ok := keywords[literal]
	if !ok {
		return IDENTIFIER
	}
	if !gateFor(tt, f) {
		return IDENTIFIER
	}
	return tt
}

// IsKeyword reports whether literal names a keyword under the given
// flags (a convenience wrapper around LookupIdent).
func IsKeyword(literal string, f Flags) bool {
	return LookupIdent(literal, f) != IDENTIFIER
}
