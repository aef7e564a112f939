package lexer

import (
	"testing"

	"github.com/cwbudde/jslex/pkg/token"
)

// TestMalformedNumberLiterals documents the scanner's recovery behavior
// for invalid numeric syntax: scanning never aborts, each malformed
// span becomes a single ILLEGAL token with whatever text it consumed,
// and scanning resumes immediately afterward.
func TestMalformedNumberLiterals(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		harmony        bool
		expectedTokens []struct {
			literal string
			typ     token.TokenType
		}
		expectedErrors int
	}{
		{
			name:  "hex literal with no digits: 0x",
			input: "0x",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"0x", token.ILLEGAL},
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
		{
			name:  "hex literal with invalid continuation: 0xFFG",
			input: "0xFFG",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"0xFF", token.ILLEGAL},
				{"", token.EOS},
			},
			expectedErrors: 1, // NumericLiteral immediately followed by IdentifierStart
		},
		{
			name:    "binary literal with no digits (flag on): 0b",
			input:   "0b",
			harmony: true,
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"0b", token.ILLEGAL},
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
		{
			name:  "binary prefix with flag off falls back to decimal 0 then identifier: 0b",
			input: "0b",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"0", token.ILLEGAL}, // '0' immediately followed by identifier-start 'b'
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
		{
			name:  "decimal immediately followed by identifier: 3abc",
			input: "3abc",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"3", token.ILLEGAL},
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
		{
			name:  "decimal immediately followed by another digit run: 08",
			input: "08",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				// not all-octal (8 is not an octal digit): falls back to a
				// plain decimal NumericLiteral, not an error.
				{"08", token.NUMBER},
				{"", token.EOS},
			},
			expectedErrors: 0,
		},
		{
			name:  "exponent with no digits: 1e",
			input: "1e",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"1e", token.NUMBER},
				{"", token.EOS},
			},
			expectedErrors: 1, // missing digits in exponent, but still a NUMBER token
		},
		{
			name:  "exponent with sign but no digits: 1e+",
			input: "1e+",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{"1e+", token.NUMBER},
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
		{
			name:  "leading dot with trailing identifier: .5x",
			input: ".5x",
			expectedTokens: []struct {
				literal string
				typ     token.TokenType
			}{
				{".5", token.ILLEGAL},
				{"", token.EOS},
			},
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sc *Scanner
			if tt.harmony {
				sc = newHarmonyScanner(t, tt.input)
			} else {
				sc = newScanner(t, tt.input)
			}
			for i, expected := range tt.expectedTokens {
				typ := sc.Next()
				if typ != expected.typ {
					t.Errorf("token[%d]: type = %s, want %s", i, typ, expected.typ)
				}
				if got := sc.Literal().Text; got != expected.literal {
					t.Errorf("token[%d]: literal = %q, want %q", i, got, expected.literal)
				}
			}
			if got := len(sc.Errors()); got != tt.expectedErrors {
				t.Errorf("error count = %d, want %d", got, tt.expectedErrors)
				for i, err := range sc.Errors() {
					t.Logf("  error[%d]: %s at %s", i, err.Message, err.Pos)
				}
			}
		})
	}
}

// TestValidNumberLiterals ensures well-formed numeric literals across
// every supported radix scan cleanly with no accumulated errors.
func TestValidNumberLiterals(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		harmony bool
		literal string
	}{
		{name: "decimal integer", input: "42", literal: "42"},
		{name: "decimal float", input: "3.14", literal: "3.14"},
		{name: "leading-dot float", input: ".5", literal: ".5"},
		{name: "exponent", input: "1e10", literal: "1e10"},
		{name: "signed exponent", input: "1.5e-3", literal: "1.5e-3"},
		{name: "hexadecimal", input: "0xFF", literal: "0xFF"},
		{name: "hexadecimal uppercase prefix", input: "0X1a", literal: "0X1a"},
		{name: "legacy octal", input: "0755", literal: "0755"},
		{name: "modern binary", input: "0b1010", harmony: true, literal: "0b1010"},
		{name: "modern octal", input: "0o17", harmony: true, literal: "0o17"},
		{name: "zero", input: "0", literal: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sc *Scanner
			if tt.harmony {
				sc = newHarmonyScanner(t, tt.input)
			} else {
				sc = newScanner(t, tt.input)
			}
			if typ := sc.Next(); typ != token.NUMBER {
				t.Fatalf("type = %s, want NUMBER", typ)
			}
			if got := sc.Literal().Text; got != tt.literal {
				t.Fatalf("literal = %q, want %q", got, tt.literal)
			}
			if errs := sc.Errors(); len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
		})
	}
}
