package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/diag"
	"github.com/cwbudde/jslex/internal/lexer"
	"github.com/cwbudde/jslex/pkg/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr          string
	showPos           bool
	showType          bool
	onlyErrors        bool
	printTokens       bool
	breakAfterIllegal bool
	useHarmony        bool
	repeatCount       int
	eosTest           bool
	useLatin1         bool
	useUTF8           bool
	useUTF16          bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a JavaScript file or expression",
	Long: `Tokenize (lex) a JavaScript program and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
a program is lexed: which harmony flags are in effect, where automatic
semicolon insertion would fire, and where legacy octal literals appear.

Examples:
  # Tokenize a script file
  jslex lex script.js

  # Tokenize an inline expression
  jslex lex -e "const x = 42;"

  # Show token types and positions
  jslex lex --show-type --show-pos script.js

  # Show only errors (illegal tokens)
  jslex lex --only-errors script.js

  # Enable let/const/class/import/export/async/await and 0b/0o literals
  jslex lex --use-harmony script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal/error tokens")
	lexCmd.Flags().BoolVar(&printTokens, "print-tokens", false, "print each token's name, span, literal, and octal position")
	lexCmd.Flags().BoolVar(&breakAfterIllegal, "break-after-illegal", false, "stop scanning at the first illegal token")
	lexCmd.Flags().BoolVar(&useHarmony, "use-harmony", false, "enable every harmony/contextual keyword and 0b/0o numeric literals")
	lexCmd.Flags().IntVar(&repeatCount, "repeat", 1, "concatenate the source N times before scanning, for benchmarking")
	lexCmd.Flags().BoolVar(&eosTest, "eos-test", false, "re-scan the source with its tail truncated by one code unit at a time")
	lexCmd.Flags().BoolVar(&useLatin1, "latin1", false, "treat input as Latin-1 (ISO-8859-1)")
	lexCmd.Flags().BoolVar(&useUTF8, "utf8", false, "treat input as UTF-8 (default)")
	lexCmd.Flags().BoolVar(&useUTF16, "utf16", false, "treat input as UTF-16")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyConfigDefaults(cfg)

	if repeatCount < 1 {
		return fmt.Errorf("--repeat must be at least 1")
	}
	if repeatCount > 1 {
		input = strings.Repeat(input, repeatCount)
	}

	flags := scanFlags()

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	if eosTest {
		return runEOSTest(input, filename, flags)
	}

	start := time.Now()
	errorCount, err := scanAndPrint(input, filename, flags)
	elapsed := time.Since(start)

	if repeatCount > 1 {
		fmt.Printf("RunTime: %d ms\n", elapsed.Milliseconds())
	}

	if verbose {
		fmt.Println("---")
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if err != nil {
		return err
	}
	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

// scanFlags resolves the --use-harmony flag into the token.Flags value
// threaded through the scanner.
func scanFlags() token.Flags {
	if useHarmony {
		return token.Flags{
			HarmonyNumericLiterals: true,
			HarmonyScoping:         true,
			HarmonyModules:         true,
			AsyncAwait:             true,
		}
	}
	return token.Flags{}
}

// newStream decodes input according to the selected --latin1/--utf8/--utf16
// flag, defaulting to UTF-8 when none is given.
func newStream(input string) (charstream.Stream, error) {
	switch {
	case useLatin1:
		return charstream.FromLatin1Bytes([]byte(input))
	case useUTF16:
		return charstream.FromUTF16Bytes([]byte(input))
	default:
		return charstream.FromUTF8Bytes([]byte(input))
	}
}

// scanAndPrint tokenizes input to completion, printing each token (unless
// onlyErrors is set) and returns the number of ILLEGAL tokens seen.
func scanAndPrint(input, filename string, flags token.Flags) (int, error) {
	stream, err := newStream(input)
	if err != nil {
		return 0, fmt.Errorf("failed to decode input: %w", err)
	}
	sc := lexer.New(stream, flags)

	errorCount := 0
	for {
		typ := sc.Next()

		if typ == token.ILLEGAL {
			errorCount++
		}
		if !onlyErrors || typ == token.ILLEGAL {
			printScannedToken(sc, typ)
		}
		if typ == token.EOS {
			break
		}
		if breakAfterIllegal && typ == token.ILLEGAL {
			break
		}
	}

	if diags := sc.Errors(); len(diags) > 0 {
		scanErrs := make([]diag.ScanError, len(diags))
		for i, e := range diags {
			scanErrs[i] = e
		}
		fmt.Fprint(os.Stderr, diag.FormatAll(diag.FromScanErrors(scanErrs, input, filename), false))
	}

	return errorCount, nil
}

// printScannedToken renders the current token per the --show-pos,
// --show-type, and --print-tokens flags.
func printScannedToken(sc *lexer.Scanner, typ token.TokenType) {
	lit := sc.Literal()

	if printTokens {
		octal := sc.OctalPosition()
		octalStr := "-"
		if octal.IsValid() {
			octalStr = fmt.Sprintf("%d:%d", octal.Line, octal.Column)
		}
		span := fmt.Sprintf("%s-%s", sc.Location(), sc.EndLocation())
		fmt.Printf("%-24s %-12s %q octal=%s\n", span, typ, lit.Text, octalStr)
		return
	}

	var output string
	if showType {
		output = fmt.Sprintf("[%-12s]", typ)
	}

	switch {
	case typ == token.EOS:
		output += " EOS"
	case typ == token.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", lit.Text)
	case lit.Text == "":
		output += fmt.Sprintf(" %s", typ)
	default:
		output += fmt.Sprintf(" %q", lit.Text)
	}

	if showPos {
		pos := sc.Location()
		output += fmt.Sprintf(" @%d:%d", pos.Line, pos.Column)
	}

	fmt.Println(output)
}

// runEOSTest re-scans input with its tail truncated by one code unit at a
// time, confirming the scanner terminates cleanly (an EOS token, never a
// panic or an infinite loop) no matter where the source is cut off.
func runEOSTest(input, filename string, flags token.Flags) error {
	unit := 1 // Latin-1 and UTF-8 code units are single bytes
	if useUTF16 {
		unit = 2
	}
	points, failures := 0, 0

	for n := len(input); n >= 0; n -= unit {
		points++
		truncated := input[:n]
		if !scanTruncationPoint(truncated, flags) {
			failures++
			fmt.Fprintf(os.Stderr, "eos-test: failed at truncation length %d\n", n)
		}
	}

	fmt.Printf("eos-test: scanned %d truncation points of %q, %d failure(s)\n", points, filename, failures)
	if failures > 0 {
		return fmt.Errorf("eos-test found %d failure(s)", failures)
	}
	return nil
}

// scanTruncationPoint drives one truncated source through the scanner to
// completion, guarding against both a panic and a scan that never reaches
// EOS (a bound far beyond any real token count catches a non-terminating
// loop without hanging the command).
func scanTruncationPoint(truncated string, flags token.Flags) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	stream, err := newStream(truncated)
	if err != nil {
		return false
	}
	sc := lexer.New(stream, flags)

	maxSteps := len(truncated)*2 + 16
	for i := 0; i < maxSteps; i++ {
		if sc.Next() == token.EOS {
			return true
		}
	}
	return false
}
