// Package replshell implements an interactive line-at-a-time tokenizer
// loop: the same readline/color-driven Read-Eval-Print Loop shape as
// akashmaji946-go-mix's repl package, re-themed from evaluating an
// expression to scanning a line and printing its tokens colored by
// category.
package replshell

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cwbudde/jslex/internal/charstream"
	"github.com/cwbudde/jslex/internal/lexer"
	"github.com/cwbudde/jslex/pkg/token"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	magenta     = color.New(color.FgMagenta)
)

// Repl is an interactive tokenizer session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Flags   token.Flags
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string, flags token.Flags) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Flags: flags}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type a line of JavaScript and press enter to see its tokens")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or EOF is reached.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.scanWithRecovery(writer, line)
	}
}

// scanWithRecovery tokenizes one line, recovering from any panic so a
// malformed line never kills the session.
func (r *Repl) scanWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[SCANNER PANIC] %v\n", recovered)
		}
	}()

	stream, err := charstream.FromUTF8Bytes([]byte(line))
	if err != nil {
		redColor.Fprintf(writer, "[DECODE ERROR] %v\n", err)
		return
	}
	sc := lexer.New(stream, r.Flags)

	for {
		typ := sc.Next()
		if typ == token.EOS {
			break
		}
		r.printToken(writer, sc, typ)
	}

	for _, e := range sc.Errors() {
		redColor.Fprintf(writer, "%s\n", e)
	}
}

// printToken writes one token colored by its rough category: keywords
// yellow, identifiers cyan, literals green, punctuation magenta, illegal
// tokens red.
func (r *Repl) printToken(writer io.Writer, sc *lexer.Scanner, typ token.TokenType) {
	lit := sc.Literal()
	c := tokenColor(typ)
	c.Fprintf(writer, "%-12s %q\n", typ, lit.Text)
}

func tokenColor(typ token.TokenType) *color.Color {
	switch {
	case typ == token.ILLEGAL:
		return redColor
	case typ == token.IDENTIFIER:
		return cyanColor
	case typ == token.NUMBER || typ == token.STRING || typ == token.TEMPLATE_LITERAL ||
		typ == token.TEMPLATE_HEAD || typ == token.TEMPLATE_MIDDLE || typ == token.TEMPLATE_TAIL ||
		typ == token.REGEXP_LITERAL:
		return greenColor
	case typ.IsKeyword():
		return yellowColor
	default:
		return magenta
	}
}
