// Package diag formats scan diagnostics for humans: a source line, a
// caret under the offending column, and the message, with optional ANSI
// color. It is the direct generalization of go-dws's
// internal/errors.CompilerError — same constructor shape, same
// caret-under-the-error-column rendering — retargeted from
// lexer.Position to token.Position and from "compiler error" framing to
// "scan diagnostic" framing, since a Scanner never raises an exception:
// every malformed span becomes one diagnostic attached to an ILLEGAL
// token and scanning continues.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/jslex/pkg/token"
)

// Diagnostic is a single scan error with enough context to render a
// caret-annotated source excerpt.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs a Diagnostic.
func New(pos token.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Format renders the diagnostic with a one-line source excerpt and a
// caret under the error column. If color is true, ANSI escapes highlight
// the caret and message.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d\n", d.Pos.Line, d.Pos.Column)
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		writeColored(&sb, color, "\033[1;31m", "^")
		sb.WriteString("\n")
	}

	writeColored(&sb, color, "\033[1m", d.Message)
	return sb.String()
}

// FormatWithContext is Format plus contextLines of surrounding source on
// either side of the error line, dimmed when color is enabled.
func (d *Diagnostic) FormatWithContext(contextLines int, color bool) string {
	lines := d.sourceContext(d.Pos.Line, contextLines, contextLines)
	if len(lines) == 0 {
		return d.Format(color)
	}

	var sb strings.Builder
	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d\n", d.Pos.Line, d.Pos.Column)
	}

	start := d.Pos.Line - contextLines
	if start < 1 {
		start = 1
	}

	for i, line := range lines {
		lineNum := start + i
		lineNumStr := fmt.Sprintf("%4d | ", lineNum)
		if lineNum == d.Pos.Line {
			writeColored(&sb, color, "\033[1m", lineNumStr+line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
			writeColored(&sb, color, "\033[1;31m", "^")
			sb.WriteString("\n")
		} else {
			writeColored(&sb, color, "\033[2m", lineNumStr+line)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	writeColored(&sb, color, "\033[1m", d.Message)
	return sb.String()
}

func writeColored(sb *strings.Builder, color bool, code, text string) {
	if color {
		sb.WriteString(code)
	}
	sb.WriteString(text)
	if color {
		sb.WriteString("\033[0m")
	}
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func (d *Diagnostic) sourceContext(lineNum, before, after int) []string {
	if d.Source == "" {
		return nil
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return nil
	}
	start := lineNum - before
	if start < 1 {
		start = 1
	}
	end := lineNum + after
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start-1 : end]
}

// FormatAll renders a slice of Diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Scan failed with %d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FromScanErrors converts a scanner's accumulated errors (anything with
// Position()/Error(), matching lexer.Error's shape) into Diagnostics carrying
// the given source and file for rendering.
func FromScanErrors(errs []ScanError, source, file string) []*Diagnostic {
	diags := make([]*Diagnostic, 0, len(errs))
	for _, e := range errs {
		diags = append(diags, New(e.Position(), e.Error(), source, file))
	}
	return diags
}

// ScanError is the shape a scanner's per-token diagnostic must satisfy to
// be converted by FromScanErrors. lexer.Error implements it through its
// Position() method, which returns its Pos field, so diag does not
// depend on lexer's internal layout.
type ScanError interface {
	error
	Position() token.Position
}
