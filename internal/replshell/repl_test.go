package replshell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/jslex/pkg/token"
)

func TestPrintBannerInfo(t *testing.T) {
	r := NewRepl("BANNER", "1.0.0", "tester", "----", "MIT", "js> ", token.Flags{})

	var buf bytes.Buffer
	r.PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "BANNER")
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "tester")
	assert.Contains(t, out, ".exit")
}

func TestScanWithRecoveryPrintsTokens(t *testing.T) {
	r := NewRepl("", "", "", "", "", "", token.Flags{})

	var buf bytes.Buffer
	r.scanWithRecovery(&buf, "const x = 1;")

	out := buf.String()
	assert.True(t, strings.Contains(out, "IDENTIFIER") || strings.Contains(out, "CONST"))
	assert.Contains(t, out, "NUMBER")
}

func TestScanWithRecoveryReportsScanErrors(t *testing.T) {
	r := NewRepl("", "", "", "", "", "", token.Flags{})

	var buf bytes.Buffer
	r.scanWithRecovery(&buf, "0x;")

	assert.NotEmpty(t, buf.String())
}

func TestTokenColorCategories(t *testing.T) {
	assert.Equal(t, redColor, tokenColor(token.ILLEGAL))
	assert.Equal(t, cyanColor, tokenColor(token.IDENTIFIER))
	assert.Equal(t, greenColor, tokenColor(token.NUMBER))
	assert.Equal(t, greenColor, tokenColor(token.STRING))
	assert.Equal(t, yellowColor, tokenColor(token.VAR))
	assert.Equal(t, magenta, tokenColor(token.ADD))
}
