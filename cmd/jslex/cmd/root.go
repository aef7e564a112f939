package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set by build flags).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jslex",
	Short: "A standalone JavaScript lexical scanner",
	Long: `jslex tokenizes JavaScript source text and prints or otherwise
exposes the resulting token stream.

It implements ECMA-262 lexical scanning: identifiers (with \u escapes),
keywords gated by harmony/contextual flags, numeric literals across every
supported radix, string and template literals with full escape
processing, regular expression re-scan entry points, and automatic
semicolon insertion signaling — independent of any particular parser.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
