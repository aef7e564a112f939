package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/jslex/internal/replshell"
	"github.com/cwbudde/jslex/pkg/token"
)

const banner = `     _     _
    (_)___| | _____  __
    | / __| |/ _ \ \/ /
    | \__ \ |  __/>  <
   _/ |___/_|\___/_/\_\
  |__/`

var replUseHarmony bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive tokenizer session",
	Long: `Start a read-eval-print loop that tokenizes each line of input you type
and prints the resulting tokens, colored by category.

Examples:
  # Start the REPL with default (non-harmony) flags
  jslex repl

  # Start with let/const/class/import/export/async/await enabled
  jslex repl --use-harmony`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replUseHarmony, "use-harmony", false, "enable every harmony/contextual keyword and 0b/0o numeric literals")
}

func runRepl(cmd *cobra.Command, args []string) error {
	flags := token.Flags{}
	if replUseHarmony {
		flags = token.Flags{
			HarmonyNumericLiterals: true,
			HarmonyScoping:         true,
			HarmonyModules:         true,
			AsyncAwait:             true,
		}
	}

	r := replshell.NewRepl(banner, Version, "jslex", "--------------------------------", "MIT", "jslex> ", flags)
	r.Start(os.Stdout)
	return nil
}
