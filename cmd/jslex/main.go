// Command jslex tokenizes JavaScript source and prints the resulting
// token stream, for debugging the scanner and exploring how a program
// is lexed.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/jslex/cmd/jslex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
