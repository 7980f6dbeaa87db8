// Command fmtcoredemo is a thin CLI around the fmtcore package: it decodes
// a format string and an argument list, renders them, and prints the
// result or a structured parse/render error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := rootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fmtcoredemo",
		Short:        "Render a directive-formatted string against a list of arguments",
		Long:         `fmtcoredemo exercises the fmtcore rendering engine from the command line: give it a format string containing "~" directives and a JSON or YAML-encoded argument array, and it prints the rendered result.`,
		SilenceUsage: true,
	}
	root.AddCommand(renderCommand())
	return root
}
