// Package astdebugcli is the entrypoint for the astdebug binary.
package astdebugcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Command returns the root command of the astdebug binary.
func Command() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   fmt.Sprintf("%s [global options] <subcommand>", os.Args[0]),
		Short: "Print diagnostics for JavaScript AST nodes",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	cmd.AddCommand(
		printCommand(),
	)

	return cmd
}

// Run executes the root command and exits with a non-zero status on failure.
func Run() {
	if err := Command().Execute(); err != nil {
		os.Exit(1)
	}
}
