// Package main provides the CLI entrypoint for png2c.
//
// png2c embeds binary assets into C programs by converting a file into a
// header containing a hex byte array and its length:
//
//	png2c logo.png logo.h logo
package main

import (
	"os"

	"github.com/spf13/cobra"

	"png2c/internal/cheader"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "png2c <input-file> <output-file> <asset-name>",
		Short: "png2c converts a binary file into a C header with a hex byte array",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arity is already validated; from here on a failure is an I/O
			// problem and repeating usage would bury the diagnostic.
			cmd.SilenceUsage = true

			return cheader.Emit(args[0], args[1], args[2])
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
