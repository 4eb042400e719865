package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"breeze/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "breeze",
	Short: "Breeze semantic type-resolution toolkit",
	Long:  `Breeze resolves the type, declaration, and declaring type of source constructs against a declarative class universe`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(universeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
