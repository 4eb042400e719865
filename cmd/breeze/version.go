package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"breeze/internal/version"
)

var (
	versionFull bool
	versionJSON bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "also print commit hash and build date")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "emit machine-readable output")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the breeze version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionJSON {
			build := struct {
				Version string `json:"version"`
				Commit  string `json:"commit,omitempty"`
				Date    string `json:"date,omitempty"`
			}{Version: version.Version}
			if versionFull {
				build.Commit = buildValue(version.GitCommit)
				build.Date = buildValue(version.BuildDate)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(build)
		}

		fmt.Fprintf(out, "breeze %s\n", version.Version)
		if versionFull {
			fmt.Fprintf(out, "  commit %s\n", buildValue(version.GitCommit))
			fmt.Fprintf(out, "  built  %s\n", buildValue(version.BuildDate))
		}
		return nil
	},
}

// buildValue substitutes a marker for metadata the linker never stamped.
func buildValue(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
