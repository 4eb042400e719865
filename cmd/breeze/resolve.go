package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"breeze/internal/driver"
	"breeze/internal/resolve"
	"breeze/internal/stub"
	"breeze/internal/types"
)

var resolveUseCache bool

func init() {
	resolveCmd.Flags().BoolVar(&resolveUseCache, "cache", false, "reuse the universe snapshot cache")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <stub.toml> <query.toml>",
	Short: "Resolve one query against a class universe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stubPath, queryPath := args[0], args[1]

		var cache *driver.SnapshotCache
		if resolveUseCache {
			var err error
			cache, err = driver.OpenSnapshotCache("breeze")
			if err != nil {
				return fmt.Errorf("open snapshot cache: %w", err)
			}
		}

		u, err := driver.LoadStub(stubPath, cache)
		if err != nil {
			return err
		}
		q, err := stub.LoadQuery(queryPath, u)
		if err != nil {
			return err
		}

		engine := resolve.NewEngine(u, q.Source)
		res := engine.Lookup(q.Node, q.Scope, q.Receiver, q.StaticReceiver)
		fmt.Fprintln(cmd.OutOrStdout(), renderResult(u, res))
		return nil
	},
}

var confidenceStyles = map[resolve.Confidence]lipgloss.Style{
	resolve.Exact:           lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	resolve.Inferred:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	resolve.LooselyInferred: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	resolve.Unknown:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// renderResult colors the line by confidence on terminals and leaves it plain
// when output is redirected.
func renderResult(u *types.Universe, res resolve.Result) string {
	line := driver.FormatResult(u, res)
	if !isTerminal(os.Stdout) {
		return line
	}
	if style, ok := confidenceStyles[res.Confidence]; ok {
		return style.Render(line)
	}
	return line
}
