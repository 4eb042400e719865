package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"breeze/internal/stub"
	"breeze/internal/types"
)

var universeAll bool

func init() {
	universeCmd.Flags().BoolVar(&universeAll, "all", false, "include builtin classes in the dump")
}

var universeCmd = &cobra.Command{
	Use:   "universe <stub.toml>",
	Short: "Dump the class universe a stub file loads into",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := stub.LoadUniverse(args[0])
		if err != nil {
			return err
		}

		nameStyle := lipgloss.NewStyle().Bold(true)
		kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		if !isTerminal(os.Stdout) {
			nameStyle = lipgloss.NewStyle()
			kindStyle = lipgloss.NewStyle()
		}

		builtinCount := types.NewUniverse().Len()
		out := cmd.OutOrStdout()
		for _, id := range u.All() {
			if !universeAll && int(id) < builtinCount {
				continue
			}
			header := fmt.Sprintf("%s %s", kindStyle.Render(u.Kind(id).String()), nameStyle.Render(u.Name(id)))
			if super := u.Super(id); super.IsValid() && super != u.Builtins().Object {
				header += " extends " + u.Name(super)
			}
			if faces := u.Interfaces(id); len(faces) > 0 {
				names := make([]string, len(faces))
				for i, f := range faces {
					names[i] = u.Name(f)
				}
				header += " implements " + strings.Join(names, ", ")
			}
			fmt.Fprintln(out, header)

			for _, f := range u.Fields(id) {
				fmt.Fprintf(out, "  field %s %s\n", u.Name(f.Type), f.Name)
			}
			for _, p := range u.Properties(id) {
				fmt.Fprintf(out, "  property %s %s\n", u.Name(p.Type), p.Name)
			}
			for _, m := range u.Methods(id) {
				params := make([]string, len(m.Params))
				for i, q := range m.Params {
					params[i] = u.Name(q)
				}
				fmt.Fprintf(out, "  method %s %s(%s)\n", u.Name(m.Returns), m.Name, strings.Join(params, ", "))
			}
			for _, c := range u.Constructors(id) {
				params := make([]string, len(c.Params))
				for i, q := range c.Params {
					params[i] = u.Name(q)
				}
				fmt.Fprintf(out, "  constructor (%s)\n", strings.Join(params, ", "))
			}
		}
		return nil
	},
}
