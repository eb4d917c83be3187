package cli

import (
	"github.com/spf13/cobra"
)

func newThemeCmd(root *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Dark mode preference",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show whether dark mode is on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open("")
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			return writeOut(cmd, root, map[string]any{"data": map[string]any{"dark": a.LoadTheme()}})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open("")
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			a.LoadTheme()
			dark, _, err := a.ToggleTheme()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": map[string]any{"dark": dark}})
		},
	})
	return cmd
}
