package cli

import (
	"fmt"

	"actlog/internal/tui"
	"actlog/internal/view"

	"github.com/spf13/cobra"
)

func newObjectivesCmd(root *App) *cobra.Command {
	var width int
	var raw bool

	cmd := &cobra.Command{
		Use:   "objectives",
		Short: "Print the system objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), view.ObjectivesMarkdown)
				return err
			}
			a, err := root.open("")
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			out := tui.RenderObjectives(view.ObjectivesMarkdown, width, a.LoadTheme())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	return cmd
}
