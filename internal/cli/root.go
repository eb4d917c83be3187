package cli

import (
	"fmt"
	"os"
	"strings"

	"actlog/internal/app"
	"actlog/internal/config"
	"actlog/internal/format"
	"actlog/internal/kv"
	"actlog/internal/tui"

	"github.com/spf13/cobra"
)

// App holds the global flags.
type App struct {
	Dir        string
	Backend    string
	Variant    string
	PrettyJSON bool
	Yes        bool
	Debug      bool
}

func NewRootCmd() *cobra.Command {
	// Environment defaults. A bad value is reported when a command runs, unless flags
	// override every setting Load could reject.
	env, envErr := config.Load()
	root := &App{Debug: env.Debug}

	cmd := &cobra.Command{
		Use:          "actlog",
		Short:        "School activity log (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  actlog

  # The task-list flavour of the dashboard
  actlog --variant tasks

  # Scriptable commands
  actlog activities add --date 2024-08-12 --activity "Foundation Day" --person "Dr. Santos"
  actlog activities list --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runTUI(root)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if envErr != nil && !(flags.Changed("backend") && flags.Changed("variant")) {
			return writeErr(cmd, envErr)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&root.Dir, "dir", env.Dir, "Data directory (default: user config dir/actlog)")
	cmd.PersistentFlags().StringVar(&root.Backend, "backend", string(orDefault(env.Backend, kv.BackendJSON)), "Storage backend (json|sqlite|memory)")
	cmd.PersistentFlags().StringVar(&root.Variant, "variant", string(orDefault(env.Variant, app.VariantActivities)), "Dashboard variant (activities|tasks)")
	cmd.PersistentFlags().BoolVar(&root.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().BoolVarP(&root.Yes, "yes", "y", false, "Skip confirmation prompts")

	cmd.AddCommand(newActivitiesCmd(root))
	cmd.AddCommand(newTasksCmd(root))
	cmd.AddCommand(newThemeCmd(root))
	cmd.AddCommand(newObjectivesCmd(root))

	return cmd
}

func (root *App) config(v app.Variant) (config.Config, error) {
	variant := root.Variant
	if v != "" {
		variant = string(v)
	}
	return config.Resolve(root.Dir, root.Backend, variant, root.Debug)
}

// open builds the App. A non-empty v overrides --variant for commands bound to one list.
func (root *App) open(v app.Variant) (*app.App, error) {
	cfg, err := root.config(v)
	if err != nil {
		return nil, err
	}
	return cfg.Open()
}

func runTUI(root *App) error {
	cfg, err := root.config("")
	if err != nil {
		return err
	}
	a, err := cfg.Open()
	if err != nil {
		return err
	}
	defer a.Close()

	var opts tui.Options
	if cfg.Debug {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return err
		}
		opts.LogPath = cfg.DebugLogPath()
	}
	return tui.Run(a, opts)
}

func orDefault[S ~string](v, d S) S {
	if v == "" {
		return d
	}
	return v
}

func writeOut(cmd *cobra.Command, root *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, root.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
