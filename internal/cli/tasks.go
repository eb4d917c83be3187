package cli

import (
	"actlog/internal/app"
	"actlog/internal/record"

	"github.com/spf13/cobra"
)

func newTasksCmd(root *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Task list commands",
	}
	cmd.AddCommand(newTasksListCmd(root))
	cmd.AddCommand(newTasksAddCmd(root))
	cmd.AddCommand(newTasksEditCmd(root))
	cmd.AddCommand(newTasksToggleCmd(root))
	cmd.AddCommand(newTasksDeleteCmd(root))
	cmd.AddCommand(newResetCmd(root, app.VariantTasks))
	return cmd
}

func newTasksListCmd(root *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open(app.VariantTasks)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			return writeOut(cmd, root, map[string]any{"data": a.Tasks.Records()})
		},
	}
}

func newTasksAddCmd(root *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open(app.VariantTasks)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			t, err := a.Tasks.Add(record.TaskDraft{Text: text})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": t})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Task text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newTasksEditCmd(root *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's text; completion is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := root.open(app.VariantTasks)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			t, err := a.Tasks.Update(id, record.TaskDraft{Text: text})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": t})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "New task text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newTasksToggleCmd(root *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a task between done and not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := root.open(app.VariantTasks)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			t, _, err := a.ToggleTask(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": t})
		},
	}
}

func newTasksDeleteCmd(root *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task (asks first unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := root.open(app.VariantTasks)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()

			req, err := a.TaskForm.RequestDelete(id)
			if err != nil {
				return writeErr(cmd, err)
			}
			done, err := resolve(cmd, root, a, req)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": map[string]any{"id": id, "deleted": done}})
		},
	}
}
