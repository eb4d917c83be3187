package cli

import (
	"actlog/internal/app"
	"actlog/internal/record"
	"actlog/internal/recordstore"

	"github.com/spf13/cobra"
)

func newActivitiesCmd(root *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "Activity record commands",
	}
	cmd.AddCommand(newActivitiesListCmd(root))
	cmd.AddCommand(newActivitiesAddCmd(root))
	cmd.AddCommand(newActivitiesUpdateCmd(root))
	cmd.AddCommand(newActivitiesDeleteCmd(root))
	cmd.AddCommand(newResetCmd(root, app.VariantActivities))
	return cmd
}

func newActivitiesListCmd(root *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open(app.VariantActivities)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			return writeOut(cmd, root, map[string]any{"data": a.Activities.Records()})
		},
	}
}

func activityFlags(cmd *cobra.Command, d *record.ActivityDraft) {
	cmd.Flags().StringVar(&d.Date, "date", "", "Date (e.g. 2024-08-12)")
	cmd.Flags().StringVar(&d.Activity, "activity", "", "Activity name")
	cmd.Flags().StringVar(&d.Person, "person", "", "Person in charge")
	cmd.Flags().StringVar(&d.Evaluation, "evaluation", "", "Evaluation (Pending|Ongoing|Successful|Needs Improvement|Cancelled)")
}

func newActivitiesAddCmd(root *App) *cobra.Command {
	var d record.ActivityDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open(app.VariantActivities)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()
			rec, err := a.Activities.Add(d)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": rec})
		},
	}
	activityFlags(cmd, &d)
	return cmd
}

func newActivitiesUpdateCmd(root *App) *cobra.Command {
	var d record.ActivityDraft

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an activity; omitted flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := root.open(app.VariantActivities)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()

			cur, ok := a.Activities.Get(id)
			if !ok {
				return writeErr(cmd, &recordstore.NotFoundError{ID: id})
			}
			next := record.ActivityDraftOf(cur)
			flags := cmd.Flags()
			if flags.Changed("date") {
				next.Date = d.Date
			}
			if flags.Changed("activity") {
				next.Activity = d.Activity
			}
			if flags.Changed("person") {
				next.Person = d.Person
			}
			if flags.Changed("evaluation") {
				next.Evaluation = d.Evaluation
			}

			rec, err := a.Activities.Update(id, next)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, root, map[string]any{"data": rec})
		},
	}
	activityFlags(cmd, &d)
	return cmd
}

func newActivitiesDeleteCmd(root *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity (asks first unless --yes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			a, err := root.open(app.VariantActivities)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()

			req, err := a.ActivityForm.RequestDelete(id)
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

// newResetCmd wipes one variant's records.
func newResetCmd(root *App, v app.Variant) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all " + string(v) + " permanently (asks first unless --yes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.open(v)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer a.Close()

			removed := a.Count()
			done, err := resolve(cmd, root, a, a.RequestReset())
			if err != nil {
				return writeErr(cmd, err)
			}
			if !done {
				removed = 0
			}
			return writeOut(cmd, root, map[string]any{"data": map[string]any{"variant": v, "reset": done, "removed": removed}})
		},
	}
}
