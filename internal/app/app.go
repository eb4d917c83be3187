// Package app is the explicit state container: both record stores, the theme flag, the
// view selector and the form controllers, all mirrored into one kv.Store. Presentation
// layers (the TUI and the CLI) hold an *App and call into it; they keep no record state
// of their own.
package app

import (
	"errors"
	"fmt"
	"strings"

	"actlog/internal/confirm"
	"actlog/internal/form"
	"actlog/internal/kv"
	"actlog/internal/prefs"
	"actlog/internal/record"
	"actlog/internal/recordstore"
	"actlog/internal/view"
)

// Persisted keys.
const (
	ActivitiesKey = "schoolSystemData"
	TasksKey      = "todoItems"
	DarkModeKey   = "darkMode"
)

// Variant selects which record list the dashboard works with.
type Variant string

const (
	VariantActivities Variant = "activities"
	VariantTasks      Variant = "tasks"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantActivities:
		return VariantActivities, nil
	case VariantTasks:
		return VariantTasks, nil
	default:
		return "", fmt.Errorf("unknown variant: %s (want activities|tasks)", s)
	}
}

type (
	Activities   = recordstore.Store[record.Activity, record.ActivityDraft]
	Tasks        = recordstore.Store[record.Task, record.TaskDraft]
	ActivityForm = form.Controller[record.Activity, record.ActivityDraft]
	TaskForm     = form.Controller[record.Task, record.TaskDraft]
)

var resetPrompt = confirm.Prompt{
	Title:        "Wipe Database?",
	Text:         "Delete all records from the database permanently.",
	ConfirmLabel: "Yes, Wipe",
	DoneTitle:    "Database Reset",
	DoneText:     "All records have been removed.",
	DeclinedText: "The database was left as it was.",
}

type App struct {
	KV      kv.Store
	Variant Variant

	Activities   *Activities
	Tasks        *Tasks
	ActivityForm *ActivityForm
	TaskForm     *TaskForm
	Theme        *prefs.Theme
	View         *view.Selector
	Gate         *confirm.Gate
}

// New builds and hydrates every component from s. Load failures are soft: missing or
// malformed data starts empty.
func New(s kv.Store, v Variant) *App {
	ids := record.NewIDSource()
	gate := &confirm.Gate{}
	a := &App{
		KV:         s,
		Variant:    v,
		Activities: recordstore.New[record.Activity, record.ActivityDraft](s, ActivitiesKey, ids),
		Tasks:      recordstore.New[record.Task, record.TaskDraft](s, TasksKey, ids),
		Theme:      prefs.NewTheme(s, DarkModeKey),
		View:       &view.Selector{},
		Gate:       gate,
	}
	a.ActivityForm = form.New[record.Activity, record.ActivityDraft](a.Activities, gate, record.ActivityDraftOf, form.ActivityMessages)
	a.TaskForm = form.New[record.Task, record.TaskDraft](a.Tasks, gate, record.TaskDraftOf, form.TaskMessages)

	a.Activities.Load()
	a.Tasks.Load()
	return a
}

// LoadTheme reads the theme flag and runs its presentation hooks. It is separate from
// New so callers can register hooks first.
func (a *App) LoadTheme() bool { return a.Theme.Load() }

func (a *App) ToggleTheme() (bool, form.Notice, error) {
	dark, err := a.Theme.Toggle()
	if err != nil {
		return dark, form.Notice{Kind: form.Error, Title: "Not Saved", Text: fmt.Sprintf("The theme changed but could not be saved: %v", err)}, err
	}
	mode := "Light"
	if dark {
		mode = "Dark"
	}
	return dark, form.Notice{Kind: form.Info, Title: mode + " Mode", Text: mode + " mode enabled."}, nil
}

// ToggleTask flips a task's completion.
func (a *App) ToggleTask(id int64) (record.Task, form.Notice, error) {
	t, err := a.Tasks.Patch(id, record.ToggleCompleted)
	var pe *kv.PersistenceError
	switch {
	case errors.As(err, &pe):
		return t, form.Notice{Kind: form.Error, Title: "Not Saved", Text: pe.Error()}, err
	case err != nil:
		return t, form.Notice{Kind: form.Error, Title: "Error", Text: err.Error()}, err
	}
	state := "incomplete"
	if t.Completed {
		state = "complete"
	}
	return t, form.Notice{Kind: form.Success, Title: "Updated!", Text: fmt.Sprintf("%q marked %s.", t.Text, state)}, nil
}

// RequestReset asks for confirmation before wiping the active variant's records.
func (a *App) RequestReset() confirm.Request {
	return a.Gate.Request(resetPrompt, a.reset)
}

func (a *App) reset() error {
	if a.Variant == VariantTasks {
		a.TaskForm.Cancel()
		return a.Tasks.Clear()
	}
	a.ActivityForm.Cancel()
	return a.Activities.Clear()
}

// Confirm runs the pending delete or reset for token.
func (a *App) Confirm(token string) (form.Notice, error) {
	return form.Confirm(a.Gate, token)
}

func (a *App) Decline(token string) {
	a.Gate.Decline(token)
}

// Pending returns the confirmation currently waiting for an answer.
func (a *App) Pending() (confirm.Request, bool) {
	return a.Gate.Pending()
}

// Count returns how many records the active variant holds.
func (a *App) Count() int {
	if a.Variant == VariantTasks {
		return a.Tasks.Len()
	}
	return a.Activities.Len()
}

func (a *App) Close() error {
	return a.KV.Close()
}
