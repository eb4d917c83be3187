// Package form is the add/edit controller that sits between field input and a record
// store. It has two states: Composing (the default) and Editing a specific record.
package form

import (
	"errors"
	"fmt"

	"actlog/internal/confirm"
	"actlog/internal/kv"
	"actlog/internal/record"
	"actlog/internal/recordstore"
)

// Mode is the controller state.
type Mode int

const (
	Composing Mode = iota
	Editing
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	default:
		return "composing"
	}
}

type Kind int

const (
	Info Kind = iota
	Success
	Error
)

// Notice is the user-facing result of an action.
type Notice struct {
	Kind  Kind
	Title string
	Text  string
}

// Records is the subset of recordstore.Store the controller drives.
type Records[T any, D any] interface {
	Add(draft D) (T, error)
	Update(id int64, draft D) (T, error)
	Delete(id int64) error
	Get(id int64) (T, bool)
}

// Messages are the texts of the notices and the delete prompt.
type Messages struct {
	AddedTitle, AddedText     string
	UpdatedTitle, UpdatedText string
	MissingTitle, MissingText string
	Delete                    confirm.Prompt
}

var ActivityMessages = Messages{
	AddedTitle:   "Added",
	AddedText:    "New activity record created.",
	UpdatedTitle: "Updated!",
	UpdatedText:  "Activity details have been updated.",
	MissingTitle: "Missing Fields",
	MissingText:  "Please fill in Date, Activity, and Person in Charge.",
	Delete: confirm.Prompt{
		Title:        "Delete Record?",
		Text:         "This action cannot be undone.",
		ConfirmLabel: "Yes, delete it!",
		DoneTitle:    "Deleted!",
		DoneText:     "Record has been removed.",
		DeclinedText: "The record was not deleted.",
	},
}

var TaskMessages = Messages{
	AddedTitle:   "Added",
	AddedText:    "New task added.",
	UpdatedTitle: "Updated!",
	UpdatedText:  "Task has been updated.",
	MissingTitle: "Missing Fields",
	MissingText:  "Please enter the task text.",
	Delete: confirm.Prompt{
		Title:        "Delete Task?",
		Text:         "This action cannot be undone.",
		ConfirmLabel: "Yes, delete it!",
		DoneTitle:    "Deleted!",
		DoneText:     "Task has been removed.",
		DeclinedText: "The task was not deleted.",
	},
}

// Controller is not safe for concurrent use.
type Controller[T any, D any] struct {
	records Records[T, D]
	gate    *confirm.Gate
	draftOf func(T) D
	msg     Messages

	mode      Mode
	editingID int64
	draft     D
}

// New returns a controller in the Composing state with an empty draft. draftOf loads
// a record's values into a draft for editing.
func New[T any, D any](records Records[T, D], gate *confirm.Gate, draftOf func(T) D, msg Messages) *Controller[T, D] {
	if gate == nil {
		gate = &confirm.Gate{}
	}
	return &Controller[T, D]{records: records, gate: gate, draftOf: draftOf, msg: msg}
}

func (c *Controller[T, D]) Mode() Mode { return c.mode }

// EditingID returns the id being edited, if any.
func (c *Controller[T, D]) EditingID() (int64, bool) {
	return c.editingID, c.mode == Editing
}

func (c *Controller[T, D]) Draft() D { return c.draft }

// SetDraft records field input. It never touches the store.
func (c *Controller[T, D]) SetDraft(d D) { c.draft = d }

// BeginEdit moves to Editing(id) with the draft loaded from the record.
func (c *Controller[T, D]) BeginEdit(id int64) error {
	rec, ok := c.records.Get(id)
	if !ok {
		return &recordstore.NotFoundError{ID: id}
	}
	c.mode = Editing
	c.editingID = id
	c.draft = c.draftOf(rec)
	return nil
}

// Cancel discards the draft and returns to Composing.
func (c *Controller[T, D]) Cancel() { c.reset() }

// Submit adds (Composing) or updates (Editing) from the current draft. On a validation
// error the state and draft are left as they were.
func (c *Controller[T, D]) Submit() (Notice, error) {
	var err error
	if c.mode == Editing {
		_, err = c.records.Update(c.editingID, c.draft)
	} else {
		_, err = c.records.Add(c.draft)
	}

	var ve *record.ValidationError
	var pe *kv.PersistenceError
	switch {
	case err == nil:
	case errors.As(err, &ve):
		return Notice{Kind: Error, Title: c.msg.MissingTitle, Text: c.msg.MissingText}, err
	case errors.As(err, &pe):
		// The store kept the change; only the write-through failed.
		c.reset()
		return Notice{Kind: Error, Title: "Not Saved", Text: fmt.Sprintf("The change was applied but could not be saved: %v", pe.Err)}, err
	case recordstore.IsNotFound(err):
		c.reset()
		return Notice{Kind: Error, Title: "Not Found", Text: "The record being edited no longer exists."}, err
	default:
		return Notice{Kind: Error, Title: "Error", Text: err.Error()}, err
	}

	n := Notice{Kind: Success, Title: c.msg.AddedTitle, Text: c.msg.AddedText}
	if c.mode == Editing {
		n = Notice{Kind: Success, Title: c.msg.UpdatedTitle, Text: c.msg.UpdatedText}
	}
	c.reset()
	return n, nil
}

// RequestDelete asks for confirmation before deleting id. Nothing changes until the
// returned token is confirmed.
func (c *Controller[T, D]) RequestDelete(id int64) (confirm.Request, error) {
	if _, ok := c.records.Get(id); !ok {
		return confirm.Request{}, &recordstore.NotFoundError{ID: id}
	}
	return c.gate.Request(c.msg.Delete, func() error { return c.deleteNow(id) }), nil
}

// Confirm runs a pending delete. Deleting the record that is open in the form returns
// the controller to Composing with an empty draft.
func (c *Controller[T, D]) Confirm(token string) (Notice, error) {
	return Confirm(c.gate, token)
}

// Confirm runs whichever action is pending under token on g and turns the outcome into a
// notice. The delete and reset flows share it.
func Confirm(g *confirm.Gate, token string) (Notice, error) {
	req, err := g.Confirm(token)
	var pe *kv.PersistenceError
	switch {
	case errors.As(err, &pe):
		return Notice{Kind: Error, Title: "Not Saved", Text: fmt.Sprintf("The change was applied but could not be saved: %v", pe.Err)}, err
	case err != nil:
		return Notice{Kind: Error, Title: "Error", Text: err.Error()}, err
	}
	return Notice{Kind: Success, Title: req.DoneTitle, Text: req.DoneText}, nil
}

// Decline drops a pending delete.
func (c *Controller[T, D]) Decline(token string) {
	c.gate.Decline(token)
}

func (c *Controller[T, D]) deleteNow(id int64) error {
	err := c.records.Delete(id)
	if c.mode == Editing && c.editingID == id {
		if _, still := c.records.Get(id); !still {
			c.reset()
		}
	}
	return err
}

func (c *Controller[T, D]) reset() {
	var zero D
	c.mode = Composing
	c.editingID = 0
	c.draft = zero
}
