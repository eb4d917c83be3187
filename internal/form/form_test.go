package form

import (
	"errors"
	"testing"

	"actlog/internal/confirm"
	"actlog/internal/kv"
	"actlog/internal/record"
	"actlog/internal/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityForm = Controller[record.Activity, record.ActivityDraft]

func newActivityForm(t *testing.T) (*activityForm, *recordstore.Store[record.Activity, record.ActivityDraft]) {
	t.Helper()
	s := recordstore.New[record.Activity, record.ActivityDraft](kv.NewMemory(nil), "schoolSystemData", nil)
	s.Load()
	c := New[record.Activity, record.ActivityDraft](s, &confirm.Gate{}, record.ActivityDraftOf, ActivityMessages)
	return c, s
}

var orientation = record.ActivityDraft{Date: "2024-01-01", Activity: "Orientation", Person: "J. Cruz", Evaluation: "Pending"}

func TestSubmit_AddResetsDraft(t *testing.T) {
	c, s := newActivityForm(t)
	c.SetDraft(orientation)
	assert.Equal(t, 0, s.Len(), "field input does not touch the store")

	n, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, Success, n.Kind)
	assert.Equal(t, "Added", n.Title)
	assert.Equal(t, Composing, c.Mode())
	assert.True(t, c.Draft().IsZero())
	assert.Equal(t, 1, s.Len())
}

func TestSubmit_ValidationKeepsDraft(t *testing.T) {
	c, s := newActivityForm(t)
	partial := record.ActivityDraft{Date: "2024-01-01", Activity: "Orientation"}
	c.SetDraft(partial)

	n, err := c.Submit()
	var ve *record.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"person"}, ve.Fields)
	assert.Equal(t, Error, n.Kind)
	assert.Equal(t, "Missing Fields", n.Title)
	assert.Equal(t, partial, c.Draft())
	assert.Equal(t, Composing, c.Mode())
	assert.Equal(t, 0, s.Len())
}

func TestEdit_SubmitUpdatesAndReturnsToComposing(t *testing.T) {
	c, s := newActivityForm(t)
	rec, err := s.Add(orientation)
	require.NoError(t, err)

	require.NoError(t, c.BeginEdit(rec.ID))
	id, editing := c.EditingID()
	assert.True(t, editing)
	assert.Equal(t, rec.ID, id)
	assert.Equal(t, orientation, c.Draft())

	d := c.Draft()
	d.Evaluation = "Successful"
	c.SetDraft(d)

	n, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Updated!", n.Title)
	assert.Equal(t, Composing, c.Mode())
	assert.True(t, c.Draft().IsZero())

	got, _ := s.Get(rec.ID)
	assert.Equal(t, "Successful", got.Evaluation)
	assert.Equal(t, 1, s.Len())
}

func TestEdit_ValidationStaysEditing(t *testing.T) {
	c, s := newActivityForm(t)
	rec, _ := s.Add(orientation)
	require.NoError(t, c.BeginEdit(rec.ID))
	c.SetDraft(record.ActivityDraft{Date: "2024-01-01"})

	_, err := c.Submit()
	assert.Error(t, err)
	assert.Equal(t, Editing, c.Mode())
	got, _ := s.Get(rec.ID)
	assert.Equal(t, "Orientation", got.Activity)
}

func TestEdit_CancelDiscards(t *testing.T) {
	c, s := newActivityForm(t)
	rec, _ := s.Add(orientation)
	require.NoError(t, c.BeginEdit(rec.ID))
	c.SetDraft(record.ActivityDraft{Date: "x", Activity: "y", Person: "z"})
	c.Cancel()

	assert.Equal(t, Composing, c.Mode())
	assert.True(t, c.Draft().IsZero())
	got, _ := s.Get(rec.ID)
	assert.Equal(t, "Orientation", got.Activity)
}

func TestBeginEdit_Missing(t *testing.T) {
	c, _ := newActivityForm(t)
	assert.True(t, recordstore.IsNotFound(c.BeginEdit(123)))
	assert.Equal(t, Composing, c.Mode())
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	c, s := newActivityForm(t)
	rec, _ := s.Add(orientation)

	req, err := c.RequestDelete(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delete Record?", req.Title)
	assert.Equal(t, 1, s.Len(), "nothing deleted before confirm")

	c.Decline(req.Token)
	assert.Equal(t, 1, s.Len())

	req, err = c.RequestDelete(rec.ID)
	require.NoError(t, err)
	n, err := c.Confirm(req.Token)
	require.NoError(t, err)
	assert.Equal(t, "Deleted!", n.Title)
	assert.Equal(t, 0, s.Len())

	_, err = c.RequestDelete(rec.ID)
	assert.True(t, recordstore.IsNotFound(err))
}

func TestDelete_RecordBeingEdited(t *testing.T) {
	c, s := newActivityForm(t)
	keep, _ := s.Add(record.ActivityDraft{Date: "d", Activity: "keep", Person: "p"})
	rec, _ := s.Add(orientation)

	require.NoError(t, c.BeginEdit(rec.ID))
	req, err := c.RequestDelete(rec.ID)
	require.NoError(t, err)
	_, err = c.Confirm(req.Token)
	require.NoError(t, err)

	assert.Equal(t, Composing, c.Mode())
	assert.True(t, c.Draft().IsZero())
	_, editing := c.EditingID()
	assert.False(t, editing)

	// Deleting some other record leaves an edit alone.
	other, _ := s.Add(orientation)
	require.NoError(t, c.BeginEdit(keep.ID))
	req, _ = c.RequestDelete(other.ID)
	_, err = c.Confirm(req.Token)
	require.NoError(t, err)
	assert.Equal(t, Editing, c.Mode())
}

func TestConfirm_UnknownToken(t *testing.T) {
	c, _ := newActivityForm(t)
	n, err := c.Confirm("nope")
	assert.ErrorIs(t, err, confirm.ErrUnknownToken)
	assert.Equal(t, Error, n.Kind)
}

func TestSubmit_UpdateAfterRecordVanished(t *testing.T) {
	c, s := newActivityForm(t)
	rec, _ := s.Add(orientation)
	require.NoError(t, c.BeginEdit(rec.ID))
	require.NoError(t, s.Delete(rec.ID))

	_, err := c.Submit()
	assert.True(t, recordstore.IsNotFound(err))
	assert.Equal(t, Composing, c.Mode())
}

type failingKV struct{ kv.Store }

func (failingKV) Set(string, string) error { return errors.New("quota exceeded") }

func TestSubmit_PersistenceErrorKeepsRecord(t *testing.T) {
	s := recordstore.New[record.Activity, record.ActivityDraft](failingKV{kv.NewMemory(nil)}, "schoolSystemData", nil)
	s.Load()
	c := New[record.Activity, record.ActivityDraft](s, nil, record.ActivityDraftOf, ActivityMessages)
	c.SetDraft(orientation)

	n, err := c.Submit()
	var pe *kv.PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Not Saved", n.Title)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Composing, c.Mode())
}

func TestTaskForm_EditKeepsCompletion(t *testing.T) {
	s := recordstore.New[record.Task, record.TaskDraft](kv.NewMemory(nil), "todoItems", nil)
	s.Load()
	c := New[record.Task, record.TaskDraft](s, nil, record.TaskDraftOf, TaskMessages)

	c.SetDraft(record.TaskDraft{Text: "Buy milk"})
	_, err := c.Submit()
	require.NoError(t, err)
	task := s.Records()[0]

	task, err = s.Patch(task.ID, record.ToggleCompleted)
	require.NoError(t, err)

	require.NoError(t, c.BeginEdit(task.ID))
	c.SetDraft(record.TaskDraft{Text: "Buy almond milk"})
	_, err = c.Submit()
	require.NoError(t, err)

	got, _ := s.Get(task.ID)
	assert.Equal(t, "Buy almond milk", got.Text)
	assert.True(t, got.Completed)
}
