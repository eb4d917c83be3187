package record

// Task is one entry of the personal task list.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (t Task) RecordID() int64 { return t.ID }

func (t Task) WithID(id int64) Task {
	t.ID = id
	return t
}

// ToggleCompleted flips Completed and leaves the text alone.
func ToggleCompleted(t Task) Task {
	t.Completed = !t.Completed
	return t
}

// TaskDraft is the form state for a Task. Completion is not part of the form; it is
// toggled directly on the record.
type TaskDraft struct {
	Text string `json:"text"`
}

func (d TaskDraft) Validate() error {
	return requireFields([2]string{"text", d.Text})
}

// Apply sets the text and keeps base's id and completion.
func (d TaskDraft) Apply(base Task) Task {
	base.Text = d.Text
	return base
}

func (d TaskDraft) IsZero() bool { return d == TaskDraft{} }

func TaskDraftOf(t Task) TaskDraft {
	return TaskDraft{Text: t.Text}
}
