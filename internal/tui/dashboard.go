package tui

import (
	"errors"

	"actlog/internal/form"
	"actlog/internal/record"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) setupForm() {
	if m.tasks() {
		m.labels = []string{"Task"}
	} else {
		m.labels = []string{"Date", "Activity Name", "Person In Charge"}
	}
	placeholders := map[string]string{
		"Date":             "YYYY-MM-DD",
		"Activity Name":    "e.g. Foundation Day",
		"Person In Charge": "e.g. Dr. Santos",
		"Task":             "What needs doing?",
	}

	m.inputs = make([]textinput.Model, len(m.labels))
	for i, label := range m.labels {
		ti := textinput.New()
		ti.Placeholder = placeholders[label]
		ti.CharLimit = 120
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.loadDraft()
}

func (m *model) setupTable() {
	var cols []table.Column
	if m.tasks() {
		cols = []table.Column{
			{Title: "Done", Width: 6},
			{Title: "Task", Width: 60},
		}
	} else {
		cols = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Activity Name", Width: 30},
			{Title: "Person In Charge", Width: 22},
			{Title: "Evaluation", Width: 12},
		}
	}
	m.table = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.table.SetStyles(tableStyles())
}

// refreshRows rebuilds the table from the store. Cells stay plain text: the table
// truncates by byte-ish width and would cut ANSI sequences in half.
func (m *model) refreshRows() {
	var rows []table.Row
	var ids []int64
	if m.tasks() {
		for _, t := range m.app.Tasks.Records() {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			rows = append(rows, table.Row{mark, t.Text})
			ids = append(ids, t.ID)
		}
	} else {
		for _, a := range m.app.Activities.Records() {
			rows = append(rows, table.Row{a.Date, a.Activity, a.Person, evaluationLabel(a.Evaluation)})
			ids = append(ids, a.ID)
		}
	}
	m.table.SetRows(rows)
	m.rowIDs = ids
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func evaluationLabel(ev string) string {
	if ev == "" {
		return "N/A"
	}
	return ev
}

func (m model) selectedID() (int64, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.rowIDs) {
		return 0, false
	}
	return m.rowIDs[c], true
}

func (m model) fieldCount() int {
	if m.tasks() {
		return len(m.inputs)
	}
	return len(m.inputs) + 1
}

func (m *model) focusField(i int) tea.Cmd {
	m.field = i
	m.blurAll()
	if i < len(m.inputs) {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *model) cycleEvaluation(dir int) {
	m.evaluation = record.NextEvaluation(m.evaluation, dir)
	m.syncDraft()
}

// syncDraft copies the inputs into the controller's draft.
func (m *model) syncDraft() {
	if m.tasks() {
		m.app.TaskForm.SetDraft(record.TaskDraft{Text: m.inputs[0].Value()})
		return
	}
	m.app.ActivityForm.SetDraft(record.ActivityDraft{
		Date:       m.inputs[0].Value(),
		Activity:   m.inputs[1].Value(),
		Person:     m.inputs[2].Value(),
		Evaluation: m.evaluation,
	})
}

// loadDraft copies the controller's draft into the inputs.
func (m *model) loadDraft() {
	if m.tasks() {
		m.inputs[0].SetValue(m.app.TaskForm.Draft().Text)
		return
	}
	d := m.app.ActivityForm.Draft()
	m.inputs[0].SetValue(d.Date)
	m.inputs[1].SetValue(d.Activity)
	m.inputs[2].SetValue(d.Person)
	m.evaluation = d.Evaluation
}

func (m model) editing() bool {
	if m.tasks() {
		_, ok := m.app.TaskForm.EditingID()
		return ok
	}
	_, ok := m.app.ActivityForm.EditingID()
	return ok
}

func (m model) beginEdit(id int64) error {
	if m.tasks() {
		return m.app.TaskForm.BeginEdit(id)
	}
	return m.app.ActivityForm.BeginEdit(id)
}

func (m model) cancelEdit() {
	if m.tasks() {
		m.app.TaskForm.Cancel()
		return
	}
	m.app.ActivityForm.Cancel()
}

func (m model) requestDelete(id int64) error {
	var err error
	if m.tasks() {
		_, err = m.app.TaskForm.RequestDelete(id)
	} else {
		_, err = m.app.ActivityForm.RequestDelete(id)
	}
	return err
}

func (m model) submit() (form.Notice, error) {
	if m.tasks() {
		return m.app.TaskForm.Submit()
	}
	return m.app.ActivityForm.Submit()
}

func isValidation(err error) bool {
	var ve *record.ValidationError
	return errors.As(err, &ve)
}
