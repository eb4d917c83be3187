package tui

import (
	"time"

	"actlog/internal/app"
	"actlog/internal/confirm"
	"actlog/internal/form"
	"actlog/internal/view"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type statusExpiredMsg struct{}

type model struct {
	app  *app.App
	keys keyMap
	help help.Model

	table  table.Model
	rowIDs []int64

	// Dashboard form. For activities the fourth field is the evaluation picker, which
	// is not a text input.
	inputs     []textinput.Model
	labels     []string
	evaluation string
	formActive bool
	field      int

	status       form.Notice
	statusExpiry time.Time
	now          func() time.Time

	width  int
	height int
}

func newModel(a *app.App) model {
	m := model{
		app:  a,
		keys: defaultKeys(),
		help: help.New(),
		now:  time.Now,
	}
	m.setupForm()
	m.setupTable()
	m.refreshRows()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) tasks() bool { return m.app.Variant == app.VariantTasks }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusExpiredMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustLayout()
		return m, nil

	case tea.KeyMsg:
		if req, ok := m.app.Pending(); ok {
			return m.handleConfirmKeys(msg, req)
		}
		if m.formActive && m.app.View.Current() == view.Dashboard {
			return m.handleFormKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab1):
		m.app.View.Select(string(view.Dashboard))
		return m, nil
	case key.Matches(msg, m.keys.Tab2):
		m.app.View.Select(string(view.Objectives))
		return m, nil
	case key.Matches(msg, m.keys.Tab3):
		m.app.View.Select(string(view.Settings))
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.app.View.Next()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.app.View.Prev()
		return m, nil
	}

	switch m.app.View.Current() {
	case view.Dashboard:
		return m.handleDashboardKeys(msg)
	case view.Settings:
		return m.handleSettingsKeys(msg)
	}
	return m, nil
}

func (m model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.table, _ = m.table.Update(msg)
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.formActive = true
		cmd := m.focusField(0)
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		if err := m.beginEdit(id); err != nil {
			cmd := m.notify(form.Notice{Kind: form.Error, Title: "Error", Text: err.Error()})
			return m, cmd
		}
		m.loadDraft()
		m.formActive = true
		cmd := m.focusField(0)
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		if err := m.requestDelete(id); err != nil {
			cmd := m.notify(form.Notice{Kind: form.Error, Title: "Error", Text: err.Error()})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if !m.tasks() {
			return m, nil
		}
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		_, n, _ := m.app.ToggleTask(id)
		m.refreshRows()
		cmd := m.notify(n)
		return m, cmd
	}
	return m, nil
}

func (m model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Theme):
		_, n, _ := m.app.ToggleTheme()
		cmd := m.notify(n)
		return m, cmd
	case key.Matches(msg, m.keys.Reset):
		m.app.RequestReset()
	}
	return m, nil
}

func (m model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		editing := m.editing()
		m.cancelEdit()
		m.loadDraft()
		m.blurAll()
		m.formActive = false
		if editing {
			cmd := m.notify(form.Notice{Kind: form.Info, Title: "Cancelled", Text: "Edit cancelled"})
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		n, err := m.submit()
		m.refreshRows()
		if err == nil || !isValidation(err) {
			m.loadDraft()
			m.blurAll()
			m.formActive = false
		}
		cmd := m.notify(n)
		return m, cmd

	case key.Matches(msg, m.keys.NextFld):
		cmd := m.focusField((m.field + 1) % m.fieldCount())
		return m, cmd

	case key.Matches(msg, m.keys.PrevFld):
		cmd := m.focusField((m.field - 1 + m.fieldCount()) % m.fieldCount())
		return m, cmd
	}

	if m.field >= len(m.inputs) {
		// Evaluation picker.
		switch {
		case key.Matches(msg, m.keys.CycleFwd):
			m.cycleEvaluation(1)
		case key.Matches(msg, m.keys.CycleBwd):
			m.cycleEvaluation(-1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	m.syncDraft()
	return m, cmd
}

func (m model) handleConfirmKeys(msg tea.KeyMsg, req confirm.Request) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Yes):
		n, _ := m.app.Confirm(req.Token)
		m.refreshRows()
		if !m.editing() {
			m.loadDraft()
		}
		cmd := m.notify(n)
		return m, cmd
	case key.Matches(msg, m.keys.No):
		m.app.Decline(req.Token)
		cmd := m.notify(form.Notice{Kind: form.Info, Title: req.DeclinedTitle, Text: req.DeclinedText})
		return m, cmd
	}
	return m, nil
}

func (m *model) notify(n form.Notice) tea.Cmd {
	if n.Title == "" && n.Text == "" {
		return nil
	}
	m.status = n
	m.statusExpiry = m.now().Add(statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusExpiredMsg{} })
}

func (m *model) adjustLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	tableHeight := m.height - 24
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)
	m.help.Width = m.width
}
