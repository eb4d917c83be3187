package tui

import (
	"fmt"
	"strings"

	"actlog/internal/confirm"
	"actlog/internal/view"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m model) View() string {
	if req, ok := m.app.Pending(); ok {
		return m.renderConfirm(req)
	}

	var content string
	switch m.app.View.Current() {
	case view.Objectives:
		content = m.renderObjectives()
	case view.Settings:
		content = m.renderSettings()
	default:
		content = m.renderDashboard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		content,
		"",
		m.renderFooter(),
	)
}

func (m model) renderHeader() string {
	title := headerStyle.Render(view.HeaderTitle)
	sub := mutedStyle.Render(view.HeaderSubtitle + " · " + view.HeaderAddress)
	return lipgloss.JoinVertical(lipgloss.Left, title, sub, mutedStyle.Render(view.SidebarTitle), "")
}

func (m model) renderTabs() string {
	cur := m.app.View.Current()
	var tabs []string
	for i, t := range view.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Title())
		if t == cur {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderDashboard() string {
	var b strings.Builder
	if m.tasks() {
		b.WriteString(headerStyle.Render(view.TasksTitle))
	} else {
		b.WriteString(headerStyle.Render(view.DashboardTitle))
		b.WriteString("  " + mutedStyle.Render(view.DashboardSubtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n\n")

	if len(m.rowIDs) == 0 {
		b.WriteString(mutedStyle.Render(view.EmptyTable))
		return b.String()
	}
	b.WriteString(m.table.View())
	if detail := m.renderSelected(); detail != "" {
		b.WriteString("\n" + detail)
	}
	return b.String()
}

func (m model) renderForm() string {
	title := view.FormAddTitle
	if m.tasks() {
		title = "Add New Task"
	}
	if m.editing() {
		title = view.FormEditTitle
	}

	lines := []string{labelStyle.Render(title)}
	for i, label := range m.labels {
		lines = append(lines, m.fieldLabel(i, label)+" "+m.inputs[i].View())
	}
	if !m.tasks() {
		ev := mutedStyle.Render("Select Status...")
		if m.evaluation != "" {
			ev = evaluationStyle(m.evaluation).Render(m.evaluation)
		}
		lines = append(lines, m.fieldLabel(len(m.inputs), "Evaluation")+" ‹ "+ev+" ›")
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m model) fieldLabel(i int, label string) string {
	label = fmt.Sprintf("%-17s", label+":")
	if m.formActive && m.field == i {
		return activeTabStyle.Render(label)
	}
	return mutedStyle.Render(label)
}

// renderSelected shows the full selected record, with the evaluation colored.
func (m model) renderSelected() string {
	id, ok := m.selectedID()
	if !ok {
		return ""
	}
	if m.tasks() {
		t, ok := m.app.Tasks.Get(id)
		if !ok {
			return ""
		}
		state := evaluationStyle("Pending").Render("open")
		if t.Completed {
			state = evaluationStyle("Successful").Render("done")
		}
		return m.truncate(mutedStyle.Render("› ") + t.Text + "  " + state)
	}
	a, ok := m.app.Activities.Get(id)
	if !ok {
		return ""
	}
	ev := evaluationStyle(a.Evaluation).Render(evaluationLabel(a.Evaluation))
	return m.truncate(mutedStyle.Render("› ") + fmt.Sprintf("%s · %s · %s  ", a.Date, a.Activity, a.Person) + ev)
}

func (m model) renderObjectives() string {
	width := m.width - 4
	if width <= 0 {
		width = 80
	}
	return renderMarkdown(view.ObjectivesMarkdown, width)
}

func (m model) renderSettings() string {
	dark := m.app.Theme.Dark()
	mode := "Light"
	if dark {
		mode = "Dark"
	}

	prefs := cardStyle.Render(strings.Join([]string{
		labelStyle.Render(view.VisualPrefsTitle),
		"Current theme: " + mode,
		"",
		buttonStyle.Render(view.ThemeToggleLabel(dark)) + mutedStyle.Render("  (t)"),
	}, "\n"))

	danger := dangerCardStyle.Render(strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(colorDanger).Render(view.DangerZoneTitle),
		view.DangerZoneText,
		"",
		dangerButtonStyle.Render(view.ResetButton) + mutedStyle.Render("  (R)"),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(view.SettingsTitle), "", prefs, "", danger)
}

func (m model) renderFooter() string {
	var lines []string
	if m.status.Title != "" && m.now().Before(m.statusExpiry) {
		st := noticeStyle(m.status.Kind)
		lines = append(lines, m.truncate(st.Render(m.status.Title+": ")+m.status.Text))
	}
	lines = append(lines, m.help.ShortHelpView(m.helpBindings()))
	lines = append(lines, mutedStyle.Render(view.Footer))
	return strings.Join(lines, "\n")
}

func (m model) helpBindings() []key.Binding {
	k := m.keys
	switch {
	case m.app.View.Current() == view.Settings:
		return []key.Binding{k.Theme, k.Reset, k.Tab1, k.Quit}
	case m.app.View.Current() == view.Objectives:
		return []key.Binding{k.Tab1, k.Quit}
	case m.formActive && m.field >= len(m.inputs):
		return []key.Binding{k.CycleFwd, k.NextFld, k.Submit, k.Cancel}
	case m.formActive:
		return []key.Binding{k.NextFld, k.PrevFld, k.Submit, k.Cancel}
	case m.tasks():
		return []key.Binding{k.Up, k.Add, k.Edit, k.Toggle, k.Delete, k.Tab1, k.Quit}
	default:
		return []key.Binding{k.Up, k.Add, k.Edit, k.Delete, k.Tab1, k.Quit}
	}
}

func (m model) renderConfirm(req confirm.Request) string {
	box := modalStyle.Render(strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(colorDanger).Render(req.Title),
		"",
		req.Text,
		"",
		dangerButtonStyle.Render(req.ConfirmLabel) + "  " + buttonStyle.Render(req.CancelLabel),
		"",
		m.help.ShortHelpView([]key.Binding{m.keys.Yes, m.keys.No}),
	}, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// truncate clips a styled line to the window width without breaking escape codes.
func (m model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}
