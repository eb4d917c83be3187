package tui

import (
	"os"
	"strings"

	"actlog/internal/form"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Palette. Every color is adaptive so flipping lipgloss's dark-background flag re-themes
// the whole screen on the next render.
var (
	colorAccent   = ac("27", "39")
	colorAccentFg = ac("255", "229")
	colorActiveBg = ac("57", "57")
	colorTabBg    = ac("252", "236")
	colorMuted    = ac("240", "245")
	colorHeading  = ac("30", "86")
	colorBorder   = ac("250", "240")
	colorDanger   = ac("160", "196")
	colorWarning  = ac("136", "226")
	colorSuccess  = ac("28", "82")
	colorNeutral  = ac("238", "250")
)

var (
	tabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorTabBg).
			PaddingLeft(1).
			PaddingRight(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccentFg).
			Background(colorActiveBg).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeading)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	dangerCardStyle = cardStyle.BorderForeground(colorDanger)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDanger).
			Padding(1, 2)

	buttonStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorAccentFg).Background(colorActiveBg)
	dangerButtonStyle = buttonStyle.Background(colorDanger)
)

// evaluationStyle colors an evaluation badge.
func evaluationStyle(ev string) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch ev {
	case "Successful":
		return st.Foreground(colorSuccess)
	case "Pending":
		return st.Foreground(colorWarning)
	case "Cancelled":
		return st.Foreground(colorDanger)
	default:
		return st.Foreground(colorNeutral)
	}
}

func noticeStyle(k form.Kind) lipgloss.Style {
	switch k {
	case form.Success:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case form.Error:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorHeading)
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(colorHeading)
	s.Selected = s.Selected.
		Foreground(colorAccentFg).
		Background(colorActiveBg).
		Bold(false)
	return s
}

// applyTheme is the presentation side of the dark-mode preference.
func applyTheme(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// applyColorProfile honors NO_COLOR and otherwise keeps termenv's detected profile.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
