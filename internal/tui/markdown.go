package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdMu sync.Mutex
	// Rendered output keyed by style and wrap width. The markdown is static, so the
	// cache never needs invalidating.
	mdCache = map[string]string{}
)

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	if style == "dark" {
		return styles.DarkStyleConfig
	}
	return styles.LightStyleConfig
}

// renderMarkdown renders md with a fixed style picked from the theme. WithAutoStyle is
// avoided: it queries the terminal, which can block inside the alt screen.
func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width) + ":" + md

	mdMu.Lock()
	defer mdMu.Unlock()
	if out, ok := mdCache[key]; ok {
		return out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	out = strings.TrimRight(out, "\n")
	mdCache[key] = out
	return out
}

// RenderObjectives renders the objectives panel for non-interactive output.
func RenderObjectives(md string, width int, dark bool) string {
	lipgloss.SetHasDarkBackground(dark)
	return renderMarkdown(md, width)
}
