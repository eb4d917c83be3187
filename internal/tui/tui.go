// Package tui is the interactive terminal front end: three tabs over an *app.App, with a
// form and table on the dashboard and a modal for confirmations.
package tui

import (
	"errors"
	"io"
	"log"

	"actlog/internal/app"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// LogPath receives the standard logger while the program runs. Empty discards it,
	// since stderr writes would tear the alt screen.
	LogPath string
}

func Run(a *app.App, opts Options) error {
	applyColorProfile()

	prev := log.Writer()
	defer log.SetOutput(prev)
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "actlog")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	a.Theme.OnApply(applyTheme)
	a.LoadTheme()

	p := tea.NewProgram(newModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return flushDirty(a)
}

// flushDirty retries any write-through that failed during the session.
func flushDirty(a *app.App) error {
	var errs []error
	if a.Activities.Dirty() {
		errs = append(errs, a.Activities.Flush())
	}
	if a.Tasks.Dirty() {
		errs = append(errs, a.Tasks.Flush())
	}
	return errors.Join(errs...)
}
