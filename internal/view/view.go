// Package view selects which of the three panels is shown and carries their static copy.
package view

import "strings"

type Tab string

const (
	Dashboard  Tab = "dashboard"
	Objectives Tab = "objectives"
	Settings   Tab = "settings"
)

// Tabs is the navigation order.
var Tabs = []Tab{Dashboard, Objectives, Settings}

// Parse maps a tag to a Tab. Anything unrecognized is the dashboard.
func Parse(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case Objectives:
		return Objectives
	case Settings:
		return Settings
	default:
		return Dashboard
	}
}

func (t Tab) Title() string {
	switch t {
	case Objectives:
		return "System Objectives"
	case Settings:
		return "Settings"
	default:
		return "Dashboard"
	}
}

// Selector holds the current tab. The zero value shows the dashboard.
type Selector struct {
	cur Tab
}

func (s *Selector) Current() Tab {
	if s.cur == "" {
		return Dashboard
	}
	return s.cur
}

func (s *Selector) Select(tag string) Tab {
	s.cur = Parse(tag)
	return s.cur
}

func (s *Selector) Next() Tab { return s.step(1) }
func (s *Selector) Prev() Tab { return s.step(-1) }

func (s *Selector) step(dir int) Tab {
	cur := s.Current()
	for i, t := range Tabs {
		if t == cur {
			s.cur = Tabs[(i+dir+len(Tabs))%len(Tabs)]
			break
		}
	}
	return s.cur
}
