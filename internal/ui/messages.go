package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/ClinicInfo/internal/roster"
)

// reloadDelay lets a burst of write events settle before the roster is
// read again
const reloadDelay = 300 * time.Millisecond

// Messages shared by the browser model
type rosterLoadedMsg struct {
	roster *roster.Roster
}

type rosterErrorMsg struct {
	err error
}

// rosterChangedMsg reports a write to the watched workbook
type rosterChangedMsg struct {
	path string
}

// reloadMsg fires reloadDelay after a change; only the newest one reloads
type reloadMsg struct {
	seq int
}

type watchErrorMsg struct {
	err error
}

// LoadRosterCommand creates a tea command that loads the roster workbook
func LoadRosterCommand(path string, opts []roster.LoadOption) tea.Cmd {
	return func() tea.Msg {
		r, err := roster.Load(path, opts...)
		if err != nil {
			return rosterErrorMsg{err: err}
		}
		return rosterLoadedMsg{roster: r}
	}
}

func scheduleReload(seq int) tea.Cmd {
	return tea.Tick(reloadDelay, func(time.Time) tea.Msg {
		return reloadMsg{seq: seq}
	})
}
