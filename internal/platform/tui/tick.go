// Package tui provides the Bubble Tea integration for the merge game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// WalkTickMsg advances the track replay by one point. Gen ties the
// message to the walk activation that scheduled it, so ticks from a
// superseded activation are dropped instead of compounding the rate.
type WalkTickMsg struct {
	Time time.Time
	Gen  int
}

// walkTickCmd returns a Bubble Tea command that sends walk ticks at the
// given interval.
func walkTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return WalkTickMsg{Time: t, Gen: gen}
	})
}
