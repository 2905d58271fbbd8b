package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// stepMsg carries a due animation callback back onto the event loop.
type stepMsg struct {
	fn func()
}

// scheduler bridges the roll controller's cooperative single-shot timer
// contract onto Bubble Tea's command system. Callbacks queued during a
// controller call are drained into tea.Tick commands by Update; each fires
// exactly once and re-enters the loop as a stepMsg, so step execution stays
// strictly sequential on the event-loop goroutine.
type scheduler struct {
	pending []tea.Cmd
}

// After queues fn to run once d has elapsed.
func (s *scheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return stepMsg{fn: fn}
	}))
}

// Drain returns the queued commands and clears the queue. It returns nil
// when nothing is pending.
func (s *scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
