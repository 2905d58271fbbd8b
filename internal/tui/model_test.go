package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okardan/tumble/internal/core/assets"
	"github.com/okardan/tumble/internal/core/config"
	"github.com/okardan/tumble/internal/core/roll"
)

// collectMsgs executes a command tree and returns the produced messages in
// order, flattening batches.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(t, c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// pump feeds command results back into Update until the model goes idle,
// driving a full roll animation synchronously.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for cmd != nil {
		msgs := collectMsgs(t, cmd)
		cmd = nil
		for _, msg := range msgs {
			var next tea.Cmd
			m, next = m.Update(msg)
			if next != nil {
				require.Nil(t, cmd, "expected at most one pending command")
				cmd = next
			}
		}
	}
	return m
}

func newTestModel(t *testing.T, src roll.Source) Model {
	t.Helper()

	faces, err := assets.Load("")
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Animation.IntervalMS = 10 // keep animation pumps fast

	return New(Options{
		Config: &cfg,
		Faces:  faces,
		Source: src,
		Logger: zerolog.Nop(),
	})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_RollKeyDrivesFullAnimation(t *testing.T) {
	m := newTestModel(t, func() roll.Face { return 4 })

	updated, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd, "roll should schedule the first animation step")

	final := pump(t, updated, cmd).(Model)

	assert.False(t, final.controller.Busy())
	assert.Equal(t, roll.Face(4), final.panel.face)
	assert.Equal(t, []roll.Face{4}, final.panel.recent)
	assert.True(t, final.panel.triggerEnabled)
	assert.Equal(t, 1, final.controller.History().Len())
}

func TestModel_RollWhileBusyIsDropped(t *testing.T) {
	m := newTestModel(t, func() roll.Face { return 2 })

	busy, first := m.Update(keyMsg("r"))
	require.NotNil(t, first)
	require.True(t, busy.(Model).controller.Busy())

	// A second request mid-animation schedules nothing and changes nothing.
	busy, second := busy.Update(keyMsg("r"))
	assert.Nil(t, second)
	assert.Equal(t, 0, busy.(Model).controller.History().Len())

	final := pump(t, busy, first).(Model)
	assert.Equal(t, 1, final.controller.History().Len())
}

func TestModel_SequentialRollsAccumulateHistory(t *testing.T) {
	next := roll.Face(0)
	m := newTestModel(t, func() roll.Face {
		next++
		if next > roll.Sides {
			next = 1
		}
		return next
	})

	var model tea.Model = m
	for i := 0; i < 6; i++ {
		updated, cmd := model.Update(keyMsg("r"))
		require.NotNil(t, cmd)
		model = pump(t, updated, cmd)
	}

	final := model.(Model)
	assert.Equal(t, 6, final.controller.History().Len())
	assert.Len(t, final.panel.recent, 5)
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestModel_ViewRendersPanels(t *testing.T) {
	m := newTestModel(t, nil)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := sized.(Model).View()

	assert.Contains(t, view, "tumble")
	assert.Contains(t, view, "Roll")
	assert.Contains(t, view, "●") // starting face artwork
	assert.Contains(t, view, "Roll history")
}

func TestModel_ViewShowsStatusLine(t *testing.T) {
	m := newTestModel(t, nil)
	require.NotContains(t, m.View(), "silently")

	m.panel.status = "no audio player found, rolling silently"
	assert.Contains(t, m.View(), "rolling silently")
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	require.False(t, m.help.ShowAll)

	updated, _ := m.Update(keyMsg("?"))
	assert.True(t, updated.(Model).help.ShowAll)

	updated, _ = updated.Update(keyMsg("?"))
	assert.False(t, updated.(Model).help.ShowAll)
}
