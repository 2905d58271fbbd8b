// Package tui implements the interactive dice view on Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/okardan/tumble/internal/core/assets"
	"github.com/okardan/tumble/internal/core/audio"
	"github.com/okardan/tumble/internal/core/config"
	"github.com/okardan/tumble/internal/core/roll"
)

// Options configures the TUI.
type Options struct {
	Config *config.Config
	Faces  *assets.FaceSet
	Player *audio.Player // may be nil (silent)
	Source roll.Source   // optional sampler override, used by tests
	Logger zerolog.Logger
}

// Model is the main Bubble Tea model.
type Model struct {
	keys KeyMap
	help help.Model

	controller *roll.Controller
	sched      *scheduler
	panel      *presenter
	faces      *assets.FaceSet

	width    int
	height   int
	quitting bool
}

// New creates the TUI model and wires the roll controller to it.
func New(opts Options) Model {
	panel := newPresenter(opts.Player, opts.Logger)
	sched := &scheduler{}

	controller := roll.NewController(panel, sched.After, roll.Options{
		Steps:        opts.Config.Animation.Steps,
		StepInterval: opts.Config.Animation.Interval(),
		DisplayLimit: opts.Config.History.Display,
		Source:       opts.Source,
	})

	return Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		controller: controller,
		sched:      sched,
		panel:      panel,
		faces:      opts.Faces,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stepMsg:
		// An animation timer fired; run the step on the event loop and
		// schedule whatever it armed next.
		msg.fn()
		return m, m.sched.Drain()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Roll):
		// Drop-on-busy: a request during an animation is silently ignored
		// and schedules nothing.
		m.controller.RequestRoll()
		return m, m.sched.Drain()
	}

	return m, nil
}
