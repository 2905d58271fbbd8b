package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/okardan/tumble/internal/core/assets"
	"github.com/okardan/tumble/internal/core/audio"
	"github.com/okardan/tumble/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	// flags
	noSound bool
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-sound",
			Usage:       "disable roll sound playback",
			Sources:     cli.EnvVars("TUMBLE_NO_SOUND"),
			Destination: &cmd.noSound,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; tumble needs an interactive terminal to draw in")
	}

	cfg := cmd.flags.Config

	// Face artwork is required to render anything at all, so a broken set is
	// fatal before the event loop starts.
	faces, err := assets.Load(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("load face artwork: %w", err)
	}

	// The sound asset is optional: a missing file or player degrades to
	// silent rolls inside the audio package.
	soundFile := cfg.Sound.File
	if cmd.noSound || !cfg.Sound.IsEnabled() {
		soundFile = ""
	}
	player := audio.New(soundFile, cfg.Sound.Command, log.With().Str("component", "audio").Logger())
	defer player.Close()

	m := tui.New(tui.Options{
		Config: cfg,
		Faces:  faces,
		Player: player,
		Logger: log.With().Str("component", "tui").Logger(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
