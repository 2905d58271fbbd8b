package tui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okardan/tumble/internal/core/audio"
	"github.com/okardan/tumble/internal/core/roll"
)

// presenter is the presentation adapter between the roll controller and the
// view. It records what the view needs to draw and forwards sound playback.
// Render and playback failures stop here: they are logged and never reach
// the roll sequence.
type presenter struct {
	logger zerolog.Logger
	player *audio.Player

	face           roll.Face
	recent         []roll.Face
	triggerEnabled bool
	status         string
}

func newPresenter(player *audio.Player, logger zerolog.Logger) *presenter {
	return &presenter{
		logger:         logger,
		player:         player,
		face:           1,
		triggerEnabled: true,
	}
}

// RenderFace displays a face. Invalid faces are dropped with a log entry and
// a status-line warning rather than corrupting the view.
func (p *presenter) RenderFace(f roll.Face) {
	if !f.Valid() {
		p.logger.Error().Int("face", int(f)).Msg("dropping render of invalid face")
		p.status = fmt.Sprintf("ignored invalid face %d", int(f))
		return
	}
	p.face = f
}

// PlayRollSound triggers sound playback. The player never blocks and
// swallows its own failures; a degraded player surfaces its warning on the
// status line.
func (p *presenter) PlayRollSound() {
	if p.player == nil {
		return
	}
	if w := p.player.Warning(); w != "" {
		p.status = w
	}
	p.player.Play()
}

// HistoryChanged records the recent history for the history panel.
func (p *presenter) HistoryChanged(recent []roll.Face) {
	p.recent = recent
	p.logger.Debug().Int("entries", len(recent)).Msg("roll committed")
}

// SetTriggerEnabled toggles the roll trigger visual.
func (p *presenter) SetTriggerEnabled(enabled bool) {
	p.triggerEnabled = enabled
}
