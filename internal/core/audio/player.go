// Package audio plays the roll sound by handing the sound file to an
// external command-line player. Playback is fire-and-forget: a roll never
// waits on sound, and a failed playback is logged and skipped, not retried.
package audio

import (
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// playerCandidates are probed in order when no player command is configured.
var playerCandidates = []string{"paplay", "aplay", "afplay", "ffplay"}

// Player owns the sound asset and any in-flight playback processes. A Player
// is always usable; when the asset or a player binary is unavailable it is
// simply disabled and Play becomes a no-op.
type Player struct {
	logger  zerolog.Logger
	command string
	args    []string
	enabled bool
	warning string

	mu     sync.Mutex
	closed bool
	procs  map[*os.Process]struct{}
	wg     sync.WaitGroup
}

// New resolves the sound file and player binary. A missing file or missing
// player degrades to a silent player with a logged warning; it is never an
// error.
func New(file, command string, logger zerolog.Logger) *Player {
	p := &Player{
		logger: logger,
		procs:  make(map[*os.Process]struct{}),
	}

	if file == "" {
		logger.Info().Msg("no sound file configured, rolls will be silent")
		return p
	}
	if _, err := os.Stat(file); err != nil {
		logger.Warn().Err(err).Str("file", file).Msg("sound file unavailable, rolls will be silent")
		p.warning = "sound file unavailable, rolling silently"
		return p
	}

	if command == "" {
		command = detectPlayer()
		if command == "" {
			logger.Warn().Str("file", file).Msg("no audio player found on PATH, rolls will be silent")
			p.warning = "no audio player found, rolling silently"
			return p
		}
	}
	if _, err := exec.LookPath(command); err != nil {
		logger.Warn().Err(err).Str("command", command).Msg("audio player unavailable, rolls will be silent")
		p.warning = "audio player unavailable, rolling silently"
		return p
	}

	p.command = command
	p.args = playerArgs(command, file)
	p.enabled = true
	logger.Debug().Str("command", command).Str("file", file).Msg("audio player ready")
	return p
}

// Enabled reports whether Play will produce sound.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Warning returns a user-facing message when playback was requested but had
// to be degraded (missing file or player). It is empty for a working player
// and for intentional silence (no sound file configured).
func (p *Player) Warning() string {
	return p.warning
}

// Play starts one playback and returns immediately. Failures to start are
// logged and dropped for that roll.
func (p *Player) Play() {
	if !p.enabled {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	cmd := exec.Command(p.command, p.args...)
	if err := cmd.Start(); err != nil {
		p.mu.Unlock()
		p.logger.Warn().Err(err).Str("command", p.command).Msg("sound playback failed to start")
		return
	}
	p.procs[cmd.Process] = struct{}{}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		err := cmd.Wait()
		p.mu.Lock()
		delete(p.procs, cmd.Process)
		closed := p.closed
		p.mu.Unlock()
		// Exit errors during shutdown are expected (the process was killed).
		if err != nil && !closed {
			p.logger.Warn().Err(err).Msg("sound playback exited with error")
		}
	}()
}

// Close stops in-flight playback and releases the player. It is safe on a
// disabled player and safe to call more than once.
func (p *Player) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for proc := range p.procs {
		_ = proc.Kill()
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func detectPlayer() string {
	for _, c := range playerCandidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}

// playerArgs builds per-player argument lists. ffplay needs to be told not to
// open a video window or linger after the clip ends.
func playerArgs(command, file string) []string {
	if command == "ffplay" {
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}
	}
	return []string{file}
}
