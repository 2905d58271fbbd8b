package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoFileIsSilent(t *testing.T) {
	p := New("", "", zerolog.Nop())
	assert.False(t, p.Enabled())
	assert.Empty(t, p.Warning(), "intentional silence carries no warning")

	// Play and Close on a disabled player are no-ops.
	p.Play()
	p.Close()
}

func TestNew_MissingFileIsSilent(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing.wav"), "", zerolog.Nop())
	assert.False(t, p.Enabled())
	assert.NotEmpty(t, p.Warning())
	p.Play()
	p.Close()
}

func TestNew_MissingPlayerIsSilent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roll.wav")
	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))

	p := New(file, "definitely-not-a-player-binary", zerolog.Nop())
	assert.False(t, p.Enabled())
	assert.NotEmpty(t, p.Warning())
}

func TestPlay_FireAndForget(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roll.wav")
	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))

	// "true" ignores its arguments and exits immediately; good enough to
	// exercise the start/reap path.
	p := New(file, "true", zerolog.Nop())
	require.True(t, p.Enabled())
	assert.Empty(t, p.Warning())

	for i := 0; i < 3; i++ {
		p.Play()
	}
	p.Close()
}

func TestClose_Idempotent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "roll.wav")
	require.NoError(t, os.WriteFile(file, []byte("RIFF"), 0o644))

	p := New(file, "true", zerolog.Nop())
	p.Play()
	p.Close()
	p.Close()

	// After close, new playback is refused.
	p.Play()
}

func TestPlayerArgs(t *testing.T) {
	assert.Equal(t, []string{"roll.wav"}, playerArgs("paplay", "roll.wav"))
	assert.Equal(t,
		[]string{"-nodisp", "-autoexit", "-loglevel", "quiet", "roll.wav"},
		playerArgs("ffplay", "roll.wav"))
}
