package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okardan/tumble/internal/core/roll"
)

func TestLoad_Builtin(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)

	seen := map[string]bool{}
	for f := roll.Face(1); f <= roll.Sides; f++ {
		art := set.Art(f)
		require.NotEmpty(t, art, "face %d", f)
		seen[art] = true
	}
	// Every face renders differently.
	assert.Len(t, seen, roll.Sides)
}

func TestLoad_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 6; i++ {
		path := filepath.Join(dir, "face"+string(rune('0'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte("[ face ]"), 0o644))
	}

	set, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "[ face ]", set.Art(3))
}

func TestLoad_MissingFaceIsFatal(t *testing.T) {
	dir := t.TempDir()
	// Write five of six faces.
	for i := 1; i <= 5; i++ {
		path := filepath.Join(dir, "face"+string(rune('0'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face6.txt")
}

func TestLoad_EmptyFaceIsFatal(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 6; i++ {
		path := filepath.Join(dir, "face"+string(rune('0'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "face4.txt"), []byte("\n \n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face4.txt")
}

func TestArt_InvalidFace(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, set.Art(0))
	assert.Empty(t, set.Art(7))
}
