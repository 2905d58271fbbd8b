// Package assets loads the die face artwork. A builtin set is embedded in
// the binary; users may point at a directory of replacement art instead.
// Rendering is impossible without a complete face set, so any gap is a fatal
// load error surfaced before the event loop starts.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/okardan/tumble/internal/core/roll"
)

//go:embed faces/face*.txt
var builtin embed.FS

// facePattern matches the artwork file for each die face.
const facePattern = "face[1-6].txt"

// FaceSet holds the artwork for all six die faces.
type FaceSet struct {
	art map[roll.Face]string
}

// Load returns the face set from dir, or the embedded builtin set when dir
// is empty. All six faces must be present and non-empty.
func Load(dir string) (*FaceSet, error) {
	if dir == "" {
		sub, err := fs.Sub(builtin, "faces")
		if err != nil {
			return nil, fmt.Errorf("builtin faces: %w", err)
		}
		return loadFS(sub, "builtin")
	}
	return loadFS(os.DirFS(dir), dir)
}

func loadFS(fsys fs.FS, origin string) (*FaceSet, error) {
	matches, err := doublestar.Glob(fsys, facePattern)
	if err != nil {
		return nil, fmt.Errorf("scan face artwork in %s: %w", origin, err)
	}

	art := make(map[roll.Face]string, roll.Sides)
	for _, name := range matches {
		// Name is guaranteed "faceN.txt" by the pattern.
		face := roll.Face(name[len("face")] - '0')

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read face artwork %s in %s: %w", name, origin, err)
		}
		text := strings.TrimRight(string(data), "\n")
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("face artwork %s in %s is empty", name, origin)
		}
		art[face] = text
	}

	for f := roll.Face(1); f <= roll.Sides; f++ {
		if _, ok := art[f]; !ok {
			return nil, fmt.Errorf("face artwork missing in %s: face%d.txt", origin, f)
		}
	}

	return &FaceSet{art: art}, nil
}

// Art returns the artwork for f, or an empty string for an invalid face.
func (s *FaceSet) Art(f roll.Face) string {
	return s.art[f]
}
