package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okardan/tumble/internal/core/roll"
)

func TestSample(t *testing.T) {
	i := roll.Face(0)
	src := func() roll.Face {
		i++
		return i
	}

	faces := sample(3, src)
	require.Len(t, faces, 3)
	assert.Equal(t, []roll.Face{1, 2, 3}, faces)
}

func TestSample_Empty(t *testing.T) {
	faces := sample(0, func() roll.Face { return 1 })
	assert.Empty(t, faces)
}
