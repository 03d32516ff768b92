package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerLines(t *testing.T) {
	lines, err := BannerLines()
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Equal(t, "Welcome to the Number Guessing Game!", lines[0])
	for _, l := range lines {
		assert.NotContains(t, l, "#")
	}
}
