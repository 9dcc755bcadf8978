package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ombre/internal/domain"
)

func blackToWhite(direction domain.Direction) domain.GradientSpec {
	return domain.GradientSpec{Direction: direction, From: "#000000", To: "#ffffff"}
}

func TestGradientPixels_Horizontal(t *testing.T) {
	pixels := gradientPixels(blackToWhite(domain.DirectionToRight), 20, 4)
	require.Len(t, pixels, 4)

	for _, row := range pixels {
		require.Len(t, row, 20)
		assert.Less(t, row[0].R, 0.1)
		assert.Greater(t, row[19].R, 0.9)
		for x := 1; x < len(row); x++ {
			assert.Greater(t, row[x].R, row[x-1].R)
		}
	}

	reversed := gradientPixels(blackToWhite(domain.DirectionToLeft), 20, 4)
	assert.Greater(t, reversed[0][0].R, 0.9)
	assert.Less(t, reversed[0][19].R, 0.1)
}

func TestGradientPixels_Vertical(t *testing.T) {
	pixels := gradientPixels(blackToWhite(domain.DirectionToBottom), 6, 10)

	for x := range 6 {
		assert.Less(t, pixels[0][x].R, 0.1)
		assert.Greater(t, pixels[9][x].R, 0.9)
	}

	up := gradientPixels(blackToWhite(domain.DirectionToTop), 6, 10)
	assert.Greater(t, up[0][0].R, up[9][0].R)
}

func TestGradientPixels_Diagonal(t *testing.T) {
	pixels := gradientPixels(blackToWhite(domain.DirectionToBottomRight), 10, 10)

	assert.Less(t, pixels[0][0].R, 0.1)
	assert.Greater(t, pixels[9][9].R, 0.9)
	assert.InDelta(t, pixels[0][9].R, pixels[9][0].R, 1e-9)
}

func TestGradientPixels_UnknownDirectionFallsBackToBottom(t *testing.T) {
	unknown := gradientPixels(blackToWhite("sideways"), 5, 5)
	bottom := gradientPixels(blackToWhite(domain.DirectionToBottom), 5, 5)

	assert.Equal(t, bottom, unknown)
}

func TestGradientPixels_EmptyArea(t *testing.T) {
	assert.Nil(t, gradientPixels(blackToWhite(domain.DirectionToRight), 0, 5))
	assert.Nil(t, gradientPixels(blackToWhite(domain.DirectionToRight), 5, 0))
}

func TestRenderPreview(t *testing.T) {
	out := renderPreview(blackToWhite(domain.DirectionToRight), 12, 3)

	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Equal(t, 36, strings.Count(out, upperHalfBlock))
	assert.Empty(t, renderPreview(blackToWhite(domain.DirectionToRight), 0, 3))
}
