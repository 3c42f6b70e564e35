package waveform_test

import (
	"math"
	"testing"

	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Symmetric layout mirrors the sequence about the midpoint: 3 heights in,
// 6 bars out, symmetric end to end.
func TestCompose_SymmetricMirrors(t *testing.T) {
	t.Parallel()

	geo := waveform.Compose([]float64{0.2, 0.5, 0.9}, waveform.LayoutSymmetric)
	require.Len(t, geo, 6)

	for i := 0; i < 3; i++ {
		require.InDelta(t, geo[i].Height, geo[5-i].Height, 1e-9,
			"bar %d should mirror bar %d", i, 5-i)
	}
	require.Equal(t, 0.9, geo[0].Height)
	require.Equal(t, 0.2, geo[2].Height)
}

func TestCompose_HorizontalSpansFullWidth(t *testing.T) {
	t.Parallel()

	geo := waveform.Compose([]float64{0.1, 0.2, 0.3, 0.4}, waveform.LayoutHorizontal)
	require.Len(t, geo, 4)

	for i, bar := range geo {
		assert.Equal(t, i, bar.Index)
		assert.Greater(t, bar.X, 0.0)
		assert.Less(t, bar.X, 1.0)
		if i > 0 {
			assert.Greater(t, bar.X, geo[i-1].X)
		}
	}
}

func TestCompose_LeftOnlyAndRightOnly(t *testing.T) {
	t.Parallel()

	heights := []float64{0.3, 0.6}

	left := waveform.Compose(heights, waveform.LayoutLeftOnly)
	for _, bar := range left {
		require.LessOrEqual(t, bar.X, 0.5)
	}

	right := waveform.Compose(heights, waveform.LayoutRightOnly)
	for _, bar := range right {
		require.GreaterOrEqual(t, bar.X, 0.5)
	}
}

// Circular layout: angular step is 2π/n and positions sit on the unit circle.
func TestCompose_Circular(t *testing.T) {
	t.Parallel()

	heights := []float64{0.5, 0.5, 0.5, 0.5}
	geo := waveform.Compose(heights, waveform.LayoutCircular)
	require.Len(t, geo, 4)

	step := 2 * math.Pi / 4
	for i, bar := range geo {
		if i > 0 {
			require.InDelta(t, step, bar.Angle-geo[i-1].Angle, 1e-9)
		}
		radius := math.Hypot(bar.X, bar.Y)
		require.InDelta(t, 1.0, radius, 1e-9)
	}
}

// Composition never mutates its input.
func TestCompose_InputUntouched(t *testing.T) {
	t.Parallel()

	heights := []float64{0.1, 0.9}
	waveform.Compose(heights, waveform.LayoutSymmetric)
	waveform.Compose(heights, waveform.LayoutCircular)
	require.Equal(t, []float64{0.1, 0.9}, heights)
}
