package waveform_test

import (
	"math"
	"testing"

	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// For all inputs, including out-of-range and non-finite values, the
// normalized sample stays in [0,1].
func TestNormalizer_AlwaysInRange(t *testing.T) {
	t.Parallel()

	inputs := []float64{
		-5, -0.001, 0, 0.5, 1, 1.001, 42,
		math.NaN(), math.Inf(1), math.Inf(-1),
	}

	n := waveform.NewNormalizer(waveform.DefaultSmoothing)
	for _, in := range inputs {
		got := n.Normalize(in)
		assert.GreaterOrEqual(t, got, 0.0, "input %v", in)
		assert.LessOrEqual(t, got, 1.0, "input %v", in)
	}
}

func TestNormalizer_InvalidInputIsSilence(t *testing.T) {
	t.Parallel()

	n := waveform.NewNormalizer(1) // smoothing 1 = passthrough
	require.Equal(t, 0.0, n.Normalize(math.NaN()))
	require.Equal(t, 0.0, n.Normalize(math.Inf(1)))
}

// The first accepted sample passes through; later samples are pulled toward
// the previous one.
func TestNormalizer_Smoothing(t *testing.T) {
	t.Parallel()

	n := waveform.NewNormalizer(0.5)

	require.Equal(t, 1.0, n.Normalize(1.0))

	got := n.Normalize(0.0)
	require.InDelta(t, 0.5, got, 1e-9)

	got = n.Normalize(0.0)
	require.InDelta(t, 0.25, got, 1e-9)
}

func TestNormalizer_Reset(t *testing.T) {
	t.Parallel()

	n := waveform.NewNormalizer(0.5)
	n.Normalize(1.0)
	n.Reset()

	// After reset the next sample is unsmoothed again.
	require.Equal(t, 0.2, n.Normalize(0.2))
}

func TestNewNormalizer_BadFactorFallsBack(t *testing.T) {
	t.Parallel()

	// Out-of-range factors must not disable clamping or blow up.
	for _, factor := range []float64{-1, 0, 1.5} {
		n := waveform.NewNormalizer(factor)
		got := n.Normalize(2.0)
		require.LessOrEqual(t, got, 1.0)
	}
}
