package numeric_test

import (
	"testing"

	"github.com/linksound/wavekit/pkg/numeric"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, numeric.Clamp(-1.5, 0.0, 1.0))
	require.Equal(t, 1.0, numeric.Clamp(3.0, 0.0, 1.0))
	require.Equal(t, 0.25, numeric.Clamp(0.25, 0.0, 1.0))
	require.Equal(t, 5, numeric.Clamp(5, 1, 10))
}

func TestLerp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2.0, numeric.Lerp(2.0, 8.0, 0.0))
	require.Equal(t, 8.0, numeric.Lerp(2.0, 8.0, 1.0))
	require.Equal(t, 5.0, numeric.Lerp(2.0, 8.0, 0.5))
}
