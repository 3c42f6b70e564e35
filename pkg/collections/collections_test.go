package collections_test

import (
	"strconv"
	"testing"

	"github.com/linksound/wavekit/pkg/collections"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Parallel()

	got := collections.Apply([]int{1, 2, 3}, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, got)
}

func TestApply_Empty(t *testing.T) {
	t.Parallel()

	got := collections.Apply(nil, strconv.Itoa)
	require.Empty(t, got)
}
