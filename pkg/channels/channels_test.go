package channels_test

import (
	"testing"
	"time"

	"github.com/linksound/wavekit/pkg/channels"
	"github.com/stretchr/testify/require"
)

func TestSendNonBlock(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 1)
	require.NoError(t, channels.SendNonBlock(ch, 1))
	require.ErrorIs(t, channels.SendNonBlock(ch, 2), channels.ErrChannelFull)
	require.Equal(t, 1, <-ch)
}

func TestSendNonBlock_Closed(t *testing.T) {
	t.Parallel()

	ch := make(chan int)
	close(ch)
	require.ErrorIs(t, channels.SendNonBlock(ch, 1), channels.ErrChannelClosed)
}

func TestSendWithTimeout(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 1)
	require.NoError(t, channels.SendWithTimeout(ch, 1, 10*time.Millisecond))
	require.ErrorIs(t,
		channels.SendWithTimeout(ch, 2, 10*time.Millisecond),
		channels.ErrChannelTimeout)
}
