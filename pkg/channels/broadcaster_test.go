package channels_test

import (
	"context"
	"testing"
	"time"

	"github.com/linksound/wavekit/pkg/channels"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := channels.NewBroadcaster[int]()
	sub1 := make(chan int, 4)
	sub2 := make(chan int, 4)
	b.Subscribe(sub1)
	b.Subscribe(sub2)

	input, err := b.Run(ctx)
	require.NoError(t, err)

	input <- 7
	cancel()
	b.Wait()

	require.Equal(t, 7, <-sub1)
	require.Equal(t, 7, <-sub2)
}

func TestBroadcaster_NoSubscribers(t *testing.T) {
	t.Parallel()

	b := channels.NewBroadcaster[int]()
	_, err := b.Run(context.Background())
	require.Error(t, err)
}

func TestBroadcaster_DropsOnFullSubscriber(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := channels.NewBroadcaster[int]()
	slow := make(chan int, 1)
	b.Subscribe(slow)

	input, err := b.Run(ctx)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		input <- i
	}

	cancel()
	b.Wait()

	// The slow subscriber kept at most its buffer's worth; the producer
	// was never blocked.
	require.Eventually(t, func() bool {
		select {
		case <-slow:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
