package channels

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Broadcaster fans messages from a single input channel out to multiple
// subscriber channels. Sends are non-blocking: a subscriber that cannot keep
// up has messages dropped rather than stalling the producer.
//
// On context cancellation the input channel is closed and remaining messages
// are drained to subscribers before shutdown completes.
type Broadcaster[T any] struct {
	subscribers []chan<- T
	input       chan T
	started     atomic.Bool
	wg          sync.WaitGroup
}

// NewBroadcaster creates a Broadcaster for messages of type T.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{}
}

// Subscribe adds a channel to receive broadcast messages. Must be called
// before Run. Not safe for concurrent use with Run.
func (b *Broadcaster[T]) Subscribe(ch chan<- T) {
	b.subscribers = append(b.subscribers, ch)
}

// Run starts the broadcaster and returns the input channel for sending
// messages. The returned channel is owned by the Broadcaster and is closed
// on context cancellation.
func (b *Broadcaster[T]) Run(ctx context.Context) (chan<- T, error) {
	if b.started.Load() {
		return nil, fmt.Errorf("broadcaster already started")
	}

	if len(b.subscribers) == 0 {
		return nil, fmt.Errorf("no subscribers available")
	}

	b.input = make(chan T, len(b.subscribers)*2)

	b.wg.Go(func() {
		for msg := range b.input {
			for _, sub := range b.subscribers {
				// Drop on backpressure; a stale frame is worthless anyway.
				_ = SendNonBlock(sub, msg)
			}
		}
	})

	b.started.Store(true)

	go func() {
		<-ctx.Done()
		close(b.input)
		b.wg.Wait()
	}()

	return b.input, nil
}

// Wait blocks until the broadcaster has drained all messages after the
// context is cancelled.
func (b *Broadcaster[T]) Wait() {
	b.wg.Wait()
}
