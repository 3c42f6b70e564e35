// Package channels provides helpers for non-blocking channel delivery and
// fan-out of a message stream to multiple subscribers.
package channels

import (
	"errors"
	"time"
)

var (
	ErrChannelClosed  = errors.New("channel closed")
	ErrChannelTimeout = errors.New("send timeout")
	ErrChannelFull    = errors.New("channel full")
)

// SendNonBlock sends msg without blocking. Returns ErrChannelFull if the
// channel has no free capacity and ErrChannelClosed if it has been closed.
func SendNonBlock[T any](ch chan<- T, msg T) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrChannelClosed
		}
	}()

	select {
	case ch <- msg:
		return nil
	default:
		return ErrChannelFull
	}
}

// SendWithTimeout sends msg, giving up after timeout.
func SendWithTimeout[T any](ch chan<- T, msg T, timeout time.Duration) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrChannelClosed
		}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ch <- msg:
		return nil
	case <-timer.C:
		return ErrChannelTimeout
	}
}
