// Package chflow provides context-aware helpers for moving values through Go
// channels: blocking send/receive that honor cancellation, and a latest-wins
// publish for channels that carry full state snapshots.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// The boolean is false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first.
// It reports whether the value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Replace delivers data to a buffered channel without blocking. When the
// buffer is full, the oldest pending value is discarded to make room, so a
// slow reader only ever observes the most recent values.
//
// Replace must be called by a single producer at a time (callers serialize
// with their own lock); readers may run concurrently.
func Replace[T any](ch chan T, data T) {
	for {
		select {
		case ch <- data:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
