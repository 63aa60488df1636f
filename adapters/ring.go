// File: adapters/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bool-style ring view over an externally-locked buffer, for callers
// written against the api.Ring contract rather than the error taxonomy.

package adapters

import (
	"errors"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/locks"
	"github.com/momentics/lockring/ringbuf"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring adapts a ringbuf.Buffer to api.Ring. Enqueue reports true for any
// completed write, including one that overwrote unread data; lock timeouts
// collapse to false/zero, so pair this adapter with a lock that has enough
// spin budget for the deployment's contention.
type Ring[T any] struct {
	buf *ringbuf.Buffer[T]
}

// NewRing creates a spin-locked ring of power-of-two capacity.
func NewRing[T any](capacity int) (*Ring[T], error) {
	buf, err := ringbuf.New[T](capacity, ringbuf.Options{Lock: locks.NewSpinLock(0)})
	if err != nil {
		return nil, err
	}
	return &Ring[T]{buf: buf}, nil
}

// WrapRing adapts an existing buffer.
func WrapRing[T any](buf *ringbuf.Buffer[T]) *Ring[T] {
	return &Ring[T]{buf: buf}
}

// Enqueue adds an item, returns false if full or the lock timed out.
func (r *Ring[T]) Enqueue(item T) bool {
	err := r.buf.Put(item)
	return err == nil || errors.Is(err, api.ErrOverwrite)
}

// Dequeue removes the oldest item, ok false if empty or the lock timed out.
func (r *Ring[T]) Dequeue() (T, bool) {
	item, err := r.buf.Get()
	return item, err == nil
}

// Len returns the current number of items, 0 when the lock times out.
func (r *Ring[T]) Len() int {
	level, err := r.buf.Level()
	if err != nil {
		return 0
	}
	return level
}

// Cap returns the fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return r.buf.Cap()
}
