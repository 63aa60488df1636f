// File: adapters/spill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spill pairs a bounded ring with an unbounded FIFO overflow area, so a
// producer can keep the fixed-capacity hot path without dropping items
// during bursts.

package adapters

import (
	"errors"

	"github.com/eapache/queue"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/ringbuf"
)

// Spill wraps a buffer with an unbounded overflow queue. When the ring is
// full, Put diverts items to the overflow; Get and Put both move spilled
// items back into the ring as space frees up, preserving FIFO order.
//
// The overflow queue itself is not synchronized. Spill is meant for a
// single producer/consumer goroutine pair that already serializes access,
// or for producer-side burst smoothing inside one goroutine; the ring's
// own lock still guards the ring.
type Spill[T any] struct {
	ring     *ringbuf.Buffer[T]
	overflow *queue.Queue
}

// NewSpill creates a spill queue over a fresh buffer of power-of-two
// capacity guarded by the given lock.
func NewSpill[T any](capacity int, lock api.Lock) (*Spill[T], error) {
	ring, err := ringbuf.New[T](capacity, ringbuf.Options{Lock: lock})
	if err != nil {
		return nil, err
	}
	return &Spill[T]{ring: ring, overflow: queue.New()}, nil
}

// Put enqueues an item, spilling to the overflow when the ring is full.
// The only failure is api.ErrTimeout; the item is not spilled in that case
// so a retry observes unchanged state.
func (s *Spill[T]) Put(item T) error {
	if err := s.drain(); err != nil {
		return err
	}
	if s.overflow.Length() > 0 {
		// Ring is still full; keep arrival order by spilling behind
		// the items that are already waiting.
		s.overflow.Add(item)
		return nil
	}
	err := s.ring.Put(item)
	if errors.Is(err, api.ErrIllegal) {
		s.overflow.Add(item)
		return nil
	}
	return err
}

// Get dequeues the oldest item across the ring and the overflow area.
// Returns api.ErrIllegal only when both are empty.
func (s *Spill[T]) Get() (T, error) {
	item, err := s.ring.Get()
	if err == nil {
		// A slot just freed; pull spilled items forward.
		if derr := s.drain(); derr != nil {
			return item, derr
		}
		return item, nil
	}
	if errors.Is(err, api.ErrIllegal) && s.overflow.Length() > 0 {
		return s.overflow.Remove().(T), nil
	}
	var zero T
	return zero, err
}

// Len returns the total number of buffered items, ring plus overflow.
func (s *Spill[T]) Len() (int, error) {
	level, err := s.ring.Level()
	if err != nil {
		return 0, err
	}
	return level + s.overflow.Length(), nil
}

// Spilled returns how many items currently sit outside the ring.
func (s *Spill[T]) Spilled() int {
	return s.overflow.Length()
}

// drain moves spilled items into the ring until one of them is full/empty.
func (s *Spill[T]) drain() error {
	for s.overflow.Length() > 0 {
		err := s.ring.Put(s.overflow.Peek().(T))
		if errors.Is(err, api.ErrIllegal) {
			return nil
		}
		if err != nil {
			return err
		}
		s.overflow.Remove()
	}
	return nil
}
