// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring buffer contracts.

package api

// Ring is a bounded FIFO ring buffer contract.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// LockedBuffer is the full externally-locked buffer contract implemented by
// ringbuf.Buffer. Every method except IsFull and Cap first attempts to take
// the instance's Lock and returns ErrTimeout, mutating nothing, when the
// lock cannot be acquired.
type LockedBuffer[T any] interface {
	// Put enqueues one item. ErrIllegal when full and overwrite is off;
	// ErrOverwrite when the oldest unread item was discarded to make room.
	Put(item T) error

	// PutSlice enqueues len(items) items with at most two copy operations
	// and reports how many were actually written. A short write (count less
	// than len(items)) is normal backpressure, not an error.
	PutSlice(items []T) (int, error)

	// Get dequeues the oldest item. ErrIllegal when empty.
	Get() (T, error)

	// GetSlice dequeues up to len(dst) items with at most two copy
	// operations. A short read is normal; an empty buffer yields (0, nil).
	GetSlice(dst []T) (int, error)

	// Reset discards all buffered content.
	Reset() error

	IsEmpty() (bool, error)
	Level() (int, error)
	Available() (int, error)

	// IsFull reads the cached full flag without taking the lock. Under
	// concurrent mutation the value may be stale; it is never corrupt.
	IsFull() bool

	// Cap returns the fixed capacity.
	Cap() int
}
