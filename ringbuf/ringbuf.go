// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Externally-locked fixed-capacity ring buffer with bulk transfer support.
// Indices stay in [0, capacity) via mask arithmetic; the full flag
// disambiguates write==read between empty and full.

package ringbuf

import (
	"errors"
	"sync/atomic"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/locks"
)

// ErrInvalidCapacity is returned by New for capacities that are not a
// power of two. The mask-based wraparound depends on this property, so it
// is enforced once at construction and never re-checked in the hot path.
var ErrInvalidCapacity = errors.New("ringbuf: capacity must be a power of two")

// Ensure compile-time interface compliance.
var _ api.LockedBuffer[int] = (*Buffer[int])(nil)

// Options fixes per-instance policy at construction time.
type Options struct {
	// Lock guards every operation. Nil selects locks.Noop, the
	// single-threaded strategy.
	Lock api.Lock

	// Overwrite makes a put into a full buffer discard the oldest unread
	// element(s) instead of failing. Such puts report api.ErrOverwrite so
	// callers can detect the data loss.
	Overwrite bool
}

// Buffer is a fixed-capacity circular FIFO over a contiguous slice.
//
// All mutable state (storage, indices, full flag) is touched only between
// a successful TryAcquire and the matching Release, except the full flag,
// which IsFull additionally reads atomically without the lock.
type Buffer[T any] struct {
	storage   []T
	mask      uint64
	write     uint64 // next slot to write, in [0, cap)
	read      uint64 // next slot to read, in [0, cap)
	full      atomic.Bool
	lock      api.Lock
	overwrite bool
}

// New constructs a buffer of the given power-of-two capacity. Storage is
// allocated here and owned by the instance for its whole lifetime.
func New[T any](capacity int, opts Options) (*Buffer[T], error) {
	if capacity < 1 || capacity&(capacity-1) != 0 {
		return nil, ErrInvalidCapacity
	}
	lk := opts.Lock
	if lk == nil {
		lk = &locks.Noop{}
	}
	return &Buffer[T]{
		storage:   make([]T, capacity),
		mask:      uint64(capacity - 1),
		lock:      lk,
		overwrite: opts.Overwrite,
	}, nil
}

// Put enqueues one item.
//
// Returns api.ErrIllegal when the buffer is full and overwrite is off,
// api.ErrOverwrite when the oldest unread item was discarded to make room
// (the write still happened), and api.ErrTimeout when the lock could not
// be acquired. Only the nil and ErrOverwrite outcomes mutate state.
func (b *Buffer[T]) Put(item T) error {
	if !b.lock.TryAcquire() {
		return api.ErrTimeout
	}
	defer b.lock.Release()

	var err error
	if b.full.Load() {
		if !b.overwrite {
			return api.ErrIllegal
		}
		// Discard the oldest element so the write below has a slot.
		err = api.ErrOverwrite
		b.read = (b.read + 1) & b.mask
	}

	b.storage[b.write] = item
	b.write = (b.write + 1) & b.mask
	b.full.Store(b.write == b.read)
	return err
}

// PutSlice enqueues items using at most two contiguous copies and returns
// how many were actually written.
//
// A short write (count < len(items)) means the buffer filled mid-transfer;
// the accepted items are the leading ones, in order, and the rest are
// rejected, not queued. On a full buffer with overwrite off the result is
// (0, nil) — note the asymmetry with Put, which returns api.ErrIllegal.
// With overwrite on, min(len(items), Cap()) oldest elements are discarded
// first and the result carries api.ErrOverwrite.
func (b *Buffer[T]) PutSlice(items []T) (int, error) {
	if !b.lock.TryAcquire() {
		return 0, api.ErrTimeout
	}
	defer b.lock.Release()

	if len(items) == 0 {
		return 0, nil
	}

	var err error
	if b.full.Load() {
		if !b.overwrite {
			return 0, nil
		}
		err = api.ErrOverwrite
		drop := uint64(len(items))
		if drop > uint64(len(b.storage)) {
			drop = uint64(len(b.storage))
		}
		b.read = (b.read + drop) & b.mask
		b.full.Store(false)
	}

	free := len(b.storage) - b.levelLocked()
	n := len(items)
	if n > free {
		n = free
	}

	// First copy runs to the end of the array, second wraps to index 0.
	// n <= free guarantees the wrapped copy never reaches unread data.
	first := len(b.storage) - int(b.write)
	if first > n {
		first = n
	}
	copy(b.storage[b.write:], items[:first])
	copy(b.storage, items[first:n])

	b.write = (b.write + uint64(n)) & b.mask
	if n == free {
		b.full.Store(true)
	}
	return n, err
}

// Get dequeues the oldest item. Returns api.ErrIllegal on an empty buffer.
// After any successful Get the buffer cannot be full.
func (b *Buffer[T]) Get() (T, error) {
	var zero T
	if !b.lock.TryAcquire() {
		return zero, api.ErrTimeout
	}
	defer b.lock.Release()

	if b.write == b.read && !b.full.Load() {
		return zero, api.ErrIllegal
	}

	item := b.storage[b.read]
	b.read = (b.read + 1) & b.mask
	b.full.Store(false)
	return item, nil
}

// GetSlice dequeues up to len(dst) items using at most two contiguous
// copies and returns how many were retrieved. A short read means the
// buffer drained mid-transfer; an empty buffer yields (0, nil). Unlike the
// single-item Get, emptiness is not an error here.
func (b *Buffer[T]) GetSlice(dst []T) (int, error) {
	if !b.lock.TryAcquire() {
		return 0, api.ErrTimeout
	}
	defer b.lock.Release()

	avail := b.levelLocked()
	n := len(dst)
	if n > avail {
		n = avail
	}
	if n == 0 {
		return 0, nil
	}

	first := len(b.storage) - int(b.read)
	if first > n {
		first = n
	}
	copy(dst[:first], b.storage[b.read:])
	copy(dst[first:n], b.storage)

	b.read = (b.read + uint64(n)) & b.mask
	b.full.Store(false)
	return n, nil
}

// Reset discards all buffered content, leaving the read index in place and
// collapsing the write index onto it. Fails only with api.ErrTimeout.
func (b *Buffer[T]) Reset() error {
	if !b.lock.TryAcquire() {
		return api.ErrTimeout
	}
	defer b.lock.Release()

	b.write = b.read
	b.full.Store(false)
	return nil
}

// IsEmpty reports whether the buffer holds no unread elements.
func (b *Buffer[T]) IsEmpty() (bool, error) {
	if !b.lock.TryAcquire() {
		return false, api.ErrTimeout
	}
	defer b.lock.Release()
	return b.write == b.read && !b.full.Load(), nil
}

// Level returns the count of valid, unread elements.
func (b *Buffer[T]) Level() (int, error) {
	if !b.lock.TryAcquire() {
		return 0, api.ErrTimeout
	}
	defer b.lock.Release()
	return b.levelLocked(), nil
}

// Available returns the remaining free space, Cap() minus Level().
func (b *Buffer[T]) Available() (int, error) {
	if !b.lock.TryAcquire() {
		return 0, api.ErrTimeout
	}
	defer b.lock.Release()
	return len(b.storage) - b.levelLocked(), nil
}

// IsFull reads the cached full flag without taking the lock, for
// low-overhead polling. Under concurrent mutation the answer may be stale
// by the time the caller acts on it; it is never torn or corrupt.
func (b *Buffer[T]) IsFull() bool {
	return b.full.Load()
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

// levelLocked computes the element count. Caller must hold the lock.
func (b *Buffer[T]) levelLocked() int {
	if b.full.Load() {
		return len(b.storage)
	}
	return int((b.write - b.read) & b.mask)
}
