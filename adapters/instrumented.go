// File: adapters/instrumented.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting wrapper around a buffer. The core contract forbids the buffer
// from logging or recording anything, so observability lives here, outside
// the critical section.

package adapters

import (
	"errors"
	"sync/atomic"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/control"
)

// Ensure compile-time interface compliance.
var _ api.LockedBuffer[any] = (*Instrumented[any])(nil)

// BufferStats is a point-in-time snapshot of operation counters.
type BufferStats struct {
	Puts        int64 // completed single and bulk put calls
	Gets        int64 // completed single and bulk get calls
	ItemsIn     int64 // items accepted, bulk counts included
	ItemsOut    int64 // items handed out, bulk counts included
	Overwrites  int64 // operations that discarded unread data
	Rejections  int64 // ErrIllegal outcomes
	Timeouts    int64 // ErrTimeout outcomes
	ShortWrites int64 // bulk puts that accepted fewer items than offered
}

// Instrumented decorates an api.LockedBuffer with atomic operation
// counters. All buffer semantics pass through unchanged.
type Instrumented[T any] struct {
	inner api.LockedBuffer[T]

	puts        atomic.Int64
	gets        atomic.Int64
	itemsIn     atomic.Int64
	itemsOut    atomic.Int64
	overwrites  atomic.Int64
	rejections  atomic.Int64
	timeouts    atomic.Int64
	shortWrites atomic.Int64
}

// NewInstrumented wraps a buffer.
func NewInstrumented[T any](inner api.LockedBuffer[T]) *Instrumented[T] {
	return &Instrumented[T]{inner: inner}
}

func (w *Instrumented[T]) classify(err error) {
	switch {
	case err == nil:
	case errors.Is(err, api.ErrOverwrite):
		w.overwrites.Add(1)
	case errors.Is(err, api.ErrIllegal):
		w.rejections.Add(1)
	case errors.Is(err, api.ErrTimeout):
		w.timeouts.Add(1)
	}
}

func (w *Instrumented[T]) Put(item T) error {
	err := w.inner.Put(item)
	w.classify(err)
	if !api.IsFailure(err) {
		w.puts.Add(1)
		w.itemsIn.Add(1)
	}
	return err
}

func (w *Instrumented[T]) PutSlice(items []T) (int, error) {
	n, err := w.inner.PutSlice(items)
	w.classify(err)
	if !api.IsFailure(err) {
		w.puts.Add(1)
		w.itemsIn.Add(int64(n))
		if n < len(items) {
			w.shortWrites.Add(1)
		}
	}
	return n, err
}

func (w *Instrumented[T]) Get() (T, error) {
	item, err := w.inner.Get()
	w.classify(err)
	if err == nil {
		w.gets.Add(1)
		w.itemsOut.Add(1)
	}
	return item, err
}

func (w *Instrumented[T]) GetSlice(dst []T) (int, error) {
	n, err := w.inner.GetSlice(dst)
	w.classify(err)
	if err == nil {
		w.gets.Add(1)
		w.itemsOut.Add(int64(n))
	}
	return n, err
}

func (w *Instrumented[T]) Reset() error {
	err := w.inner.Reset()
	w.classify(err)
	return err
}

func (w *Instrumented[T]) IsEmpty() (bool, error) {
	empty, err := w.inner.IsEmpty()
	w.classify(err)
	return empty, err
}

func (w *Instrumented[T]) Level() (int, error) {
	level, err := w.inner.Level()
	w.classify(err)
	return level, err
}

func (w *Instrumented[T]) Available() (int, error) {
	avail, err := w.inner.Available()
	w.classify(err)
	return avail, err
}

func (w *Instrumented[T]) IsFull() bool { return w.inner.IsFull() }

func (w *Instrumented[T]) Cap() int { return w.inner.Cap() }

// Stats returns the current counter values.
func (w *Instrumented[T]) Stats() BufferStats {
	return BufferStats{
		Puts:        w.puts.Load(),
		Gets:        w.gets.Load(),
		ItemsIn:     w.itemsIn.Load(),
		ItemsOut:    w.itemsOut.Load(),
		Overwrites:  w.overwrites.Load(),
		Rejections:  w.rejections.Load(),
		Timeouts:    w.timeouts.Load(),
		ShortWrites: w.shortWrites.Load(),
	}
}

// Publish writes the current counters into a registry under the given
// name prefix, one key per counter.
func (w *Instrumented[T]) Publish(reg *control.MetricsRegistry, name string) {
	s := w.Stats()
	reg.Set(name+".puts", s.Puts)
	reg.Set(name+".gets", s.Gets)
	reg.Set(name+".items_in", s.ItemsIn)
	reg.Set(name+".items_out", s.ItemsOut)
	reg.Set(name+".overwrites", s.Overwrites)
	reg.Set(name+".rejections", s.Rejections)
	reg.Set(name+".timeouts", s.Timeouts)
	reg.Set(name+".short_writes", s.ShortWrites)
}
