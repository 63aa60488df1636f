// File: adapters/instrumented_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/lockring/api"
	"github.com/momentics/lockring/control"
	"github.com/momentics/lockring/ringbuf"
)

func TestInstrumentedCounters(t *testing.T) {
	buf, err := ringbuf.New[int](4, ringbuf.Options{Overwrite: true})
	require.NoError(t, err)
	w := NewInstrumented[int](buf)

	for i := 0; i < 4; i++ {
		require.NoError(t, w.Put(i))
	}
	require.ErrorIs(t, w.Put(4), api.ErrOverwrite)

	n, err := w.PutSlice([]int{5, 6, 7})
	require.ErrorIs(t, err, api.ErrOverwrite)
	require.Equal(t, 3, n)

	dst := make([]int, 2)
	n, err = w.GetSlice(dst)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = w.Get()
	require.NoError(t, err)

	s := w.Stats()
	assert.Equal(t, int64(6), s.Puts)
	assert.Equal(t, int64(8), s.ItemsIn)
	assert.Equal(t, int64(2), s.Gets)
	assert.Equal(t, int64(3), s.ItemsOut)
	assert.Equal(t, int64(2), s.Overwrites)
	assert.Equal(t, int64(0), s.Rejections)
	assert.Equal(t, int64(0), s.Timeouts)
	assert.Equal(t, int64(0), s.ShortWrites)
}

func TestInstrumentedRejectionAndShortWrite(t *testing.T) {
	buf, err := ringbuf.New[int](4, ringbuf.Options{})
	require.NoError(t, err)
	w := NewInstrumented[int](buf)

	// 4 free slots, 6 offered: short write.
	n, err := w.PutSlice([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 4, n)

	require.ErrorIs(t, w.Put(7), api.ErrIllegal)

	s := w.Stats()
	assert.Equal(t, int64(1), s.ShortWrites)
	assert.Equal(t, int64(1), s.Rejections)
	assert.Equal(t, int64(4), s.ItemsIn)
}

func TestInstrumentedTimeoutAndPublish(t *testing.T) {
	lk := &heldLock{}
	buf, err := ringbuf.New[int](4, ringbuf.Options{Lock: lk})
	require.NoError(t, err)
	w := NewInstrumented[int](buf)

	lk.held = true
	require.ErrorIs(t, w.Put(1), api.ErrTimeout)
	_, err = w.Level()
	require.ErrorIs(t, err, api.ErrTimeout)
	lk.held = false

	reg := control.NewMetricsRegistry()
	w.Publish(reg, "rx")

	v, ok := reg.Get("rx.timeouts")
	require.True(t, ok)
	assert.Equal(t, int64(2), v)
	v, ok = reg.Get("rx.items_in")
	require.True(t, ok)
	assert.Equal(t, int64(0), v)
}
