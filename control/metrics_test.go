// File: control/metrics_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistry(t *testing.T) {
	reg := NewMetricsRegistry()

	_, ok := reg.Get("missing")
	assert.False(t, ok)

	reg.Set("rx.puts", int64(3))
	reg.Set("rx.puts", int64(5))
	v, ok := reg.Get("rx.puts")
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	snap := reg.GetSnapshot()
	assert.Len(t, snap, 1)
	assert.False(t, reg.Updated().IsZero())

	// Snapshot is a copy; mutating it must not touch the registry.
	snap["rx.puts"] = int64(0)
	v, _ = reg.Get("rx.puts")
	assert.Equal(t, int64(5), v)
}
