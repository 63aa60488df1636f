// Package adapters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Adapters over ringbuf.Buffer: the bool-style api.Ring view, an
// unbounded-overflow spill queue, and an instrumented wrapper feeding the
// control metrics registry.
package adapters
