// File: locks/noop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package locks

import "github.com/momentics/lockring/api"

// Ensure compile-time interface compliance.
var _ api.Lock = (*Noop)(nil)

// Noop is the no-contention strategy: acquisition always succeeds and
// release does nothing. Correct only when all access to the buffer comes
// from a single goroutine or an equivalent single-threaded event loop.
type Noop struct{}

// TryAcquire always reports the lock as held.
func (*Noop) TryAcquire() bool { return true }

// Release does nothing.
func (*Noop) Release() {}
