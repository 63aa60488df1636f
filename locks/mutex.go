// File: locks/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package locks

import (
	"sync"

	"github.com/momentics/lockring/api"
)

// Ensure compile-time interface compliance.
var _ api.Lock = (*Mutex)(nil)

// Mutex adapts sync.Mutex to the api.Lock capability. TryAcquire maps to
// TryLock, so a contended or held mutex reports failure immediately instead
// of parking the goroutine.
type Mutex struct {
	mu sync.Mutex
}

// TryAcquire attempts to take the mutex without blocking.
func (m *Mutex) TryAcquire() bool {
	return m.mu.TryLock()
}

// Release unlocks. Must pair with a successful TryAcquire.
func (m *Mutex) Release() {
	m.mu.Unlock()
}
