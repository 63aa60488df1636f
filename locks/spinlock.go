// File: locks/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CAS spinlock with a bounded number of acquisition attempts.

package locks

import (
	"runtime"
	"sync/atomic"

	"github.com/momentics/lockring/api"
)

// Ensure compile-time interface compliance.
var _ api.Lock = (*SpinLock)(nil)

// DefaultSpinAttempts bounds TryAcquire when no attempt count is given.
const DefaultSpinAttempts = 64

// SpinLock is an atomic test-and-set lock. TryAcquire spins for at most the
// configured number of attempts, yielding the processor between tries, so
// acquisition is bounded rather than blocking. Not reentrant.
type SpinLock struct {
	state    atomic.Bool
	attempts int
}

// NewSpinLock returns a spinlock bounded to the given number of CAS
// attempts per TryAcquire. Values below 1 fall back to DefaultSpinAttempts.
func NewSpinLock(attempts int) *SpinLock {
	if attempts < 1 {
		attempts = DefaultSpinAttempts
	}
	return &SpinLock{attempts: attempts}
}

// TryAcquire attempts to take the lock, returning whether it is now held.
func (s *SpinLock) TryAcquire() bool {
	n := s.attempts
	if n < 1 {
		n = DefaultSpinAttempts
	}
	for i := 0; i < n; i++ {
		if s.state.CompareAndSwap(false, true) {
			return true
		}
		runtime.Gosched()
	}
	return false
}

// Release unlocks. Must pair with a successful TryAcquire.
func (s *SpinLock) Release() {
	s.state.Store(false)
}
