// File: api/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Locking capability injected into every buffer instance. The buffer never
// chooses a primitive itself: a mutex, an atomic spinlock, a disabled-
// interrupts section, or a no-op all fit behind this pair.

package api

// Lock is the caller-supplied locking capability guarding a buffer.
//
// TryAcquire must be non-blocking or bounded-wait; it reports whether the
// lock is now held. Release unconditionally releases a lock previously
// acquired by a successful TryAcquire; calling it without one is undefined.
//
// The buffer assumes nothing else: no fairness, no reentrancy, no blocking
// duration. In particular a non-reentrant implementation means code that
// already holds the lock and calls back into the buffer observes an
// acquisition failure rather than a deadlock.
type Lock interface {
	TryAcquire() bool
	Release()
}
