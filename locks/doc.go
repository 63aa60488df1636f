// Package locks
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ready-made api.Lock providers: Noop for single-threaded loops, SpinLock
// for cross-goroutine use without a scheduler dependency, and Mutex for
// host-OS threads. All are non-reentrant: re-acquiring from the holder
// fails rather than deadlocks, which is what the buffer's "timeout while
// held" contract relies on.
package locks
