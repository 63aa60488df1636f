// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for the lockring library: the injected locking
// capability, the ring buffer interfaces, and the shared error taxonomy.
// Implementations live in ringbuf, locks, and adapters.
package api
