// Package ringbuf
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity circular buffer guarded by a caller-supplied lock.
//
// Buffer is built for single-producer/single-consumer use in embedded and
// low-level contexts: storage is allocated once at construction, capacity is
// a power of two so index wraparound is a bitmask, and every operation is a
// bounded critical section between Lock.TryAcquire and Lock.Release. The
// buffer itself never blocks, logs, or retries; lock-acquisition failure
// surfaces as api.ErrTimeout and all recovery policy belongs to the caller.
//
// One contract asymmetry is kept deliberately for compatibility with the
// long-standing behavior of this buffer family: a single Put into a full
// buffer (overwrite off) fails with api.ErrIllegal, while PutSlice into the
// same buffer reports (0, nil) — exhaustion, not failure. Callers of
// PutSlice must always check the returned count.
package ringbuf
