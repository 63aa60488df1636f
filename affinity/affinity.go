// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_windows.go, etc.)
// guarded by build tags.
//
// Dedicating a core per side of a single-producer/single-consumer buffer
// keeps the spin budget of locks.SpinLock predictable; callers should pair
// SetAffinity with runtime.LockOSThread.

package affinity

import "fmt"

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: invalid cpu id %d", cpuID)
	}
	return setAffinityPlatform(cpuID)
}
