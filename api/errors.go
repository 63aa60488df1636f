// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error taxonomy shared by all buffer operations. Three kinds, exhaustive.

package api

import "errors"

var (
	// ErrTimeout means the lock could not be acquired. No state changed.
	// Always locally recoverable by retrying.
	ErrTimeout = errors.New("lockring: timed out acquiring lock")

	// ErrIllegal means the operation is invalid in the current state:
	// Get on an empty buffer, or single Put on a full buffer with the
	// overwrite policy disabled. No state changed.
	ErrIllegal = errors.New("lockring: operation illegal in current state")

	// ErrOverwrite means the operation succeeded but discarded unread
	// data to make room. State did change; treat this as a warning-level
	// success, not a failure. Check with errors.Is before failing on it.
	ErrOverwrite = errors.New("lockring: unread data overwritten")
)

// IsFailure reports whether err represents a failed operation. ErrOverwrite
// accompanies a completed write and is deliberately excluded.
func IsFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrOverwrite)
}
