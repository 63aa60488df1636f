// File: affinity/affinity_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

import (
	"runtime"
	"testing"
)

func TestSetAffinityRejectsNegative(t *testing.T) {
	if err := SetAffinity(-1); err == nil {
		t.Fatal("expected error for negative cpu id")
	}
}

func TestSetAffinityCurrentThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := SetAffinity(0); err != nil {
		t.Skipf("affinity unavailable here: %v", err)
	}
}
