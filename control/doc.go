// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Opt-in observability for lockring buffers. The buffer core never records
// anything itself; adapters.Instrumented publishes its counters here.
package control
