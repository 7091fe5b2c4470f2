//go:build linux

package lasterror

import "golang.org/x/sys/unix"

// CurrentThreadID returns the operating system's id for the thread running the caller, for diagnostics.
// Goroutines migrate between threads, so the value is only stable while the goroutine is locked to its
// thread, and the system may hand the same id to a later thread once this one exits.
func CurrentThreadID() uint64 {
	return uint64(unix.Gettid())
}
