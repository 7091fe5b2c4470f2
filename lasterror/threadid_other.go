//go:build !linux && !windows

package lasterror

/*
#include <pthread.h>
#include <stdint.h>

static uintptr_t current_thread_id(void) {
	return (uintptr_t)pthread_self();
}
*/
import "C"

// CurrentThreadID returns the operating system's id for the thread running the caller, for diagnostics.
// Goroutines migrate between threads, so the value is only stable while the goroutine is locked to its
// thread, and the system may hand the same id to a later thread once this one exits.
func CurrentThreadID() uint64 {
	return uint64(C.current_thread_id())
}
