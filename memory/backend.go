//go:generate mockgen -destination mocks/backend.go -package mocks github.com/austoonz/Convert/memory Backend

package memory

import "unsafe"

// Backend is the system allocator buffers and strings are carved from. Memory handed to the host must not
// live on the Go heap, so the default backend calls into the C allocator.
type Backend interface {
	// Malloc returns size bytes of uninitialized memory aligned for any scalar type, or nil if the request
	// cannot be satisfied
	Malloc(size uintptr) unsafe.Pointer
	// Free releases memory returned by Malloc. size is the size that was requested.
	Free(ptr unsafe.Pointer, size uintptr)
}
