package memory

import "unsafe"

var defaultAllocator = New(nil, CBackend())

// Default returns the allocator behind the package-level functions
func Default() *Allocator {
	return defaultAllocator
}

// AllocateBytes copies data into a new buffer from the default allocator. See Allocator.AllocateBytes.
func AllocateBytes(data []byte) unsafe.Pointer {
	return defaultAllocator.AllocateBytes(data)
}

// FreeBytes releases a buffer from the default allocator. See Allocator.FreeBytes.
func FreeBytes(ptr unsafe.Pointer) {
	defaultAllocator.FreeBytes(ptr)
}

// AllocateString copies s into a new string from the default allocator. See Allocator.AllocateString.
func AllocateString(s string) (unsafe.Pointer, error) {
	return defaultAllocator.AllocateString(s)
}

// FreeString releases a string from the default allocator. See Allocator.FreeString.
func FreeString(ptr unsafe.Pointer) {
	defaultAllocator.FreeString(ptr)
}
