package memory

// #include <stdlib.h>
import "C"
import "unsafe"

type cBackend struct{}

// CBackend returns the Backend that allocates with the C runtime's malloc and free
func CBackend() Backend {
	return cBackend{}
}

func (cBackend) Malloc(size uintptr) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

func (cBackend) Free(ptr unsafe.Pointer, size uintptr) {
	C.free(ptr)
}
