package memory

import "unsafe"

// StringLength counts the bytes before the NUL terminator of the C string at ptr. ptr must not be nil.
func StringLength(ptr unsafe.Pointer) int {
	length := 0
	for *(*byte)(unsafe.Add(ptr, length)) != 0 {
		length++
	}
	return length
}

// StringAt copies the NUL-terminated string at ptr into Go memory. The bytes are not validated as UTF-8.
func StringAt(ptr unsafe.Pointer) string {
	return string(unsafe.Slice((*byte)(ptr), StringLength(ptr)))
}

// BytesAt copies length bytes starting at ptr into Go memory
func BytesAt(ptr unsafe.Pointer, length int) []byte {
	if length == 0 {
		return []byte{}
	}

	out := make([]byte, length)
	copy(out, unsafe.Slice((*byte)(ptr), length))
	return out
}

// View returns the data of a buffer produced by AllocateBytes without copying it. The slice aliases
// foreign memory and must not be used after the buffer is freed.
func View(ptr unsafe.Pointer) []byte {
	return unsafe.Slice((*byte)(ptr), headerAt(ptr).DataLength)
}
