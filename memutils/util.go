package memutils

import (
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// WordSize is the size of a platform word, the unit buffer headers are written in
const WordSize = unsafe.Sizeof(uintptr(0))

type Number interface {
	~int | ~uint | ~uintptr
}

func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

// IsAligned reports whether ptr sits on a multiple of alignment. alignment must be a power of two.
func IsAligned(ptr unsafe.Pointer, alignment uintptr) bool {
	return uintptr(ptr)&(alignment-1) == 0
}
