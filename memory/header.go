package memory

import (
	"unsafe"

	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
)

// Header is the metadata block written immediately before the data of every buffer handed to the host.
// Both fields are native-endian platform words, so the layout in memory is
// [DataLength][TotalSize][data...]. A buffer pointer can be freed without any side table because the
// deallocator steps back HeaderSize bytes and reads TotalSize from here.
type Header struct {
	DataLength uintptr
	TotalSize  uintptr
}

// HeaderSize is the number of bytes between the start of an allocation and the data pointer returned to the host
const HeaderSize = unsafe.Sizeof(Header{})

// HeaderOf returns a copy of the header belonging to a buffer produced by AllocateBytes. ptr must not be nil.
func HeaderOf(ptr unsafe.Pointer) Header {
	return *headerAt(ptr)
}

func headerAt(ptr unsafe.Pointer) *Header {
	return (*Header)(unsafe.Add(ptr, -int(HeaderSize)))
}

// Validate checks that the header is word-aligned and that TotalSize covers the header and exactly
// DataLength bytes of data
func (h *Header) Validate() error {
	memutils.DebugCheckPow2(memutils.WordSize, "word size")
	if !memutils.IsAligned(unsafe.Pointer(h), memutils.WordSize) {
		return errors.Wrapf(memutils.ErrCorruptHeader, "header at %p is not aligned to %d bytes", h, memutils.WordSize)
	}

	if h.TotalSize != HeaderSize+h.DataLength {
		return errors.Wrapf(memutils.ErrCorruptHeader, "total size %d does not equal header size %d plus data length %d",
			h.TotalSize, HeaderSize, h.DataLength)
	}

	return nil
}
