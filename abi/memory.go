package abi

import (
	"unsafe"

	"github.com/austoonz/Convert/lasterror"
	"github.com/austoonz/Convert/memory"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// FreeBytes releases a buffer returned by any function that produces bytes. nil is ignored.
func FreeBytes(ptr unsafe.Pointer) {
	memory.FreeBytes(ptr)
}

// FreeString releases a string returned by any function that produces text. nil is ignored.
func FreeString(ptr unsafe.Pointer) {
	memory.FreeString(ptr)
}

// GetLastError returns a new copy of the calling thread's last error message, or nil when the last call
// on this thread succeeded. The slot is not consumed. The copy must be released with FreeString.
func GetLastError() unsafe.Pointer {
	message, ok := lasterror.Get()
	if !ok {
		return nil
	}

	ptr, err := memory.AllocateString(message)
	if err != nil {
		return nil
	}
	return ptr
}

// StringToBytesCopy copies the UTF-8 bytes of a C string, without its terminator, into a new buffer.
// It returns nil without touching the error slot when either pointer is nil.
func StringToBytesCopy(input unsafe.Pointer, outLength *uintptr) unsafe.Pointer {
	if input == nil || outLength == nil {
		return nil
	}

	data := memory.BytesAt(input, memory.StringLength(input))
	*outLength = uintptr(len(data))
	return memory.AllocateBytes(data)
}

// MemoryStats returns the default allocator's statistics, plus the number of threads with an unread error,
// as a JSON document
func MemoryStats() unsafe.Pointer {
	return stringResult("memory_stats", func() (string, error) {
		writer := jwriter.NewWriter()
		json := writer.Object()
		memory.Default().PrintStatistics(&json)
		json.Name("PendingErrors").Int(lasterror.Pending())
		json.End()
		return string(writer.Bytes()), nil
	})
}
