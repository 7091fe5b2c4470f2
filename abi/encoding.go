package abi

import (
	"unsafe"

	"github.com/austoonz/Convert/convert"
)

// StringToBytes encodes the text at input in the named encoding and returns the bytes as a new buffer
func StringToBytes(input, encoding unsafe.Pointer, outLength *uintptr) unsafe.Pointer {
	return bytesResult("string_to_bytes", outLength, func() ([]byte, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return nil, err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return nil, err
		}
		return convert.EncodeString(s, enc)
	})
}

func bytesToString(name string, data unsafe.Pointer, length uintptr, encoding unsafe.Pointer, decode func([]byte, string) (string, error)) unsafe.Pointer {
	return stringResult(name, func() (string, error) {
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		if length == 0 {
			return "", nil
		}
		b, err := readBytes(data, length, "Bytes", false)
		if err != nil {
			return "", err
		}
		return decode(b, enc)
	})
}

// BytesToString decodes length bytes at data from the named encoding. A zero length yields an empty string
// without looking at data or the encoding name.
func BytesToString(data unsafe.Pointer, length uintptr, encoding unsafe.Pointer) unsafe.Pointer {
	return bytesToString("bytes_to_string", data, length, encoding, convert.DecodeBytes)
}

// BytesToStringLenient falls back to ISO-8859-1 when the bytes are invalid in the named encoding
func BytesToStringLenient(data unsafe.Pointer, length uintptr, encoding unsafe.Pointer) unsafe.Pointer {
	return bytesToString("bytes_to_string_lenient", data, length, encoding, convert.DecodeBytesLenient)
}
