package abi

import (
	"unsafe"

	"github.com/austoonz/Convert/convert"
)

// StringToBase64 encodes the text at input in the named encoding and returns the bytes as base64
func StringToBase64(input, encoding unsafe.Pointer) unsafe.Pointer {
	return stringResult("string_to_base64", func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		return convert.StringToBase64(s, enc)
	})
}

func base64ToString(name string, input, encoding unsafe.Pointer, decode func(string, string) (string, error)) unsafe.Pointer {
	return stringResult(name, func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		return decode(s, enc)
	})
}

// Base64ToString decodes base64 and reads the bytes as text in the named encoding
func Base64ToString(input, encoding unsafe.Pointer) unsafe.Pointer {
	return base64ToString("base64_to_string", input, encoding, convert.Base64ToString)
}

// Base64ToStringLenient falls back to ISO-8859-1 when the decoded bytes are invalid in the named encoding
func Base64ToStringLenient(input, encoding unsafe.Pointer) unsafe.Pointer {
	return base64ToString("base64_to_string_lenient", input, encoding, convert.Base64ToStringLenient)
}

// BytesToBase64 encodes length bytes at data. A zero length yields an empty string.
func BytesToBase64(data unsafe.Pointer, length uintptr) unsafe.Pointer {
	return stringResult("bytes_to_base64", func() (string, error) {
		b, err := readBytes(data, length, "Byte array", false)
		if err != nil {
			return "", err
		}
		return convert.BytesToBase64(b), nil
	})
}

// Base64ToBytes decodes a base64 string into a new buffer. Empty input yields a valid empty buffer.
func Base64ToBytes(input unsafe.Pointer, outLength *uintptr) unsafe.Pointer {
	return bytesResult("base64_to_bytes", outLength, func() ([]byte, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return nil, err
		}
		return convert.Base64ToBytes(s)
	})
}
