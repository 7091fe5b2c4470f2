package abi

import "unsafe"

// CompressString gzips the text at input after encoding it in the named encoding
func CompressString(input, encoding unsafe.Pointer, outLength *uintptr) unsafe.Pointer {
	return bytesResult("compress_string", outLength, func() ([]byte, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return nil, err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return nil, err
		}
		return compressor.CompressString(s, enc)
	})
}

func decompressString(name string, data unsafe.Pointer, length uintptr, encoding unsafe.Pointer, lenient bool) unsafe.Pointer {
	return stringResult(name, func() (string, error) {
		b, err := readBytes(data, length, "Byte array", false)
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		if lenient {
			return compressor.DecompressStringLenient(b, enc)
		}
		return compressor.DecompressString(b, enc)
	})
}

// DecompressString gunzips length bytes at data and decodes the result in the named encoding
func DecompressString(data unsafe.Pointer, length uintptr, encoding unsafe.Pointer) unsafe.Pointer {
	return decompressString("decompress_string", data, length, encoding, false)
}

// DecompressStringLenient is DecompressString with an ISO-8859-1 fallback for invalid text
func DecompressStringLenient(data unsafe.Pointer, length uintptr, encoding unsafe.Pointer) unsafe.Pointer {
	return decompressString("decompress_string_lenient", data, length, encoding, true)
}

func base64ToDecompressedString(name string, input, encoding unsafe.Pointer, lenient bool) unsafe.Pointer {
	return stringResult(name, func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		if lenient {
			return compressor.Base64ToDecompressedStringLenient(s, enc)
		}
		return compressor.Base64ToDecompressedString(s, enc)
	})
}

// Base64ToDecompressedString decodes base64, gunzips the bytes and decodes the text in the named encoding
func Base64ToDecompressedString(input, encoding unsafe.Pointer) unsafe.Pointer {
	return base64ToDecompressedString("base64_to_decompressed_string", input, encoding, false)
}

// Base64ToDecompressedStringLenient is Base64ToDecompressedString with an ISO-8859-1 fallback
func Base64ToDecompressedStringLenient(input, encoding unsafe.Pointer) unsafe.Pointer {
	return base64ToDecompressedString("base64_to_decompressed_string_lenient", input, encoding, true)
}
