package abi

import (
	"unsafe"

	"github.com/austoonz/Convert/convert"
)

// ComputeHash digests the text at input, encoded in the named encoding, and returns uppercase hex
func ComputeHash(input, algorithm, encoding unsafe.Pointer) unsafe.Pointer {
	return stringResult("compute_hash", func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		alg, err := readString(algorithm, "Algorithm")
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		return convert.ComputeHash(s, alg, enc)
	})
}

// ComputeHMACWithEncoding authenticates the text at input, encoded in the named encoding, with keyLength
// bytes of key
func ComputeHMACWithEncoding(input, key unsafe.Pointer, keyLength uintptr, algorithm, encoding unsafe.Pointer) unsafe.Pointer {
	return stringResult("compute_hmac_with_encoding", func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		k, err := readBytes(key, keyLength, "Key", false)
		if err != nil {
			return "", err
		}
		alg, err := readString(algorithm, "Algorithm")
		if err != nil {
			return "", err
		}
		enc, err := readString(encoding, "Encoding")
		if err != nil {
			return "", err
		}
		return convert.ComputeHMAC(s, k, alg, enc)
	})
}

// ComputeHMACBytes authenticates raw bytes. input may be nil when inputLength is 0.
func ComputeHMACBytes(input unsafe.Pointer, inputLength uintptr, key unsafe.Pointer, keyLength uintptr, algorithm unsafe.Pointer) unsafe.Pointer {
	return stringResult("compute_hmac_bytes", func() (string, error) {
		k, err := readBytes(key, keyLength, "Key", false)
		if err != nil {
			return "", err
		}
		alg, err := readString(algorithm, "Algorithm")
		if err != nil {
			return "", err
		}
		b, err := readBytes(input, inputLength, "Input bytes", true)
		if err != nil {
			return "", err
		}
		return convert.HMACBytes(b, k, alg)
	})
}
