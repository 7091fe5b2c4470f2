package abi

import (
	"unsafe"

	"github.com/austoonz/Convert/convert"
	"github.com/austoonz/Convert/lasterror"
)

// URLEncode percent-encodes the text at input. A nil input returns nil with the error slot cleared.
func URLEncode(input unsafe.Pointer) unsafe.Pointer {
	if input == nil {
		lasterror.Clear()
		return nil
	}

	return stringResult("url_encode", func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		return convert.URLEncode(s), nil
	})
}

// URLDecode reverses URLEncode. A nil input returns nil with the error slot cleared.
func URLDecode(input unsafe.Pointer) unsafe.Pointer {
	if input == nil {
		lasterror.Clear()
		return nil
	}

	return stringResult("url_decode", func() (string, error) {
		s, err := readString(input, "Input")
		if err != nil {
			return "", err
		}
		return convert.URLDecode(s)
	})
}
