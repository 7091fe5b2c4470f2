package convert

import (
	"encoding/base64"

	"github.com/cockroachdb/errors"
)

// BytesToBase64 encodes b with the standard padded alphabet
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBytes decodes standard padded base64. An empty input decodes to an empty, non-nil slice.
func Base64ToBytes(input string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, errors.Mark(errors.Newf("Failed to decode Base64: %s", err), ErrInvalidBase64)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// StringToBase64 encodes s in the named text encoding and returns the base64 of the result
func StringToBase64(s string, encodingName string) (string, error) {
	b, err := EncodeString(s, encodingName)
	if err != nil {
		return "", err
	}
	return BytesToBase64(b), nil
}

// Base64ToString decodes base64 input and interprets the bytes in the named text encoding
func Base64ToString(input string, encodingName string) (string, error) {
	b, err := Base64ToBytes(input)
	if err != nil {
		return "", err
	}
	return DecodeBytes(b, encodingName)
}

// Base64ToStringLenient is Base64ToString with the ISO-8859-1 fallback of DecodeBytesLenient
func Base64ToStringLenient(input string, encodingName string) (string, error) {
	b, err := Base64ToBytes(input)
	if err != nil {
		return "", err
	}
	return DecodeBytesLenient(b, encodingName)
}
