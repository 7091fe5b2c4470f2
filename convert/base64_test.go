package convert_test

import (
	"testing"

	"github.com/austoonz/Convert/convert"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestStringToBase64(t *testing.T) {
	out, err := convert.StringToBase64("Hello", "UTF8")
	require.NoError(t, err)
	require.Equal(t, "SGVsbG8=", out)

	out, err = convert.StringToBase64("Hello", "Unicode")
	require.NoError(t, err)
	require.Equal(t, "SABlAGwAbABvAA==", out)

	out, err = convert.StringToBase64("", "UTF8")
	require.NoError(t, err)
	require.Equal(t, "", out)

	_, err = convert.StringToBase64("Hello", "UTF7")
	require.EqualError(t, err, "UTF7 encoding is deprecated and not supported")
}

func TestBase64ToString(t *testing.T) {
	out, err := convert.Base64ToString("SABlAGwAbABvAA==", "UTF-16")
	require.NoError(t, err)
	require.Equal(t, "Hello", out)

	_, err = convert.Base64ToString("not base64!", "UTF8")
	require.Error(t, err)
	require.True(t, errors.Is(err, convert.ErrInvalidBase64))
	require.Contains(t, err.Error(), "Failed to decode Base64: ")

	// 0xE9 alone is not UTF-8
	_, err = convert.Base64ToString("6Q==", "UTF8")
	require.True(t, errors.Is(err, convert.ErrInvalidData))

	out, err = convert.Base64ToStringLenient("6Q==", "UTF8")
	require.NoError(t, err)
	require.Equal(t, "é", out)
}

func TestBase64Bytes(t *testing.T) {
	data := []byte{0, 1, 2, 0xFE, 0xFF}

	encoded := convert.BytesToBase64(data)
	require.Equal(t, "AAEC/v8=", encoded)

	decoded, err := convert.Base64ToBytes(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)

	decoded, err = convert.Base64ToBytes("")
	require.NoError(t, err)
	require.NotNil(t, decoded)
	require.Empty(t, decoded)

	require.Equal(t, "", convert.BytesToBase64(nil))
}
