package convert_test

import (
	"testing"

	"github.com/austoonz/Convert/convert"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestURLEncode(t *testing.T) {
	require.Equal(t, "Hello%20World%21", convert.URLEncode("Hello World!"))
	require.Equal(t, "a-b_c.d%7Ee", convert.URLEncode("a-b_c.d~e"))
	require.Equal(t, "a*b", convert.URLEncode("a*b"))
	require.Equal(t, "caf%C3%A9", convert.URLEncode("café"))
	require.Equal(t, "%2F%3F%26%3D%2B", convert.URLEncode("/?&=+"))
	require.Equal(t, "", convert.URLEncode(""))
}

func TestURLDecode(t *testing.T) {
	out, err := convert.URLDecode("Hello%20World%21")
	require.NoError(t, err)
	require.Equal(t, "Hello World!", out)

	out, err = convert.URLDecode("caf%c3%a9+x")
	require.NoError(t, err)
	require.Equal(t, "café+x", out)

	for _, input := range []string{"100%", "%4", "%G1", "a%2"} {
		_, err = convert.URLDecode(input)
		require.EqualError(t, err, "Invalid percent-encoding sequence", input)
		require.True(t, errors.Is(err, convert.ErrInvalidPercentEncoding))
	}

	_, err = convert.URLDecode("%FF")
	require.EqualError(t, err, "Invalid percent-encoding or non-UTF-8 result")
}

func TestURLRoundTrip(t *testing.T) {
	for _, input := range []string{"plain", "spaces and symbols: <>#%{}|\\^`", "日本語", "tab\tnewline\n"} {
		out, err := convert.URLDecode(convert.URLEncode(input))
		require.NoError(t, err)
		require.Equal(t, input, out)
	}
}
