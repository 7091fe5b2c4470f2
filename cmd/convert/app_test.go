package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"convert"}, args...))
	return strings.TrimSuffix(stdout.String(), "\n"), err
}

func TestBase64Commands(t *testing.T) {
	out, err := runApp(t, "", "base64", "encode", "--encoding", "Unicode", "Hello")
	require.NoError(t, err)
	require.Equal(t, "SABlAGwAbABvAA==", out)

	out, err = runApp(t, "SABlAGwAbABvAA==\n", "base64", "decode", "-e", "Unicode")
	require.NoError(t, err)
	require.Equal(t, "Hello", out)

	out, err = runApp(t, "", "base64", "decode", "--lenient", "6Q==")
	require.NoError(t, err)
	require.Equal(t, "é", out)

	_, err = runApp(t, "", "base64", "encode", "--encoding", "UTF7", "Hello")
	require.EqualError(t, err, "UTF7 encoding is deprecated and not supported")
}

func TestHashCommand(t *testing.T) {
	out, err := runApp(t, "test", "hash", "--algorithm", "MD5")
	require.NoError(t, err)
	require.Equal(t, "098F6BCD4621D373CADE4E832627B4F6", out)

	out, err = runApp(t, "", "hash", "-a", "SHA256", "--hmac-key", "key", "The quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	require.Equal(t, "F7BC83F430538424B13298E6AA6FB143EF4D59A14946175997479DBC2D1A3CD8", out)
}

func TestGzipCommands(t *testing.T) {
	compressed, err := runApp(t, "", "gzip", "compress", "--level", "9", "round trip through the cli")
	require.NoError(t, err)

	out, err := runApp(t, compressed, "gzip", "decompress")
	require.NoError(t, err)
	require.Equal(t, "round trip through the cli", out)
}

func TestURLCommands(t *testing.T) {
	out, err := runApp(t, "", "url", "encode", "a b&c")
	require.NoError(t, err)
	require.Equal(t, "a%20b%26c", out)

	out, err = runApp(t, "", "url", "decode", "a%20b%26c")
	require.NoError(t, err)
	require.Equal(t, "a b&c", out)

	_, err = runApp(t, "", "url", "decode", "%G0")
	require.EqualError(t, err, "Invalid percent-encoding sequence")
}

func TestUnixTimeCommands(t *testing.T) {
	out, err := runApp(t, "", "unixtime", "from", "1709209815")
	require.NoError(t, err)
	require.Equal(t, "2024-02-29T12:30:15Z", out)

	out, err = runApp(t, "", "unixtime", "to", "--milliseconds", "2024-01-01T00:00:00Z")
	require.NoError(t, err)
	require.Equal(t, "1704067200000", out)

	_, err = runApp(t, "", "unixtime", "to", "2023-02-29T00:00:00Z")
	require.Error(t, err)

	_, err = runApp(t, "", "unixtime", "from", "yesterday")
	require.ErrorContains(t, err, `invalid timestamp "yesterday"`)
}

func TestTemperatureCommands(t *testing.T) {
	out, err := runApp(t, "", "temperature", "to-celsius", "212")
	require.NoError(t, err)
	require.Equal(t, "100", out)

	out, err = runApp(t, "", "temperature", "to-fahrenheit", "--", "-40")
	require.NoError(t, err)
	require.Equal(t, "-40", out)
}
