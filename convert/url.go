package convert

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

const upperHexDigits = "0123456789ABCDEF"

func unreserved(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_' || c == '.' || c == '*'
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// URLEncode percent-encodes every byte of s outside A-Z, a-z, 0-9, '-', '_', '.' and '*', using uppercase hex.
// Spaces become %20 and '~' is encoded.
func URLEncode(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHexDigits[c>>4])
		builder.WriteByte(upperHexDigits[c&0x0F])
	}

	return builder.String()
}

// URLDecode reverses URLEncode. Every '%' must be followed by two hex digits and the decoded bytes must be
// valid UTF-8. '+' is left as is.
func URLDecode(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", errors.Mark(errors.New("Invalid percent-encoding sequence"), ErrInvalidPercentEncoding)
		}
		i += 2
	}

	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return "", errors.Mark(errors.New("Invalid percent-encoding or non-UTF-8 result"), ErrInvalidPercentEncoding)
	}

	return decoded, nil
}
