package convert

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding is a text encoding that strings can be converted to and from
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingASCII
	EncodingUTF16LE
	EncodingUTF16BE
	EncodingUTF32LE
	EncodingLatin1
)

var encodingNames = map[Encoding]string{
	EncodingUTF8:    "UTF-8",
	EncodingASCII:   "ASCII",
	EncodingUTF16LE: "UTF-16",
	EncodingUTF16BE: "UTF-16BE",
	EncodingUTF32LE: "UTF-32",
	EncodingLatin1:  "ISO-8859-1",
}

func (e Encoding) String() string {
	return encodingNames[e]
}

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf32LE = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// ParseEncoding resolves an encoding name as the host spells it. Names are case-insensitive; UNICODE is
// UTF-16 little endian and BIGENDIANUNICODE is UTF-16 big endian. UTF-7 is recognized only to be refused.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToUpper(name) {
	case "UTF8", "UTF-8", "DEFAULT":
		return EncodingUTF8, nil
	case "ASCII":
		return EncodingASCII, nil
	case "UNICODE", "UTF16", "UTF-16":
		return EncodingUTF16LE, nil
	case "BIGENDIANUNICODE", "UTF16BE", "UTF-16BE":
		return EncodingUTF16BE, nil
	case "UTF32", "UTF-32":
		return EncodingUTF32LE, nil
	case "ISO-8859-1", "LATIN1", "LATIN-1":
		return EncodingLatin1, nil
	case "UTF7", "UTF-7":
		return 0, errors.Mark(errors.New("UTF7 encoding is deprecated and not supported"), ErrDeprecatedEncoding)
	default:
		return 0, unsupportedEncoding(name)
	}
}

func unsupportedEncoding(name string) error {
	return errors.Mark(errors.Newf("Unsupported encoding: %s", name), ErrUnsupportedEncoding)
}

func invalidData(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidData)
}

// EncodeString converts s to bytes in the named encoding. ISO-8859-1 is only accepted for decoding.
func EncodeString(s string, encodingName string) ([]byte, error) {
	enc, err := ParseEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	if enc == EncodingLatin1 {
		return nil, unsupportedEncoding(encodingName)
	}

	return enc.Encode(s)
}

// Encode converts s to bytes in e. No byte order mark is written. EncodingLatin1 is rejected as unsupported.
func (e Encoding) Encode(s string) ([]byte, error) {
	switch e {
	case EncodingUTF8:
		return []byte(s), nil
	case EncodingASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return nil, invalidData("String contains non-ASCII characters")
			}
		}
		return []byte(s), nil
	case EncodingUTF16LE:
		return transcode(utf16LE, s)
	case EncodingUTF16BE:
		return transcode(utf16BE, s)
	case EncodingUTF32LE:
		return transcode(utf32LE, s)
	}

	return nil, unsupportedEncoding(e.String())
}

func transcode(enc encoding.Encoding, s string) ([]byte, error) {
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode string as %s", enc)
	}
	return []byte(out), nil
}

// DecodeBytes converts b from the named encoding to a string. Bytes that are not valid in the encoding
// produce an error marked with ErrInvalidData.
func DecodeBytes(b []byte, encodingName string) (string, error) {
	enc, err := ParseEncoding(encodingName)
	if err != nil {
		return "", err
	}

	return enc.Decode(b)
}

// DecodeBytesLenient behaves like DecodeBytes, except that bytes which are invalid in the named encoding are
// decoded as ISO-8859-1 instead of failing. Unknown encoding names still fail.
func DecodeBytesLenient(b []byte, encodingName string) (string, error) {
	s, err := DecodeBytes(b, encodingName)
	if errors.Is(err, ErrInvalidData) {
		return EncodingLatin1.Decode(b)
	}
	return s, err
}

// Decode converts b from e to a string
func (e Encoding) Decode(b []byte) (string, error) {
	switch e {
	case EncodingUTF8:
		if err := validateUTF8(b); err != nil {
			return "", invalidData("Invalid UTF-8 bytes: %s", err)
		}
		return string(b), nil
	case EncodingASCII:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return "", invalidData("Bytes contain non-ASCII values")
			}
		}
		return string(b), nil
	case EncodingUTF16LE:
		return decodeUTF16(b, binary.LittleEndian, utf16LE, "UTF-16")
	case EncodingUTF16BE:
		return decodeUTF16(b, binary.BigEndian, utf16BE, "UTF-16BE")
	case EncodingUTF32LE:
		if len(b)%4 != 0 {
			return "", invalidData("Invalid UTF-32 byte length (must be multiple of 4)")
		}
		for i := 0; i < len(b); i += 4 {
			codePoint := binary.LittleEndian.Uint32(b[i:])
			if codePoint > utf8.MaxRune || !utf8.ValidRune(rune(codePoint)) {
				return "", invalidData("Invalid UTF-32 code point: %d", codePoint)
			}
		}
		out, err := utf32LE.NewDecoder().Bytes(b)
		if err != nil {
			return "", invalidData("Invalid UTF-32 bytes: %s", err)
		}
		return string(out), nil
	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return "", errors.Wrap(err, "failed to decode ISO-8859-1")
		}
		// NUL is mapped to the replacement character so the result can always be handed out as a C string
		return strings.ReplaceAll(string(out), "\x00", "\uFFFD"), nil
	}

	return "", unsupportedEncoding(e.String())
}

// utf8Error describes the first invalid sequence in a byte slice. Length is 0 when the input ends in the
// middle of an otherwise valid sequence.
type utf8Error struct {
	Index  int
	Length int
}

func (e *utf8Error) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.Index)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.Length, e.Index)
}

func validateUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &utf8Error{Index: i, Length: invalidSequenceLength(b[i:])}
		}
		i += size
	}
	return nil
}

// invalidSequenceLength returns how many bytes starting at b[0] form the rejected sequence, or 0 if b ends
// before the sequence could be completed
func invalidSequenceLength(b []byte) int {
	lead := b[0]

	var width int
	low, high := byte(0x80), byte(0xBF)
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		width = 2
	case lead == 0xE0:
		width, low = 3, 0xA0
	case lead == 0xED:
		width, high = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		width = 3
	case lead == 0xF0:
		width, low = 4, 0x90
	case lead == 0xF4:
		width, high = 4, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		width = 4
	default:
		return 1
	}

	for n := 1; n < width; n++ {
		if n >= len(b) {
			return 0
		}
		if b[n] < low || b[n] > high {
			return n
		}
		low, high = 0x80, 0xBF
	}

	// unreachable for input rejected by utf8.DecodeRune
	return width
}

func decodeUTF16(b []byte, order binary.ByteOrder, enc encoding.Encoding, name string) (string, error) {
	if len(b)%2 != 0 {
		return "", invalidData("Invalid %s byte length (must be even)", name)
	}

	for i := 0; i < len(b); i += 2 {
		unit := rune(order.Uint16(b[i:]))
		if !utf16.IsSurrogate(unit) {
			continue
		}

		if i+4 > len(b) {
			return "", invalidData("Invalid %s bytes: unpaired surrogate found at index %d", name, i/2)
		}
		next := rune(order.Uint16(b[i+2:]))
		if utf16.DecodeRune(unit, next) == utf8.RuneError {
			return "", invalidData("Invalid %s bytes: unpaired surrogate found at index %d", name, i/2)
		}
		i += 2
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", invalidData("Invalid %s bytes: %s", name, err)
	}
	return string(out), nil
}
