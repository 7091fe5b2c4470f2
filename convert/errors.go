package convert

import "github.com/cockroachdb/errors"

// Sentinels used to classify conversion failures with errors.Is. The messages returned to callers come from
// the errors these are marked onto, not from the sentinels themselves.
var (
	ErrUnsupportedEncoding    = errors.New("unsupported encoding")
	ErrDeprecatedEncoding     = errors.New("deprecated encoding")
	ErrInvalidData            = errors.New("bytes are invalid for the encoding")
	ErrUnsupportedAlgorithm   = errors.New("unsupported algorithm")
	ErrInvalidBase64          = errors.New("invalid base64")
	ErrDecompression          = errors.New("decompression failed")
	ErrInvalidPercentEncoding = errors.New("invalid percent-encoding")
	ErrInvalidDate            = errors.New("invalid date")
)
