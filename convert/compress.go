package convert

import (
	"bytes"
	"io"
	"runtime"

	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/pgzip"
)

// CompressOptions tune gzip compression and decompression
type CompressOptions struct {
	// Level is a gzip level between -2 (huffman only) and 9. -1 selects the default level.
	Level int
	// ParallelThreshold is the input size in bytes at which compression switches to the block-parallel
	// writer. 0 disables parallel compression.
	ParallelThreshold int
	// MaxDecompressedSize fails decompression whose output would exceed this many bytes. 0 means no limit.
	MaxDecompressedSize int64
}

// DefaultCompressOptions compresses at the default level, in parallel for inputs of 1MiB or more, with no
// decompression limit
func DefaultCompressOptions() CompressOptions {
	return CompressOptions{
		Level:             gzip.DefaultCompression,
		ParallelThreshold: 1 << 20,
	}
}

// Compressor gzips and gunzips byte slices
type Compressor struct {
	options CompressOptions
}

// NewCompressor creates a Compressor with fixed options
func NewCompressor(options CompressOptions) *Compressor {
	return &Compressor{options: options}
}

func (c *Compressor) parallel(size int) bool {
	return c.options.ParallelThreshold > 0 && size >= c.options.ParallelThreshold
}

const parallelBlockGranularity = 1 << 16

// parallelBlockSize splits size bytes into roughly one block per processor, rounded up to a whole number of
// 64KiB granules
func parallelBlockSize(size int) int {
	return memutils.AlignUp(size/runtime.GOMAXPROCS(0)+1, parallelBlockGranularity)
}

func (c *Compressor) parallelWriter(out io.Writer, size int) (*pgzip.Writer, error) {
	writer, err := pgzip.NewWriterLevel(out, c.options.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid compression level %d", c.options.Level)
	}

	err = writer.SetConcurrency(parallelBlockSize(size), runtime.GOMAXPROCS(0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure parallel compression")
	}
	return writer, nil
}

// Compress returns the gzip stream for b. The output is a standard single-member gzip stream regardless of
// whether the parallel writer was used.
func (c *Compressor) Compress(b []byte) ([]byte, error) {
	var out bytes.Buffer
	var writer io.WriteCloser
	var err error

	if c.parallel(len(b)) {
		writer, err = c.parallelWriter(&out, len(b))
	} else {
		writer, err = gzip.NewWriterLevel(&out, c.options.Level)
		if err != nil {
			err = errors.Wrapf(err, "invalid compression level %d", c.options.Level)
		}
	}
	if err != nil {
		return nil, err
	}

	_, err = writer.Write(b)
	if err != nil {
		return nil, errors.Newf("Compression write failed: %s", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, errors.Newf("Compression finish failed: %s", err)
	}

	return out.Bytes(), nil
}

func decompressionFailed(err error) error {
	return errors.Mark(errors.Newf("Decompression failed: %s", err), ErrDecompression)
}

// Decompress reads the first gzip member in b. Anything after the member's trailer is ignored.
func (c *Compressor) Decompress(b []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, decompressionFailed(err)
	}
	defer reader.Close()
	reader.Multistream(false)

	var source io.Reader = reader
	if c.options.MaxDecompressedSize > 0 {
		source = io.LimitReader(reader, c.options.MaxDecompressedSize+1)
	}

	out, err := io.ReadAll(source)
	if err != nil {
		return nil, decompressionFailed(err)
	}

	if c.options.MaxDecompressedSize > 0 && int64(len(out)) > c.options.MaxDecompressedSize {
		return nil, decompressionFailed(errors.Newf("output exceeds %d bytes", c.options.MaxDecompressedSize))
	}

	return out, nil
}

// CompressString encodes s in the named text encoding and compresses the result
func (c *Compressor) CompressString(s string, encodingName string) ([]byte, error) {
	b, err := EncodeString(s, encodingName)
	if err != nil {
		return nil, err
	}
	return c.Compress(b)
}

// DecompressString decompresses b and decodes the result in the named text encoding
func (c *Compressor) DecompressString(b []byte, encodingName string) (string, error) {
	out, err := c.Decompress(b)
	if err != nil {
		return "", err
	}
	return DecodeBytes(out, encodingName)
}

// DecompressStringLenient is DecompressString with the ISO-8859-1 fallback of DecodeBytesLenient
func (c *Compressor) DecompressStringLenient(b []byte, encodingName string) (string, error) {
	out, err := c.Decompress(b)
	if err != nil {
		return "", err
	}
	return DecodeBytesLenient(out, encodingName)
}

// Base64ToDecompressedString decodes base64 input, decompresses it, and decodes the text in the named
// encoding
func (c *Compressor) Base64ToDecompressedString(input string, encodingName string) (string, error) {
	b, err := Base64ToBytes(input)
	if err != nil {
		return "", err
	}
	return c.DecompressString(b, encodingName)
}

// Base64ToDecompressedStringLenient is Base64ToDecompressedString with the ISO-8859-1 fallback
func (c *Compressor) Base64ToDecompressedStringLenient(input string, encodingName string) (string, error) {
	b, err := Base64ToBytes(input)
	if err != nil {
		return "", err
	}
	return c.DecompressStringLenient(b, encodingName)
}
