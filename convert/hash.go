package convert

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/cockroachdb/errors"
)

// Algorithm is a digest that ComputeHash knows how to produce
type Algorithm string

const (
	AlgorithmMD5      Algorithm = "MD5"
	AlgorithmSHA1     Algorithm = "SHA1"
	AlgorithmSHA256   Algorithm = "SHA256"
	AlgorithmSHA384   Algorithm = "SHA384"
	AlgorithmSHA512   Algorithm = "SHA512"
	AlgorithmXXHash64 Algorithm = "XXHASH64"
)

var cryptographicHashes = map[Algorithm]func() hash.Hash{
	AlgorithmMD5:    md5.New,
	AlgorithmSHA1:   sha1.New,
	AlgorithmSHA256: sha256.New,
	AlgorithmSHA384: sha512.New384,
	AlgorithmSHA512: sha512.New,
}

func newXXHash64() hash.Hash {
	return xxhash.New64()
}

func unsupportedAlgorithm(name string, supported string) error {
	return errors.Mark(errors.Newf("Unsupported algorithm: %s. Supported: %s", name, supported), ErrUnsupportedAlgorithm)
}

func upperHex(sum []byte) string {
	return strings.ToUpper(hex.EncodeToString(sum))
}

// HashBytes digests b with the named algorithm and returns the digest as uppercase hex. Algorithm names
// are case-insensitive. XXHASH64 is accepted alongside the cryptographic digests for fast checksums; its
// 8-byte sum is rendered big endian.
func HashBytes(b []byte, algorithm string) (string, error) {
	name := Algorithm(strings.ToUpper(algorithm))

	constructor, ok := cryptographicHashes[name]
	if name == AlgorithmXXHash64 {
		constructor, ok = newXXHash64, true
	}
	if !ok {
		return "", unsupportedAlgorithm(algorithm, "MD5, SHA1, SHA256, SHA384, SHA512, XXHASH64")
	}

	h := constructor()
	h.Write(b)
	return upperHex(h.Sum(nil)), nil
}

// ComputeHash encodes s in the named text encoding and digests the result
func ComputeHash(s string, algorithm string, encodingName string) (string, error) {
	b, err := EncodeString(s, encodingName)
	if err != nil {
		return "", err
	}
	return HashBytes(b, algorithm)
}

// HMACBytes authenticates input under key with the named cryptographic digest, returning uppercase hex
func HMACBytes(input []byte, key []byte, algorithm string) (string, error) {
	constructor, ok := cryptographicHashes[Algorithm(strings.ToUpper(algorithm))]
	if !ok {
		return "", unsupportedAlgorithm(algorithm, "MD5, SHA1, SHA256, SHA384, SHA512")
	}

	mac := hmac.New(constructor, key)
	mac.Write(input)
	return upperHex(mac.Sum(nil)), nil
}

// ComputeHMAC encodes s in the named text encoding and authenticates the result under key
func ComputeHMAC(s string, key []byte, algorithm string, encodingName string) (string, error) {
	b, err := EncodeString(s, encodingName)
	if err != nil {
		return "", err
	}
	return HMACBytes(b, key, algorithm)
}
