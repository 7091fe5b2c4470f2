package memutils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// ErrOutOfMemory is raised as a panic when the system allocator cannot satisfy a request. Running out of memory
// is not a recoverable condition for an exported call, so nothing is expected to catch it.
var ErrOutOfMemory error = errors.New("out of memory")

// ErrCorruptHeader is returned by header validation when a buffer's recorded sizes disagree with each other
var ErrCorruptHeader error = errors.New("buffer header is corrupt")
