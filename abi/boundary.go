// Package abi implements every function the shared library exports, at the level of raw pointers. Each
// function clears the calling thread's error slot on entry; on failure it records a message with lasterror
// and returns the failure sentinel, on success it hands ownership of its result to the host through the
// memory package. The cgo export shims in cmd/convertcore only convert C types and delegate here.
package abi

import (
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/austoonz/Convert/convert"
	"github.com/austoonz/Convert/internal/config"
	"github.com/austoonz/Convert/internal/logging"
	"github.com/austoonz/Convert/lasterror"
	"github.com/austoonz/Convert/memory"
	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

var (
	setupOnce  sync.Once
	compressor *convert.Compressor
)

// Setup loads the library configuration and installs the logger. It runs once, on the first exported
// call; later calls are no-ops. A configuration that fails to load is logged and replaced by the defaults
// because the host has no channel to receive the error.
func Setup() {
	setupOnce.Do(func() {
		conf, err := config.Load()
		logging.Configure(conf)
		if err != nil {
			logging.Logger().Warn("abi::Setup", slog.String("error", err.Error()))
		}

		compressor = convert.NewCompressor(compressOptions(conf))
	})
}

func compressOptions(conf config.Config) convert.CompressOptions {
	return convert.CompressOptions{
		Level:               conf.CompressionLevel,
		ParallelThreshold:   conf.ParallelThreshold,
		MaxDecompressedSize: conf.MaxDecompressedSize,
	}
}

func report(name string, err error) {
	message := err.Error()
	logging.Logger().Debug("abi::"+name, slog.String("error", message), slog.Uint64("thread", lasterror.CurrentThreadID()))
	lasterror.Set(message)
}

// run executes op between the error slot protocol's clear and set steps. A panic inside op is reported as
// an ordinary failure, except allocation exhaustion, which is left to terminate the process.
func run(name string, op func() error) (ok bool) {
	Setup()
	lasterror.Clear()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if err, isErr := r.(error); isErr && errors.Is(err, memutils.ErrOutOfMemory) {
			panic(r)
		}

		report(name, errors.Newf("internal error: %v", r))
		ok = false
	}()

	err := op()
	if err != nil {
		report(name, err)
		return false
	}

	return true
}

// stringResult runs op and hands its result to the host as an owned string, or returns nil on failure
func stringResult(name string, op func() (string, error)) unsafe.Pointer {
	var result unsafe.Pointer

	run(name, func() error {
		s, err := op()
		if err != nil {
			return err
		}

		result, err = memory.AllocateString(s)
		if errors.Is(err, memory.ErrInteriorNUL) {
			return errors.New("Result string contains null byte")
		}
		return err
	})

	return result
}

// bytesResult runs op and hands its result to the host as an owned buffer, or returns nil on failure.
// outLength, when not nil, receives the buffer's data length, or 0 on failure.
func bytesResult(name string, outLength *uintptr, op func() ([]byte, error)) unsafe.Pointer {
	var result unsafe.Pointer
	var length uintptr

	run(name, func() error {
		b, err := op()
		if err != nil {
			return err
		}

		result = memory.AllocateBytes(b)
		length = uintptr(len(b))
		return nil
	})

	if outLength != nil {
		*outLength = length
	}
	return result
}

// readString copies a NUL-terminated UTF-8 argument. what names the argument in error messages.
func readString(ptr unsafe.Pointer, what string) (string, error) {
	if ptr == nil {
		return "", errors.Newf("%s pointer is null", what)
	}

	s := memory.StringAt(ptr)
	if !utf8.ValidString(s) {
		return "", errors.Newf("Invalid UTF-8 in %s string", strings.ToLower(what))
	}

	return s, nil
}

// readBytes copies a pointer and length argument. A nil pointer is accepted only when allowEmpty is set
// and length is 0.
func readBytes(ptr unsafe.Pointer, length uintptr, what string, allowEmpty bool) ([]byte, error) {
	if ptr == nil {
		if allowEmpty && length == 0 {
			return []byte{}, nil
		}
		return nil, errors.Newf("%s pointer is null", what)
	}

	return memory.BytesAt(ptr, int(length)), nil
}
