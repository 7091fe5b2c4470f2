package memory_test

import (
	"io"
	"testing"
	"unsafe"

	"github.com/austoonz/Convert/memory"
	"github.com/austoonz/Convert/memory/mocks"
	"github.com/austoonz/Convert/memutils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func TestFreeBytesCorruptHeaderPanics(t *testing.T) {
	if !memutils.ValidationEnabled {
		t.Skip("header validation at free requires the debug_mem_utils build tag")
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	block := make([]uintptr, 4)
	blockPtr := unsafe.Pointer(&block[0])

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Malloc(gomock.Any()).Return(blockPtr)

	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), backend)
	ptr := alloc.AllocateBytes([]byte("abc"))

	// Overwrite total size
	block[1] = 1

	require.Panics(t, func() { alloc.FreeBytes(ptr) })
}
