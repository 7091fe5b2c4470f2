package memory_test

import (
	"encoding/json"
	"io"
	"sync"
	"testing"
	"unsafe"

	"github.com/austoonz/Convert/memory"
	"github.com/austoonz/Convert/memory/mocks"
	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

func newAllocator() *memory.Allocator {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return memory.New(logger, memory.CBackend())
}

func patternBytes(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 256)
	}
	return data
}

func TestHeaderSize(t *testing.T) {
	require.Equal(t, 2*memutils.WordSize, memory.HeaderSize)
}

func TestAllocateBytesRoundTrip(t *testing.T) {
	alloc := newAllocator()

	for _, size := range []int{0, 1, 7, 8, 15, 16, 100, 1000, 10000} {
		data := patternBytes(size)

		ptr := alloc.AllocateBytes(data)
		require.NotNil(t, ptr, "size %d", size)
		require.Equal(t, data, memory.BytesAt(ptr, size))
		require.Equal(t, memory.Header{
			DataLength: uintptr(size),
			TotalSize:  memory.HeaderSize + uintptr(size),
		}, memory.HeaderOf(ptr))

		alloc.FreeBytes(ptr)
	}

	stats := alloc.Statistics()
	require.Equal(t, memutils.Statistics{}, stats.Live())
	require.False(t, stats.Leaked())
	require.Equal(t, 9, stats.TotalAllocations)
}

func TestAllocateBytesEmpty(t *testing.T) {
	alloc := newAllocator()

	ptr := alloc.AllocateBytes(nil)
	require.NotNil(t, ptr)
	require.Equal(t, memory.Header{TotalSize: memory.HeaderSize}, memory.HeaderOf(ptr))
	require.Empty(t, memory.View(ptr))
	alloc.FreeBytes(ptr)

	ptr = alloc.AllocateBytes([]byte{})
	require.NotNil(t, ptr)
	alloc.FreeBytes(ptr)
}

func TestAllocateBytesAllByteValues(t *testing.T) {
	alloc := newAllocator()

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	ptr := alloc.AllocateBytes(data)
	require.Equal(t, data, memory.View(ptr))
	alloc.FreeBytes(ptr)
}

func TestAllocateBytesAlignment(t *testing.T) {
	alloc := newAllocator()

	for size := 0; size < 64; size++ {
		ptr := alloc.AllocateBytes(patternBytes(size))
		require.True(t, memutils.IsAligned(ptr, memutils.WordSize), "size %d", size)
		require.True(t, memutils.IsAligned(unsafe.Add(ptr, -int(memory.HeaderSize)), memutils.WordSize), "size %d", size)
		alloc.FreeBytes(ptr)
	}
}

func TestAllocateBytesCopiesInput(t *testing.T) {
	alloc := newAllocator()

	data := []byte("mutable")
	ptr := alloc.AllocateBytes(data)
	defer alloc.FreeBytes(ptr)

	data[0] = 'M'
	require.Equal(t, []byte("mutable"), memory.View(ptr))
}

func TestFreeNilIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), backend)

	for i := 0; i < 10; i++ {
		alloc.FreeBytes(nil)
		alloc.FreeString(nil)
	}

	require.Equal(t, memutils.DetailedStatistics{}, alloc.Statistics())
}

func TestFreeBytesReleasesWholeBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	block := make([]uintptr, 4)
	blockPtr := unsafe.Pointer(&block[0])
	data := []byte("hello")
	totalSize := memory.HeaderSize + uintptr(len(data))

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Malloc(totalSize).Return(blockPtr)
	backend.EXPECT().Free(blockPtr, totalSize)

	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), backend)

	ptr := alloc.AllocateBytes(data)
	require.Equal(t, unsafe.Add(blockPtr, memory.HeaderSize), ptr)
	require.Equal(t, uintptr(len(data)), block[0])
	require.Equal(t, totalSize, block[1])

	alloc.FreeBytes(ptr)
}

func TestAllocateOutOfMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Malloc(gomock.Any()).Return(unsafe.Pointer(nil)).Times(2)

	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), backend)

	requireOutOfMemory(t, func() { alloc.AllocateBytes([]byte("data")) })
	requireOutOfMemory(t, func() { _, _ = alloc.AllocateString("data") })

	require.Equal(t, memutils.DetailedStatistics{}, alloc.Statistics())
}

func requireOutOfMemory(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, memutils.ErrOutOfMemory))
	}()

	f()
}

func TestAllocateString(t *testing.T) {
	alloc := newAllocator()

	ptr, err := alloc.AllocateString("héllo")
	require.NoError(t, err)
	require.Equal(t, "héllo", memory.StringAt(ptr))
	require.Equal(t, 6, memory.StringLength(ptr))

	stats := alloc.Statistics()
	require.Equal(t, memutils.Statistics{AllocationCount: 1, AllocationBytes: 7}, stats.Strings)

	alloc.FreeString(ptr)
	require.Equal(t, memutils.Statistics{}, alloc.Statistics().Strings)
}

func TestAllocateStringEmpty(t *testing.T) {
	alloc := newAllocator()

	ptr, err := alloc.AllocateString("")
	require.NoError(t, err)
	require.NotNil(t, ptr)
	require.Equal(t, "", memory.StringAt(ptr))
	alloc.FreeString(ptr)
}

func TestAllocateStringInteriorNUL(t *testing.T) {
	alloc := newAllocator()

	ptr, err := alloc.AllocateString("a\x00b")
	require.Nil(t, ptr)
	require.ErrorIs(t, err, memory.ErrInteriorNUL)
	require.Equal(t, 0, alloc.Statistics().TotalAllocations)
}

func TestStressAllocateFree(t *testing.T) {
	alloc := newAllocator()
	sizes := []int{0, 1, 7, 8, 4096}

	for i := 0; i < 1000; i++ {
		size := sizes[i%len(sizes)]
		data := patternBytes(size)

		ptr := alloc.AllocateBytes(data)
		require.Equal(t, uintptr(size), memory.HeaderOf(ptr).DataLength)
		alloc.FreeBytes(ptr)
	}

	stats := alloc.Statistics()
	require.Equal(t, 1000, stats.TotalAllocations)
	require.Equal(t, 1000, stats.TotalFrees)
	require.Equal(t, int(memory.HeaderSize)+4096, stats.AllocationSizeMax)
}

func TestConcurrentAllocateFree(t *testing.T) {
	alloc := newAllocator()

	var wg sync.WaitGroup
	for worker := 0; worker < 10; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for i := 0; i < 100; i++ {
				data := patternBytes(worker*100 + i)
				ptr := alloc.AllocateBytes(data)
				if string(memory.View(ptr)) != string(data) {
					t.Errorf("worker %d iteration %d: data mismatch", worker, i)
				}
				alloc.FreeBytes(ptr)
			}
		}(worker)
	}
	wg.Wait()

	stats := alloc.Statistics()
	require.Equal(t, 1000, stats.TotalAllocations)
	require.Equal(t, 1000, stats.TotalFrees)
	require.Equal(t, memutils.Statistics{}, stats.Live())
}

func TestStatsJSON(t *testing.T) {
	alloc := newAllocator()

	buffer := alloc.AllocateBytes([]byte("abc"))
	str, err := alloc.AllocateString("xyz")
	require.NoError(t, err)

	var stats struct {
		HeaderSize int
		Buffers    struct{ Count, Bytes int }
		Strings    struct{ Count, Bytes int }
		Live       struct{ Count, Bytes int }

		TotalAllocations  int
		TotalFrees        int
		AllocationSizeMax int
		Leaked            bool
	}
	require.NoError(t, json.Unmarshal([]byte(alloc.StatsJSON()), &stats))

	bufferSize := int(memory.HeaderSize) + 3
	require.Equal(t, int(memory.HeaderSize), stats.HeaderSize)
	require.Equal(t, 1, stats.Buffers.Count)
	require.Equal(t, bufferSize, stats.Buffers.Bytes)
	require.Equal(t, 1, stats.Strings.Count)
	require.Equal(t, 4, stats.Strings.Bytes)
	require.Equal(t, 2, stats.Live.Count)
	require.Equal(t, bufferSize+4, stats.Live.Bytes)
	require.Equal(t, 2, stats.TotalAllocations)
	require.Equal(t, 0, stats.TotalFrees)
	require.Equal(t, bufferSize, stats.AllocationSizeMax)
	require.True(t, stats.Leaked)

	alloc.FreeBytes(buffer)
	alloc.FreeString(str)

	require.NoError(t, json.Unmarshal([]byte(alloc.StatsJSON()), &stats))
	require.Equal(t, 2, stats.TotalFrees)
	require.False(t, stats.Leaked)
}

func TestDefaultAllocator(t *testing.T) {
	before := memory.Default().Statistics()

	ptr := memory.AllocateBytes([]byte{1, 2, 3})
	str, err := memory.AllocateString("default")
	require.NoError(t, err)

	memory.FreeBytes(ptr)
	memory.FreeString(str)
	memory.FreeBytes(nil)
	memory.FreeString(nil)

	after := memory.Default().Statistics()
	require.Equal(t, before.TotalAllocations+2, after.TotalAllocations)
	require.Equal(t, before.TotalFrees+2, after.TotalFrees)
}

func BenchmarkAllocateFree(b *testing.B) {
	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), memory.CBackend())
	data := patternBytes(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		alloc.FreeBytes(alloc.AllocateBytes(data))
	}
}

func BenchmarkAllocateFreeParallel(b *testing.B) {
	alloc := memory.New(slog.New(slog.NewJSONHandler(io.Discard, nil)), memory.CBackend())
	data := patternBytes(64)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			alloc.FreeBytes(alloc.AllocateBytes(data))
		}
	})
}
