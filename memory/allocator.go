package memory

import (
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/austoonz/Convert/internal/logging"
	"github.com/austoonz/Convert/memutils"
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/exp/slog"
)

// ErrInteriorNUL is returned by AllocateString when the string cannot be represented as a NUL-terminated
// C string
var ErrInteriorNUL = errors.New("string contains an interior NUL byte")

type counters struct {
	bufferCount atomic.Int64
	bufferBytes atomic.Int64
	stringCount atomic.Int64
	stringBytes atomic.Int64

	allocations atomic.Int64
	frees       atomic.Int64
	largest     atomic.Int64
}

// Allocator produces the buffers and strings that cross the library boundary and takes them back.
// Every call touches only the block it was given plus a handful of atomic counters, so an Allocator
// may be used from any number of threads at once.
type Allocator struct {
	logger  *slog.Logger
	backend Backend

	counters counters
}

// New creates an Allocator on top of backend. If logger is nil, the library logger is used at the time of
// each call.
func New(logger *slog.Logger, backend Backend) *Allocator {
	return &Allocator{
		logger:  logger,
		backend: backend,
	}
}

func (a *Allocator) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return logging.Logger()
}

func (a *Allocator) malloc(size uintptr) unsafe.Pointer {
	block := a.backend.Malloc(size)
	if block == nil {
		panic(errors.Wrapf(memutils.ErrOutOfMemory, "failed to allocate %d bytes", size))
	}
	return block
}

func (a *Allocator) recordAllocation(size uintptr) {
	a.counters.allocations.Add(1)

	for {
		largest := a.counters.largest.Load()
		if int64(size) <= largest || a.counters.largest.CompareAndSwap(largest, int64(size)) {
			return
		}
	}
}

// AllocateBytes copies data into a new buffer and returns a pointer to its first data byte. The buffer's
// header records both the data length and the full allocation size so FreeBytes can release it given
// nothing but the pointer. An empty slice still yields a valid, non-nil pointer to a header-only block.
//
// AllocateBytes panics if the backend cannot satisfy the request.
func (a *Allocator) AllocateBytes(data []byte) unsafe.Pointer {
	dataLength := uintptr(len(data))
	totalSize := HeaderSize + dataLength

	block := a.malloc(totalSize)

	header := (*Header)(block)
	header.DataLength = dataLength
	header.TotalSize = totalSize

	ptr := unsafe.Add(block, HeaderSize)
	if dataLength > 0 {
		copy(unsafe.Slice((*byte)(ptr), dataLength), data)
	}

	a.counters.bufferCount.Add(1)
	a.counters.bufferBytes.Add(int64(totalSize))
	a.recordAllocation(totalSize)

	a.log().Debug("Allocator::AllocateBytes", slog.Int("DataLength", int(dataLength)), slog.Int("TotalSize", int(totalSize)))
	return ptr
}

// FreeBytes releases a buffer produced by AllocateBytes. A nil pointer is ignored. Freeing any other pointer,
// or the same buffer twice, is undefined behavior; builds with the debug_mem_utils tag panic when the
// header does not describe a well-formed buffer.
func (a *Allocator) FreeBytes(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	header := headerAt(ptr)
	memutils.DebugValidate(header)
	totalSize := header.TotalSize

	a.backend.Free(unsafe.Pointer(header), totalSize)

	a.counters.bufferCount.Add(-1)
	a.counters.bufferBytes.Add(-int64(totalSize))
	a.counters.frees.Add(1)

	a.log().Debug("Allocator::FreeBytes", slog.Int("TotalSize", int(totalSize)))
}

// AllocateString copies s into a new NUL-terminated string. Strings carry no header: their length is
// recovered from the terminator. Strings containing a NUL byte are rejected with ErrInteriorNUL.
//
// AllocateString panics if the backend cannot satisfy the request.
func (a *Allocator) AllocateString(s string) (unsafe.Pointer, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrInteriorNUL
	}

	size := uintptr(len(s)) + 1
	ptr := a.malloc(size)

	buffer := unsafe.Slice((*byte)(ptr), size)
	copy(buffer, s)
	buffer[len(s)] = 0

	a.counters.stringCount.Add(1)
	a.counters.stringBytes.Add(int64(size))
	a.recordAllocation(size)

	a.log().Debug("Allocator::AllocateString", slog.Int("Size", int(size)))
	return ptr, nil
}

// FreeString releases a string produced by AllocateString. A nil pointer is ignored.
func (a *Allocator) FreeString(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	size := uintptr(StringLength(ptr)) + 1
	a.backend.Free(ptr, size)

	a.counters.stringCount.Add(-1)
	a.counters.stringBytes.Add(-int64(size))
	a.counters.frees.Add(1)

	a.log().Debug("Allocator::FreeString", slog.Int("Size", int(size)))
}

// Statistics returns a snapshot of the allocator's counters. Counters are read individually, so a snapshot
// taken while other threads allocate may not be internally consistent.
func (a *Allocator) Statistics() memutils.DetailedStatistics {
	return memutils.DetailedStatistics{
		Buffers: memutils.Statistics{
			AllocationCount: int(a.counters.bufferCount.Load()),
			AllocationBytes: int(a.counters.bufferBytes.Load()),
		},
		Strings: memutils.Statistics{
			AllocationCount: int(a.counters.stringCount.Load()),
			AllocationBytes: int(a.counters.stringBytes.Load()),
		},
		TotalAllocations:  int(a.counters.allocations.Load()),
		TotalFrees:        int(a.counters.frees.Load()),
		AllocationSizeMax: int(a.counters.largest.Load()),
	}
}

func printStatistics(json *jwriter.ObjectState, stats *memutils.Statistics) {
	json.Name("Count").Int(stats.AllocationCount)
	json.Name("Bytes").Int(stats.AllocationBytes)
}

// BuildStatsString writes the allocator's statistics into writer as a JSON object
func (a *Allocator) BuildStatsString(writer *jwriter.Writer) {
	json := writer.Object()
	defer json.End()

	a.PrintStatistics(&json)
}

// PrintStatistics writes the allocator's statistics as fields of an enclosing JSON object
func (a *Allocator) PrintStatistics(json *jwriter.ObjectState) {
	stats := a.Statistics()
	live := stats.Live()

	json.Name("HeaderSize").Int(int(HeaderSize))

	buffers := json.Name("Buffers").Object()
	printStatistics(&buffers, &stats.Buffers)
	buffers.End()

	strs := json.Name("Strings").Object()
	printStatistics(&strs, &stats.Strings)
	strs.End()

	total := json.Name("Live").Object()
	printStatistics(&total, &live)
	total.End()

	json.Name("TotalAllocations").Int(stats.TotalAllocations)
	json.Name("TotalFrees").Int(stats.TotalFrees)
	json.Name("AllocationSizeMax").Int(stats.AllocationSizeMax)
	json.Name("Leaked").Bool(stats.Leaked())
}

// StatsJSON renders BuildStatsString into a standalone JSON document
func (a *Allocator) StatsJSON() string {
	writer := jwriter.NewWriter()
	a.BuildStatsString(&writer)
	return string(writer.Bytes())
}
