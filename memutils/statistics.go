package memutils

// Statistics counts the live allocations of a single kind
type Statistics struct {
	AllocationCount int
	AllocationBytes int
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.AllocationCount += other.AllocationCount
	s.AllocationBytes += other.AllocationBytes
}

// DetailedStatistics is a snapshot of everything an allocator has handed across the boundary. Buffers and
// Strings only count allocations that have not been freed yet, while the Total counters and
// AllocationSizeMax cover the allocator's whole lifetime.
type DetailedStatistics struct {
	Buffers Statistics
	Strings Statistics

	TotalAllocations  int
	TotalFrees        int
	AllocationSizeMax int
}

// Live sums buffers and strings that are still outstanding
func (s DetailedStatistics) Live() Statistics {
	var live Statistics
	live.AddStatistics(&s.Buffers)
	live.AddStatistics(&s.Strings)
	return live
}

// Leaked reports whether any allocation is still waiting to be freed
func (s DetailedStatistics) Leaked() bool {
	return s.TotalAllocations != s.TotalFrees
}
