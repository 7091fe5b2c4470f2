package memutils_test

import (
	"testing"

	"github.com/austoonz/Convert/memutils"
	"github.com/stretchr/testify/require"
)

func TestDetailedStatisticsLive(t *testing.T) {
	stats := memutils.DetailedStatistics{
		Buffers:          memutils.Statistics{AllocationCount: 2, AllocationBytes: 48},
		Strings:          memutils.Statistics{AllocationCount: 1, AllocationBytes: 6},
		TotalAllocations: 5,
		TotalFrees:       2,
	}

	require.Equal(t, memutils.Statistics{AllocationCount: 3, AllocationBytes: 54}, stats.Live())
	require.True(t, stats.Leaked())

	stats.TotalFrees = stats.TotalAllocations
	require.False(t, stats.Leaked())
}

func snapshot() memutils.DetailedStatistics {
	return memutils.DetailedStatistics{
		Strings:          memutils.Statistics{AllocationCount: 1, AllocationBytes: 12},
		TotalAllocations: 1,
	}
}

func TestStatisticsOfReturnedSnapshot(t *testing.T) {
	require.Equal(t, memutils.Statistics{AllocationCount: 1, AllocationBytes: 12}, snapshot().Live())
	require.True(t, snapshot().Leaked())
}
