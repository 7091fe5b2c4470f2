package memory_test

import (
	"testing"

	"github.com/austoonz/Convert/memory"
	"github.com/austoonz/Convert/memutils"
	"github.com/stretchr/testify/require"
)

func TestHeaderValidate(t *testing.T) {
	header := memory.Header{DataLength: 10, TotalSize: memory.HeaderSize + 10}
	require.NoError(t, header.Validate())

	header.TotalSize++
	err := header.Validate()
	require.ErrorIs(t, err, memutils.ErrCorruptHeader)
	require.Contains(t, err.Error(), "data length 10")
}
