package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorageAdapterReadWrite(t *testing.T) {
	path := "test_disk_manager.db"
	defer os.Remove(path)

	adapter, err := OpenPageFile(path)
	require.NoError(t, err)
	defer adapter.Close()

	want := make([]byte, PageSize)
	for i := range want {
		want[i] = byte(i % 256)
	}

	require.NoError(t, adapter.EnsureCapacity(3))
	require.NoError(t, adapter.WriteBlock(3, want))

	got := make([]byte, PageSize)
	require.NoError(t, adapter.ReadBlock(3, got))
	require.Equal(t, want, got)
}

func TestFileStorageAdapterRejectsWrongSizedBuffer(t *testing.T) {
	path := "test_disk_manager_size.db"
	defer os.Remove(path)

	adapter, err := OpenPageFile(path)
	require.NoError(t, err)
	defer adapter.Close()

	err = adapter.WriteBlock(0, make([]byte, PageSize-1))
	require.Error(t, err)
}

func TestEnsureCapacityGrowsFile(t *testing.T) {
	path := "test_disk_manager_grow.db"
	defer os.Remove(path)

	adapter, err := OpenPageFile(path)
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, adapter.EnsureCapacity(4))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, info.Size(), int64(5*PageSize))
}
