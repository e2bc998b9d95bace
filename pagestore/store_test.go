package pagestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateAttachFree(t *testing.T) {
	s, err := New(Config{PageSize: 256, MaxFileSize: 1 << 20, MaxPageID: 4, Budget: 8})
	require.NoError(t, err)
	defer s.Close()

	h1, err := s.Allocate()
	require.NoError(t, err)
	h2, err := s.Allocate()
	require.NoError(t, err)
	require.NotEqual(t, h1.ID, h2.ID)

	got, err := s.Attach(h1.ID)
	require.NoError(t, err)
	require.Same(t, h1, got)

	require.NoError(t, s.Free(h1.ID))
	_, err = s.Attach(h1.ID)
	require.Error(t, err)
}

func TestAllocateSpillsAcrossFiles(t *testing.T) {
	s, err := New(Config{PageSize: 64, MaxFileSize: 1 << 20, MaxPageID: 2, Budget: 64})
	require.NoError(t, err)
	defer s.Close()

	seen := map[uint32]bool{}
	for i := 0; i < 5; i++ {
		h, err := s.Allocate()
		require.NoError(t, err)
		seen[h.ID] = true
	}
	require.Len(t, seen, 5)
	require.Greater(t, s.header.UsedFileNum, uint32(1))
}

func TestEvictionRequiresClean(t *testing.T) {
	s, err := New(Config{PageSize: 32, MaxFileSize: 1 << 20, MaxPageID: 100, Budget: 2})
	require.NoError(t, err)
	defer s.Close()

	h1, err := s.Allocate()
	require.NoError(t, err)
	_, err = s.Allocate()
	require.NoError(t, err)
	// within budget so far; third allocation evicts h1 which is clean.
	_, err = s.Allocate()
	require.NoError(t, err)
	require.False(t, h1.IsDirty())
}

func TestReportReflectsUsage(t *testing.T) {
	s, err := New(Config{PageSize: 128, MaxFileSize: 1 << 20, MaxPageID: 10, Budget: 16})
	require.NoError(t, err)
	defer s.Close()

	for i := 0; i < 3; i++ {
		_, err := s.Allocate()
		require.NoError(t, err)
	}
	rep := s.Report()
	require.Contains(t, rep.String(), "pagestore")
	require.NotEmpty(t, rep.Children)
}
