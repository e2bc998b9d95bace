package overflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverflowIDScenario(t *testing.T) {
	l := NewLayout(256)
	require.Equal(t, uint32(8), l.PageBits)

	id := l.Make(3, 200)
	require.Equal(t, PageID(0x3C8), id)
	require.Equal(t, uint32(3), l.FileIndex(id))
	require.Equal(t, uint32(200), l.PhysicalPageID(id))
}

// TestBijection exercises property 5 of §8.
func TestBijection(t *testing.T) {
	for _, maxPageID := range []uint32{2, 16, 256, 4096, 1 << 20} {
		l := NewLayout(maxPageID)
		for f := uint32(0); f < l.MaxFileNum && f < 8; f++ {
			for _, p := range []uint32{0, 1, maxPageID / 2, maxPageID - 1} {
				id := l.Make(f, p)
				require.Equal(t, p, l.PhysicalPageID(id), "maxPageID=%d f=%d p=%d", maxPageID, f, p)
				require.Equal(t, f, l.FileIndex(id), "maxPageID=%d f=%d p=%d", maxPageID, f, p)
			}
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(8192, 1<<30, 1<<16, 1)
	h.AllocateFile(101)
	h.AllocateFile(102)

	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(&buf))

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h.PageSize, got.PageSize)
	require.Equal(t, h.MaxFileSize, got.MaxFileSize)
	require.Equal(t, h.MaxPageID, got.MaxPageID)
	require.Equal(t, h.UsedFileNum, got.UsedFileNum)
	require.Equal(t, h.FileID, got.FileID)
	require.Equal(t, h.Layout.PageBits, got.Layout.PageBits)
}
