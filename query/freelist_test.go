package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaReusesFreedSlots(t *testing.T) {
	a := NewArena()
	l1 := makeLocs(1, 2).Begin()
	idx1 := a.Acquire(l1)
	a.Release(idx1)

	l2 := makeLocs(3, 4).Begin()
	idx2 := a.Acquire(l2)

	require.Equal(t, idx1, idx2)
	require.Equal(t, 1, a.Len())
	require.Same(t, l2, a.Get(idx2))
}

func TestArenaGrowsWithoutFreeSlots(t *testing.T) {
	a := NewArena()
	a.Acquire(makeLocs(1).Begin())
	a.Acquire(makeLocs(1).Begin())
	require.Equal(t, 2, a.Len())
}
