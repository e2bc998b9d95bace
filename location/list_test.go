package location

import (
	"math/rand"
	"testing"
	"time"

	"github.com/DoqueDB/doquedb-sub038/bits"
	"github.com/stretchr/testify/require"
)

func collect(it Iterator) []uint32 {
	var out []uint32
	for !it.IsEnd() {
		out = append(out, it.Location())
		it.Next()
	}
	return out
}

func TestSmartListScenarioInline(t *testing.T) {
	l := New(bits.ExpGolomb{Lambda: 0})
	l.PushBack(3)
	l.PushBack(7)

	require.Equal(t, Inline, l.state)
	require.Equal(t, 0, l.GetUnitNum())
	require.Equal(t, []uint32{3, 7}, collect(l.Begin()))
}

func TestSmartListScenarioPacked(t *testing.T) {
	l := New(bits.ExpGolomb{Lambda: 0})
	for _, v := range []uint32{3, 7, 11, 15, 20} {
		l.PushBack(v)
	}
	require.Equal(t, Packed, l.state)
	require.Equal(t, []uint32{3, 7, 11, 15, 20}, collect(l.Begin()))
}

// TestMonotoneInvariant exercises property 3 of §8 across every transition.
func TestMonotoneInvariant(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	for _, coder := range []bits.Codec{bits.ExpGolomb{Lambda: 0}, bits.ExpGolomb{Lambda: 3}, bits.ExtendedGolomb{Lambda: 1, Factor: 4}} {
		l := New(coder)
		last := uint32(0)
		n := 50 + r.Intn(50)
		for i := 0; i < n; i++ {
			last += uint32(1 + r.Intn(30))
			l.PushBack(last)
		}
		got := collect(l.Begin())
		require.Len(t, got, n, "seed=%d", seed)
		for i := 1; i < len(got); i++ {
			require.Less(t, got[i-1], got[i], "not monotone at %d, seed=%d", i, seed)
		}
	}
}

// TestIteratorEquivalence exercises property 4 of §8: iterating any of the
// three states yields exactly the inserted sequence.
func TestIteratorEquivalence(t *testing.T) {
	cases := [][]uint32{
		{5},
		{5, 9},
		{5, 9, 12},
		{5, 9, 12, 40},
		{5, 9, 12, 40, 41},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 500, 1000, 1500, 100000},
	}
	for _, vals := range cases {
		l := New(bits.ExpGolomb{Lambda: 0})
		for _, v := range vals {
			l.PushBack(v)
		}
		require.Equal(t, vals, collect(l.Begin()))
		require.Equal(t, len(vals), l.GetSize())
		for i, v := range vals {
			require.Equal(t, v, l.At(i))
		}
	}
}

func TestCopyRoundTrip(t *testing.T) {
	for _, vals := range [][]uint32{{3, 7}, {3, 7, 11, 15}, {3, 7, 11, 15, 20, 25, 99}} {
		l := New(bits.ExpGolomb{Lambda: 0})
		for _, v := range vals {
			l.PushBack(v)
		}
		size := l.GetDataSize()
		dst := make([]bits.Unit, size/4+4)
		var off uint32
		l.Copy(dst, &off)
		require.Equal(t, l.GetBitLength(), off)

		// Decode back directly through the codec to confirm Copy produced
		// the same gap-coded stream PushBack would have.
		coder := bits.ExpGolomb{Lambda: 0}
		var cur uint32
		last := uint32(0)
		var got []uint32
		for cur < off {
			var gap uint32
			ok := coder.Get(&gap, dst, off, &cur)
			require.True(t, ok)
			last += gap
			got = append(got, last)
		}
		require.Equal(t, vals, got)
	}
}

func TestUnaryBlockFind(t *testing.T) {
	b := NewUnaryBlock(128)
	for _, v := range []uint32{2, 5, 9, 100} {
		b.Set(v)
	}
	it := b.Begin()
	require.True(t, it.Find(9))
	require.Equal(t, uint32(9), it.Location())
	require.False(t, it.Find(10))
	require.Equal(t, []uint32{2, 5, 9, 100}, collect(b.Begin()))
}
