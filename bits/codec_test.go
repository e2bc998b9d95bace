package bits

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func allCodecs() map[string]Codec {
	return map[string]Codec{
		"expgolomb(0)":   ExpGolomb{Lambda: 0},
		"expgolomb(3)":   ExpGolomb{Lambda: 3},
		"expgolomb(7)":   ExpGolomb{Lambda: 7},
		"extgolomb(0,1)": ExtendedGolomb{Lambda: 0, Factor: 1},
		"extgolomb(2,5)": ExtendedGolomb{Lambda: 2, Factor: 5},
		"extgolomb(4,3)": ExtendedGolomb{Lambda: 4, Factor: 3},
		"unary":          Unary{},
	}
}

func TestExpGolombScenario(t *testing.T) {
	c := ExpGolomb{Lambda: 0}
	require.Equal(t, uint32(5), c.BitLength(5))

	buf := make([]Unit, 1)
	var tail uint32
	require.True(t, c.Append(5, buf, 32, &tail))
	require.Equal(t, uint32(5), tail)
	require.Equal(t, uint32(0b00101000_00000000_00000000_00000000), buf[0])

	var v uint32
	var cur uint32
	require.True(t, c.Get(&v, buf, tail, &cur))
	require.Equal(t, uint32(5), v)
	require.Equal(t, uint32(5), cur)
}

// TestCodecRoundTrip exercises property 1 of §8: append then get returns v
// with the cursor advanced by exactly BitLength(v).
func TestCodecRoundTrip(t *testing.T) {
	for name, c := range allCodecs() {
		c := c
		t.Run(name, func(t *testing.T) {
			seed := time.Now().UnixNano()
			r := rand.New(rand.NewSource(seed))

			for i := 0; i < 2000; i++ {
				v := uint32(r.Int63n(1<<20)) + 1

				buf := make([]Unit, c.BitLength(v)/unitBits+1)
				var tail uint32
				ok := c.Append(v, buf, uint32(len(buf))*unitBits, &tail)
				require.True(t, ok, "append failed for v=%d seed=%d", v, seed)
				require.Equal(t, c.BitLength(v), tail, "tail mismatch for v=%d seed=%d", v, seed)

				var got uint32
				var cur uint32
				ok = c.Get(&got, buf, tail, &cur)
				require.True(t, ok, "get failed for v=%d seed=%d", v, seed)
				require.Equal(t, v, got, "round trip mismatch for v=%d seed=%d", v, seed)
				require.Equal(t, tail, cur, "cursor mismatch for v=%d seed=%d", v, seed)
			}
		})
	}
}

// TestCodecCapacityRefusalIsAtomic exercises property 2 of §8.
func TestCodecCapacityRefusalIsAtomic(t *testing.T) {
	for name, c := range allCodecs() {
		c := c
		t.Run(name, func(t *testing.T) {
			v := uint32(12345)
			need := c.BitLength(v)
			if need == 0 {
				return
			}
			buf := make([]Unit, (need/unitBits)+1)
			before := append([]Unit(nil), buf...)

			var tail uint32 = 0
			ok := c.Append(v, buf, need-1, &tail) // cap is exactly one bit short
			require.False(t, ok)
			require.Equal(t, uint32(0), tail, "tail must be unchanged on refusal")
			require.Equal(t, before, buf, "buffer must be unchanged on refusal")
		})
	}
}

func TestUnaryBitLength(t *testing.T) {
	u := Unary{}
	require.Equal(t, uint32(1), u.BitLength(1))
	require.Equal(t, uint32(7), u.BitLength(7))
}
