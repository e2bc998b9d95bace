package decimal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustFromString(t *testing.T, s string, p, scale int32) *Decimal {
	t.Helper()
	d, err := FromString(s, p, scale, true)
	require.NoError(t, err, "parsing %q", s)
	return d
}

func TestAddScenario(t *testing.T) {
	a := mustFromString(t, "12.34", 5, 2)
	b := mustFromString(t, "0.1", 5, 2)
	sum, err := Add(a, b, 5, 2)
	require.NoError(t, err)
	require.Equal(t, "12.44", sum.String())
}

func TestMaxDecimalScenario(t *testing.T) {
	d := SetToMaxDecimal(3, 0)
	require.Equal(t, "999", d.String())
}

func TestDumpOrderingScenario(t *testing.T) {
	neg := mustFromString(t, "-1", 3, 0)
	pos := mustFromString(t, "1", 3, 0)

	dn := neg.Dump()
	dp := pos.Dump()
	require.Len(t, dn, 4)
	require.Len(t, dp, 4)
	require.Less(t, string(dn), string(dp))
}

func TestDumpRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "12.44", "-99.99", "0.001", "999999.999"}
	for _, s := range cases {
		d := mustFromString(t, s, 9, 3)
		data := d.Dump()
		got, err := SetDumpedValue(9, 3, data)
		require.NoError(t, err)
		require.Equal(t, d.String(), got.String())
		require.Equal(t, d.negative, got.negative)
	}
}

// TestDumpOrderPreserving exercises property 8 of §8: memcmp over Dump()
// agrees with Compare() for random pairs.
func TestDumpOrderPreserving(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))

	randomDecimal := func() *Decimal {
		intPart := r.Int63n(1_000_000)
		fracPart := r.Int63n(1000)
		sign := ""
		if r.Intn(2) == 0 {
			sign = "-"
		}
		s := sign + itoa(intPart) + "." + pad3(fracPart)
		return mustFromString(t, s, 12, 3)
	}

	for i := 0; i < 200; i++ {
		a := randomDecimal()
		b := randomDecimal()
		cmp := Compare(a, b)
		memCmp := compareBytes(a.Dump(), b.Dump())
		require.Equal(t, sign(cmp), sign(memCmp), "a=%s b=%s seed=%d", a.String(), b.String(), seed)
	}
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func pad3(v int64) string {
	s := itoa(v)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func TestCompareTotalOrder(t *testing.T) {
	vals := []string{"-10.5", "-1", "0", "0.5", "1", "10.5", "999.999"}
	decs := make([]*Decimal, len(vals))
	for i, v := range vals {
		decs[i] = mustFromString(t, v, 6, 3)
	}
	for i := range decs {
		require.Equal(t, 0, Compare(decs[i], decs[i]))
		for j := range decs {
			require.Equal(t, -Compare(decs[j], decs[i]), Compare(decs[i], decs[j]))
		}
	}
	for i := 0; i < len(decs)-1; i++ {
		require.Equal(t, -1, Compare(decs[i], decs[i+1]), "%s should be < %s", vals[i], vals[i+1])
	}
}

func TestMultiplyAndDivide(t *testing.T) {
	a := mustFromString(t, "2.5", 5, 2)
	b := mustFromString(t, "4", 5, 0)
	prod, err := Multiply(a, b, 18)
	require.NoError(t, err)
	require.Equal(t, "10.00", prod.String())

	q, err := Divide(prod, b, 18)
	require.NoError(t, err)
	require.InDelta(t, 2.5, q.ToFloat64(), 0.0001)
}

func TestDivideByZero(t *testing.T) {
	a := mustFromString(t, "1", 5, 0)
	zero := MakeZero(5, 0)
	_, err := Divide(a, zero, 18)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFromStringRejectsGarbage(t *testing.T) {
	_, err := FromString("12x.3", 5, 2, true)
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestFromStringOutOfRange(t *testing.T) {
	_, err := FromString("99999", 3, 0, true)
	require.ErrorIs(t, err, ErrNumericValueOutOfRange)

	d, err := FromString("99999", 3, 0, false)
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestIntCasts(t *testing.T) {
	d, err := FromInt64(-42, 9, 0, true)
	require.NoError(t, err)
	v, err := d.ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)

	u, err := FromUint64(42, 9, 0, true)
	require.NoError(t, err)
	uv, err := u.ToUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(42), uv)
}

func TestHashStable(t *testing.T) {
	a := mustFromString(t, "12.34", 9, 3)
	b := mustFromString(t, "12.34", 9, 3)
	require.Equal(t, a.Hash(), b.Hash())
}
