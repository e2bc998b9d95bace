package rank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTFIDFPrepareMonotonicInDF(t *testing.T) {
	rare := NewTFIDF()
	rare.Prepare(1000, 2)
	common := NewTFIDF()
	common.Prepare(1000, 500)
	require.Greater(t, rare.PrepareResult(), common.PrepareResult())
}

func TestTFIDFFirstStepSaturates(t *testing.T) {
	c := NewTFIDF()
	low, ok := c.FirstStep(1, 0)
	require.True(t, ok)
	high, ok := c.FirstStep(100, 0)
	require.True(t, ok)
	require.Greater(t, high, low)
	require.Less(t, high, 1.0)
}

func TestTFIDFFirstStepZeroTF(t *testing.T) {
	c := NewTFIDF()
	_, ok := c.FirstStep(0, 0)
	require.False(t, ok)
}

func TestTFIDFDescribe(t *testing.T) {
	c := NewTFIDF()
	require.Equal(t, "TFIDF", c.Describe(false))
	require.Contains(t, c.Describe(true), "k1=")
}

func TestTFIDFPrepareEmptyDF(t *testing.T) {
	c := NewTFIDF()
	c.Prepare(1000, 0)
	require.Equal(t, 0.0, c.PrepareResult())
}
