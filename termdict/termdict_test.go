package termdict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupRoundTrip(t *testing.T) {
	terms := []string{"apple", "application", "banana", "band", "bandana", "cherry"}
	d, err := Build(terms)
	require.NoError(t, err)
	require.Equal(t, 6, d.Len())

	for _, term := range terms {
		id, ok := d.Lookup(term)
		require.True(t, ok, term)
		got, ok := d.Term(id)
		require.True(t, ok)
		require.Equal(t, term, got)
	}

	_, ok := d.Lookup("grape")
	require.False(t, ok)
}

func TestPrefixIDs(t *testing.T) {
	terms := []string{"apple", "application", "banana", "band", "bandana", "cherry"}
	d, err := Build(terms)
	require.NoError(t, err)

	ids := d.PrefixIDs("band")
	require.Len(t, ids, 2)
	got := map[string]bool{}
	for _, id := range ids {
		term, _ := d.Term(id)
		got[term] = true
	}
	require.True(t, got["band"])
	require.True(t, got["bandana"])
}

func TestBuildDeduplicates(t *testing.T) {
	terms := []string{"a", "b", "a", "c", "b"}
	d, err := Build(terms)
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
}

func TestEmptyDictionary(t *testing.T) {
	d, err := Build(nil)
	require.NoError(t, err)
	require.Equal(t, 0, d.Len())
	_, ok := d.Lookup("anything")
	require.False(t, ok)
}
