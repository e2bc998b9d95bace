package query

import (
	"testing"

	"github.com/DoqueDB/doquedb-sub038/bits"
	"github.com/DoqueDB/doquedb-sub038/location"
	"github.com/stretchr/testify/require"
)

func makeLocs(positions ...uint32) *location.List {
	l := location.New(bits.Unary{})
	l.SetTokenLength(1)
	for _, p := range positions {
		l.PushBack(p)
	}
	return l
}

func atomFromDocs(docs ...DocID) *Atomic {
	postings := make([]Posting, len(docs))
	for i, d := range docs {
		postings[i] = Posting{Doc: d, TF: 1, Locs: makeLocs(1)}
	}
	return NewAtomic(postings, nil)
}

func drain(it DocumentIterator) []DocID {
	var out []DocID
	for !it.IsEnd() {
		out = append(out, it.DocID())
		it.Next()
	}
	return out
}

func TestAtomicLowerBoundFind(t *testing.T) {
	a := atomFromDocs(2, 5, 9, 20)
	require.True(t, a.Find(9))
	require.Equal(t, DocID(9), a.DocID())
	require.False(t, a.Find(10))
	require.Equal(t, DocID(20), a.DocID())
}

func TestAndIntersects(t *testing.T) {
	a := atomFromDocs(1, 3, 5, 7, 9)
	b := atomFromDocs(3, 4, 5, 9, 10)
	n := NewAnd(a, b)
	require.Equal(t, []DocID{3, 5, 9}, drain(n))
}

func TestOrUnions(t *testing.T) {
	a := atomFromDocs(1, 4, 7)
	b := atomFromDocs(2, 4, 8)
	n := NewOr(a, b)
	require.Equal(t, []DocID{1, 2, 4, 7, 8}, drain(n))
}

func TestAndNotExcludes(t *testing.T) {
	pos := atomFromDocs(1, 2, 3, 4, 5)
	neg := atomFromDocs(2, 4)
	n := NewAndNot(pos, neg)
	require.Equal(t, []DocID{1, 3, 5}, drain(n))
}

func TestFuzzyAndOrNot(t *testing.T) {
	a := []IDScore{{1, 0.2}, {2, 0.8}}
	b := []IDScore{{1, 0.5}, {3, 0.9}}

	and := FuzzyAnd(a, b, MinMaxCombiner{Max: false})
	require.Equal(t, []IDScore{{1, 0.2}}, and)

	or := FuzzyOr(a, b, MinMaxCombiner{Max: true})
	require.Equal(t, []IDScore{{1, 0.5}, {2, 0.8}, {3, 0.9}}, or)

	not := FuzzyNot(a, MinMaxNegator{})
	require.Equal(t, []IDScore{{1, 0.8}, {2, 0.2}}, not)
}

func TestSortByScoreTieBreak(t *testing.T) {
	pairs := []IDScore{{5, 1.0}, {2, 1.0}, {9, 2.0}}
	SortByScore(pairs)
	require.Equal(t, []IDScore{{9, 2.0}, {2, 1.0}, {5, 1.0}}, pairs)
}

func TestSynonymReportsMatchedChildFrequency(t *testing.T) {
	a := NewAtomic([]Posting{{Doc: 1, TF: 3}}, nil)
	b := NewAtomic([]Posting{{Doc: 1, TF: 7}, {Doc: 2, TF: 2}}, nil)
	s := NewSynonym(a, b)
	require.Equal(t, DocID(1), s.DocID())
	require.Equal(t, uint32(3), s.InDocFreq())
	require.Equal(t, 0, s.MatchedChild())
	s.Next()
	require.Equal(t, DocID(2), s.DocID())
	require.Equal(t, uint32(2), s.InDocFreq())
	require.Equal(t, 1, s.MatchedChild())
}

func TestEvaluateAndTopK(t *testing.T) {
	postings := []Posting{
		{Doc: 1, TF: 5, Locs: makeLocs(1)},
		{Doc: 3, TF: 1, Locs: makeLocs(1)},
		{Doc: 4, TF: 9, Locs: makeLocs(1)},
	}
	a := NewAtomic(postings, newConstCalc())
	expunged := NewExpungedSet([]DocID{2})

	scored := Evaluate(a, 5, expunged)
	require.Len(t, scored, 3)

	top := TopK(scored, 2)
	require.Len(t, top, 2)
	require.Equal(t, DocID(4), top[0].ID)
}

type constCalc struct{ prep float64 }

func newConstCalc() *constCalc { return &constCalc{prep: 1.0} }

func (c *constCalc) Prepare(totalDF, df uint64)    { c.prep = 1.0 }
func (c *constCalc) PrepareResult() float64        { return c.prep }
func (c *constCalc) FirstStep(tf uint32, _ DocID) (float64, bool) {
	if tf == 0 {
		return 0, false
	}
	return float64(tf), true
}
func (c *constCalc) IsExtendedFirstStep() bool              { return false }
func (c *constCalc) ExtendedFirstStep(int, DocID) float64 { return 1 }
func (c *constCalc) Describe(bool) string                   { return "const" }
