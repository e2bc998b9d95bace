package query

import (
	"math"
	"sort"

	bloom "github.com/bits-and-blooms/bloom/v3"
	radixsort "github.com/dgryski/go-radixsort"
)

// ExpungedSet holds the deleted/invisible document ids a ranking walk
// must skip (§4.3). A bloom filter fast-rejects the common case (a
// document is not expunged) before falling back to the authoritative
// sorted slice, since most corpora have vastly more live documents than
// expunged ones.
type ExpungedSet struct {
	sorted []DocID
	filter *bloom.BloomFilter
}

// NewExpungedSet builds an ExpungedSet from an arbitrary (not
// necessarily sorted) slice of expunged document ids.
func NewExpungedSet(ids []DocID) *ExpungedSet {
	sorted := append([]DocID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := uint(len(sorted))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, 0.01)
	for _, id := range sorted {
		filter.Add(docIDBytes(id))
	}
	return &ExpungedSet{sorted: sorted, filter: filter}
}

func docIDBytes(id DocID) []byte {
	return []byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)}
}

// Contains reports whether id is expunged.
func (e *ExpungedSet) Contains(id DocID) bool {
	if e == nil || len(e.sorted) == 0 {
		return false
	}
	if !e.filter.Test(docIDBytes(id)) {
		return false
	}
	i := sort.Search(len(e.sorted), func(i int) bool { return e.sorted[i] >= id })
	return i < len(e.sorted) && e.sorted[i] == id
}

// Evaluate runs the two-stage ranking evaluation of §4.3 over
// [1,maxDocumentID]: first_step collects a per-document TF-derived score
// for every live document the atomic node's posting list covers, then
// second_step multiplies every stored score by the node's prepared IDF
// coefficient.
func Evaluate(a *Atomic, maxDocumentID DocID, expunged *ExpungedSet) []IDScore {
	coeff := a.PrepareResult()

	var out []IDScore
	a.Reset()
	for doc := DocID(1); doc <= maxDocumentID; doc++ {
		if expunged.Contains(doc) {
			continue
		}
		if !a.LowerBound(doc) {
			break
		}
		if a.DocID() != doc {
			continue
		}
		firstStep, ok := a.FirstStep()
		if !ok {
			continue
		}
		out = append(out, IDScore{ID: doc, Score: firstStep * coeff})
	}
	return out
}

// TopK returns the K highest-scoring pairs in (score DESC, id ASC) order.
// It quantizes each pair into a single sortable
// uint64 key (score bucketed to a fixed precision, id as tiebreak) and
// delegates the bulk sort to a radix sort before truncating, avoiding the
// O(n log n) comparison sort's constant factor on the common
// "score tens of thousands of rows, keep the top few hundred" path.
func TopK(pairs []IDScore, k int) []IDScore {
	if k <= 0 || len(pairs) == 0 {
		return nil
	}
	if k > len(pairs) {
		k = len(pairs)
	}

	keys := make([]uint64, len(pairs))
	for i, p := range pairs {
		keys[i] = rankKey(p)
	}
	radixsort.Uint64s(keys)

	// rankKey is monotonically decreasing in score (see rankKey), so the
	// radix-sorted ascending keys already list the top score first.
	out := make([]IDScore, 0, k)
	index := make(map[uint64][]IDScore, len(pairs))
	for i, p := range pairs {
		index[keys[i]] = append(index[keys[i]], p)
	}
	seen := make(map[uint64]int, len(pairs))
	for _, key := range keys {
		bucket := index[key]
		n := seen[key]
		if n >= len(bucket) {
			continue
		}
		out = append(out, bucket[n])
		seen[key] = n + 1
		if len(out) == k {
			break
		}
	}
	return out
}

// rankKey packs (score DESC, id ASC) into one ascending uint64: the score
// is quantized to a fixed-point magnitude and inverted so that higher
// scores sort first, then the document id breaks ties ascending.
func rankKey(p IDScore) uint64 {
	const scale = 1 << 20
	clamped := p.Score
	if clamped < 0 {
		clamped = 0
	}
	if clamped > float64(math.MaxUint32)/scale {
		clamped = float64(math.MaxUint32) / scale
	}
	quantized := uint64(clamped * scale)
	inverted := uint64(math.MaxUint32) - quantized
	return inverted<<32 | uint64(p.ID)
}
