package query

import (
	"sort"

	"github.com/DoqueDB/doquedb-sub038/location"
	"github.com/DoqueDB/doquedb-sub038/rank"
)

// Posting is one document's entry in an Atomic node's in-memory posting
// list: its document id, term frequency, and position list.
type Posting struct {
	Doc  DocID
	TF   uint32
	Locs *location.List
}

// Atomic is the leaf query node for a single term (§3.4): a sorted
// posting list plus a ranking calculator whose one-shot _prepareResult is
// computed lazily on first access and cached thereafter.
type Atomic struct {
	base
	postings []Posting
	calc     rank.Calculator

	pos        int
	prepared   bool
	prepareRes float64
}

// NewAtomic builds an Atomic node over postings, which must already be
// sorted ascending by Doc (the caller — the term dictionary/posting-list
// reader — owns that invariant). calc may be nil, in which case
// PrepareResult/FirstStep are unavailable and only set-membership
// (Next/Find/LowerBound/DocID/InDocFreq/Locations) is usable.
func NewAtomic(postings []Posting, calc rank.Calculator) *Atomic {
	a := &Atomic{postings: postings, calc: calc}
	a.self = a
	return a
}

func (a *Atomic) Next() {
	if a.pos < len(a.postings) {
		a.pos++
	}
}

func (a *Atomic) Reset() { a.pos = 0 }

func (a *Atomic) IsEnd() bool { return a.pos >= len(a.postings) }

func (a *Atomic) DocID() DocID {
	if a.IsEnd() {
		return 0
	}
	return a.postings[a.pos].Doc
}

func (a *Atomic) InDocFreq() uint32 {
	if a.IsEnd() {
		return 0
	}
	return a.postings[a.pos].TF
}

func (a *Atomic) Locations() LocationIterator {
	if a.IsEnd() || a.postings[a.pos].Locs == nil {
		return nil
	}
	return a.postings[a.pos].Locs.Begin()
}

// LowerBound overrides base's linear-scan default with a binary search
// over the sorted posting list, the posting-list-specific fast path the
// boolean operators depend on for their monotone merges (§4.3).
func (a *Atomic) LowerBound(doc DocID) bool {
	a.pos += sort.Search(len(a.postings)-a.pos, func(i int) bool {
		return a.postings[a.pos+i].Doc >= doc
	})
	return !a.IsEnd()
}

func (a *Atomic) Find(doc DocID) bool {
	if !a.LowerBound(doc) {
		return false
	}
	return a.DocID() == doc
}

// DocumentFrequency is the term's document frequency, len(postings).
func (a *Atomic) DocumentFrequency() uint64 { return uint64(len(a.postings)) }

// Prepare computes and caches the ranking calculator's one-shot
// coefficient against the collection-wide document frequency. Calling it
// more than once is a no-op after the first call, matching the spec's
// "_prepareResult computed on first access" cache.
func (a *Atomic) Prepare(totalDocFreq uint64) {
	if a.prepared || a.calc == nil {
		return
	}
	a.calc.Prepare(totalDocFreq, a.DocumentFrequency())
	a.prepareRes = a.calc.PrepareResult()
	a.prepared = true
}

// PrepareResult returns the cached one-shot coefficient, triggering
// Prepare(DocumentFrequency()) first if it has not run yet (a
// single-term query has no outer totalDocFreq to supply).
func (a *Atomic) PrepareResult() float64 {
	a.Prepare(a.DocumentFrequency())
	return a.prepareRes
}

// FirstStep evaluates the calculator's per-document TF term at the
// iterator's current position.
func (a *Atomic) FirstStep() (score float64, exists bool) {
	if a.calc == nil || a.IsEnd() {
		return 0, false
	}
	tf := a.InDocFreq()
	if tf == 0 {
		return 0, false
	}
	if a.calc.IsExtendedFirstStep() {
		return a.calc.ExtendedFirstStep(a.pos, a.DocID()), true
	}
	return a.calc.FirstStep(tf, a.DocID())
}
