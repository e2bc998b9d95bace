// Package query implements the query node (iterator tree) layer (§3.4,
// §4.3, §6.1): atomic term nodes, positional operators, boolean set
// operations, and the two-stage ranking evaluator built on top of them.
package query

import (
	"github.com/DoqueDB/doquedb-sub038/location"
)

// DocID identifies a document. 0 is never a valid document id; result
// walks run over [1, maxDocumentID].
type DocID = uint32

// LocationIterator is re-exported as the location package's own Iterator:
// both trait shapes coincide exactly (§6.1), so query nodes speak
// location.Iterator directly instead of redeclaring an equivalent trait.
type LocationIterator = location.Iterator

// DocumentIterator is the per-document result stream contract (§6.1).
// Every query node (atomic and composite) implements it.
type DocumentIterator interface {
	Next()
	Reset()
	Find(doc DocID) bool
	LowerBound(doc DocID) bool
	IsEnd() bool
	DocID() DocID
	InDocFreq() uint32
	Locations() LocationIterator // nil if the node carries no positions
}

// base provides the default Find/LowerBound implemented in terms of
// Next/IsEnd/DocID, mirroring location.base, for embedding by composite
// nodes that don't need a specialized fast path (e.g. binary search).
type base struct {
	self DocumentIterator
}

func (b *base) LowerBound(doc DocID) bool {
	for !b.self.IsEnd() && b.self.DocID() < doc {
		b.self.Next()
	}
	return !b.self.IsEnd()
}

func (b *base) Find(doc DocID) bool {
	if !b.LowerBound(doc) {
		return false
	}
	return b.self.DocID() == doc
}
