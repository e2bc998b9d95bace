// Package location implements the per-document token-position list (§3.2,
// §4.2): a 3-state representation (inline, unpacked, packed) chosen to
// minimize per-term memory for the short position lists typical of real
// corpora, plus the LocationIterator abstraction used to walk it.
package location

// Iterator is the per-document position stream abstraction (§6.1). The
// default LowerBound/Find are expressed in terms of Next, matching the
// trait's default-method contract; concrete iterators may override them
// for a faster path (the unary block's Find is the one specialization the
// spec calls out, see bitmapIterator).
type Iterator interface {
	Next()
	Reset()
	IsEnd() bool
	Location() uint32
	EndLocation() uint32
	LowerBound(pos uint32) bool
	Find(pos uint32) bool
	Frequency() uint32
	Release()
}

// base provides the default LowerBound/Find implementations in terms of
// Next/IsEnd/Location, for embedding by concrete iterators that don't need
// a specialized fast path.
type base struct {
	self Iterator
}

func (b *base) LowerBound(pos uint32) bool {
	for !b.self.IsEnd() && b.self.Location() < pos {
		b.self.Next()
	}
	return !b.self.IsEnd()
}

func (b *base) Find(pos uint32) bool {
	if !b.LowerBound(pos) {
		return false
	}
	return b.self.Location() == pos
}

func (b *base) Frequency() uint32 { return 0 }
func (b *base) Release()         {}
