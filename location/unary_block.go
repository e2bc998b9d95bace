package location

import "github.com/DoqueDB/doquedb-sub038/bits"

// UnaryBlock is the unary-coded location representation (§3.1, §4.2's
// "find(target) for unary-coded blocks"): rather than gap-coding an
// increasing sequence, each location j within a bounded range is recorded
// by setting bit j directly, trading density for an O(1) Find. It is used
// for narrow within-word position sets, not the general per-document list
// (List above), whose Packed state always gap-codes through its
// configured Codec.
type UnaryBlock struct {
	bmp    *bits.UnaryBitmap
	length uint32
	count  int
}

// NewUnaryBlock creates a block able to record locations in [0,capacityBits).
func NewUnaryBlock(capacityBits uint32) *UnaryBlock {
	return &UnaryBlock{bmp: bits.NewUnaryBitmap(capacityBits)}
}

// SetTokenLength records the token's character length for EndLocation.
func (u *UnaryBlock) SetTokenLength(n uint32) { u.length = n }

// Set records location j.
func (u *UnaryBlock) Set(j uint32) {
	u.bmp.Set(j)
	u.count++
}

// Begin returns a fresh iterator over the block's recorded locations.
func (u *UnaryBlock) Begin() Iterator {
	it := &bitmapIterator{block: u, cur: ^uint32(0)}
	it.base.self = it
	it.Next()
	return it
}

type bitmapIterator struct {
	base
	block *UnaryBlock
	cur   uint32 // ^0 sentinel means "before the first location"
	ended bool
}

func (it *bitmapIterator) Next() {
	from := uint32(0)
	if it.cur != ^uint32(0) {
		from = it.cur + 1
	}
	next, ok := it.block.bmp.Next(from)
	if !ok {
		it.ended = true
		return
	}
	it.cur = next
}

func (it *bitmapIterator) Reset() {
	it.cur = ^uint32(0)
	it.ended = false
	it.Next()
}

func (it *bitmapIterator) IsEnd() bool { return it.ended }

func (it *bitmapIterator) Location() uint32 { return it.cur }

func (it *bitmapIterator) EndLocation() uint32 { return it.cur + it.block.length }

// Find is the §4.2 direct-bit-test fast path: target is taken as the bit
// offset from the block's start; a single Test call reports the match and,
// on success, positions the iterator exactly there.
func (it *bitmapIterator) Find(target uint32) bool {
	if !it.block.bmp.Find(target) {
		return false
	}
	it.cur = target
	it.ended = false
	return true
}
