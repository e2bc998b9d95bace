package bits

import "github.com/bits-and-blooms/bitset"

// Unary is the plain unary codec: v (v>=1) is coded as (v-1) zero bits
// followed by a terminating one bit, so BitLength(v)==v. It satisfies the
// generic Codec contract for round-trip completeness, but the location
// list's unary-coded block (§4.2) does not use Append/Get in its hot path —
// it uses UnaryBitmap below, which stores each location as a direct bit
// index rather than a sequentially gap-coded numeral, enabling the O(1)
// Find fast path the spec mandates.
type Unary struct{}

var _ Codec = Unary{}

func (Unary) BitLength(v uint32) uint32 { return v }

func (Unary) Append(v uint32, buf []Unit, capBits uint32, tail *uint32) bool {
	if *tail+v > capBits {
		return false
	}
	t := *tail + v - 1
	appendBits(1, 1, buf, &t)
	*tail += v
	return true
}

func (Unary) Get(v *uint32, buf []Unit, endBits uint32, cur *uint32) bool {
	if *cur == endBits {
		return false
	}
	pos := *cur
	n := uint32(1)
	for pos < endBits && !getBit(buf, pos) {
		n++
		pos++
	}
	pos++ // consume terminating 1
	*v = n
	*cur = pos
	return true
}

// UnaryBitmap is the location-within-word bitmap representation used by
// unary-coded blocks: location j is recorded by setting bit j directly,
// with no incremental gap coding. Find(target) is then a single bit test
// instead of a sequential decode.
type UnaryBitmap struct {
	bs             *bitset.BitSet
	startBitOffset uint32
}

// NewUnaryBitmap creates a bitmap able to record locations in
// [0, capacityBits).
func NewUnaryBitmap(capacityBits uint32) *UnaryBitmap {
	return &UnaryBitmap{bs: bitset.New(uint(capacityBits))}
}

// Set records location j.
func (u *UnaryBitmap) Set(j uint32) {
	u.bs.Set(uint(j))
}

// Find performs the O(1) direct bit test mandated for unary-coded blocks.
// target is the bit offset from the block's start; it returns whether that
// location was recorded.
func (u *UnaryBitmap) Find(target uint32) bool {
	return u.bs.Test(uint(target))
}

// Next returns the smallest set bit >= from, and whether one was found.
func (u *UnaryBitmap) Next(from uint32) (uint32, bool) {
	idx, ok := u.bs.NextSet(uint(from))
	return uint32(idx), ok
}
