package location

import (
	"github.com/DoqueDB/doquedb-sub038/bits"
	"github.com/DoqueDB/doquedb-sub038/errutil"
)

// State names the 3-stage representation a List has transitioned through.
// Transitions are one-way: Inline -> Unpacked -> Packed.
type State int

const (
	Inline State = iota
	Unpacked
	Packed
)

const (
	unpackedCapacity = 4
	blockThreshold   = 1024 // units; doubling stops here, growth becomes additive
	initialPackedCap = 4    // units, including the 2-unit header
)

// List is the per-document token-position list (§3.2). Zero value is not
// usable; construct with New.
type List struct {
	coder  bits.Codec
	state  State
	count  int
	length uint32 // token character length, for EndLocation

	v0, v1       uint32
	unpackedArea [unpackedCapacity]uint32

	// Packed-state backing area: area[0]=last raw value pushed,
	// area[1]=tail bit offset (within area[2:]), area[2:]=packed gaps.
	area []bits.Unit
}

// New creates an empty location list using coder for the packed
// representation.
func New(coder bits.Codec) *List {
	return &List{coder: coder, state: Inline}
}

// Clear resets the list to the empty Inline state.
func (l *List) Clear() {
	l.state = Inline
	l.count = 0
	l.v0, l.v1 = 0, 0
	l.unpackedArea = [unpackedCapacity]uint32{}
	l.area = nil
}

// SetTokenLength records the token's character length, used by
// EndLocation() = Location() + length on the iterators this list
// produces.
func (l *List) SetTokenLength(n uint32) { l.length = n }

// GetSize returns the number of elements pushed.
func (l *List) GetSize() int { return l.count }

// SetFirstValue overwrites the first stored value. Only meaningful before
// the list has transitioned into the Packed state, where the first raw
// value is no longer held directly.
func (l *List) SetFirstValue(v uint32) {
	switch {
	case l.count == 0:
		l.PushBack(v)
	case l.state == Inline:
		l.v0 = v
	case l.state == Unpacked:
		l.unpackedArea[0] = v
	default:
		errutil.Bug("SetFirstValue called on a Packed location list")
	}
}

// PushBack appends v, which must be strictly greater than the previously
// pushed value. Dispatches to the inline/unpacked/packed transition logic
// per §4.2.
func (l *List) PushBack(v uint32) {
	switch l.count {
	case 0:
		l.v0 = v
		l.state = Inline
	case 1:
		l.v1 = v
		l.state = Inline
	case 2:
		l.unpackedArea[0], l.unpackedArea[1], l.unpackedArea[2] = l.v0, l.v1, v
		l.state = Unpacked
	case 3:
		l.unpackedArea[3] = v
		l.state = Unpacked
	case 4:
		l.transitionToPacked(v)
	default:
		l.pushPacked(v)
	}
	l.count++
}

func (l *List) transitionToPacked(v uint32) {
	vals := [unpackedCapacity + 1]uint32{
		l.unpackedArea[0], l.unpackedArea[1], l.unpackedArea[2], l.unpackedArea[3], v,
	}
	l.area = make([]bits.Unit, initialPackedCap)
	l.state = Packed

	last := uint32(0)
	for _, val := range vals {
		l.appendGap(val - last)
		last = val
	}
}

func (l *List) pushPacked(v uint32) {
	last := l.area[0]
	l.appendGap(v - last)
}

// appendGap writes gap through the codec into the packed area, growing the
// backing storage on out-of-room per §4.2's retry algorithm.
func (l *List) appendGap(gap uint32) {
	for {
		capBits := uint32(len(l.area)-2) * 32
		if l.coder.Append(gap, l.area[2:], capBits, &l.area[1]) {
			l.area[0] += gap
			return
		}
		l.growPacked()
	}
}

func (l *List) growPacked() {
	oldUnits := len(l.area)
	var newUnits int
	if oldUnits < blockThreshold {
		newUnits = oldUnits * 2
		if newUnits > blockThreshold {
			newUnits = blockThreshold
		}
	} else {
		newUnits = oldUnits + blockThreshold
	}
	if newUnits <= oldUnits {
		newUnits = oldUnits + 1
	}

	newArea := make([]bits.Unit, newUnits)
	tailBits := l.area[1]
	if tailBits > 0 {
		bits.Move(l.area[2:], 0, tailBits, 0, newArea[2:])
	}
	newArea[0] = l.area[0]
	newArea[1] = l.area[1]
	l.area = newArea
	// newArea was allocated zeroed by make(), satisfying the "post-copy
	// memset zeroes the new tail" requirement.
}

// GetUnitNum returns the number of Units the current representation
// occupies: 0 for Inline (no allocation), the fixed unpacked array size
// for Unpacked, and the live backing area length for Packed.
func (l *List) GetUnitNum() int {
	switch l.state {
	case Inline:
		return 0
	case Unpacked:
		return unpackedCapacity
	default:
		return len(l.area)
	}
}

// GetDataSize returns the number of bytes the coded (packed-form)
// representation needs, regardless of the list's current in-memory state.
func (l *List) GetDataSize() uint32 {
	return (l.GetBitLength() + 7) / 8
}

// GetBitLength returns the total coded bit length: the verbatim Packed
// tail offset when already packed, or a recomputation over the gap-coded
// raw values otherwise.
func (l *List) GetBitLength() uint32 {
	if l.state == Packed {
		return l.area[1]
	}
	total := uint32(0)
	last := uint32(0)
	for i := 0; i < l.count; i++ {
		v := l.at(i)
		total += l.coder.BitLength(v - last)
		last = v
	}
	return total
}

func (l *List) at(i int) uint32 {
	switch l.state {
	case Inline:
		if i == 0 {
			return l.v0
		}
		return l.v1
	case Unpacked:
		return l.unpackedArea[i]
	default:
		it := l.Begin()
		defer it.Release()
		var v uint32
		for n := 0; n <= i; n++ {
			if it.IsEnd() {
				errutil.Bug("index %d out of range", i)
			}
			v = it.Location()
			if n < i {
				it.Next()
			}
		}
		return v
	}
}

// At is the operator[] equivalent: the i'th stored value (0-indexed).
func (l *List) At(i int) uint32 { return l.at(i) }

// Copy flushes the list's coded form into dst starting at bit offset
// *dstBitOffset, advancing it by GetBitLength() bits. Used when appending a
// list to an overflow page.
func (l *List) Copy(dst []bits.Unit, dstBitOffset *uint32) {
	if l.state == Packed {
		bits.Move(l.area[2:], 0, l.area[1], *dstBitOffset, dst)
		*dstBitOffset += l.area[1]
		return
	}
	last := uint32(0)
	for i := 0; i < l.count; i++ {
		v := l.at(i)
		gap := v - last
		capBits := uint32(len(dst)) * 32
		ok := l.coder.Append(gap, dst, capBits, dstBitOffset)
		errutil.FatalIf(boolErr(ok))
		last = v
	}
}

func boolErr(ok bool) error {
	if ok {
		return nil
	}
	return errOutOfRoom
}
