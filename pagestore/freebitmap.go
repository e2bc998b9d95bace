package pagestore

import "github.com/bits-and-blooms/bitset"

// freeBitmap tracks allocated vs. free physical page slots within a single
// overflow file: bit set means allocated. Allocation scans forward from
// the last known clear position, which keeps amortized cost low for the
// common append-mostly workload without needing a full rank/select
// structure.
type freeBitmap struct {
	bits     *bitset.BitSet
	nextHint uint
	used     uint
}

func newFreeBitmap() *freeBitmap {
	return &freeBitmap{bits: bitset.New(1024)}
}

// allocate returns the lowest-numbered free slot, growing the bitmap if
// every tracked slot is taken.
func (f *freeBitmap) allocate() uint32 {
	if f.nextHint >= f.bits.Len() {
		f.bits = f.bits.Resize(f.bits.Len() * 2)
	}
	idx, ok := f.bits.NextClear(f.nextHint)
	if !ok {
		f.bits = f.bits.Resize(f.bits.Len() * 2)
		idx, ok = f.bits.NextClear(f.nextHint)
		if !ok {
			idx = f.bits.Len()
		}
	}
	f.bits.Set(idx)
	f.nextHint = idx + 1
	f.used++
	return uint32(idx)
}

func (f *freeBitmap) free(slot uint32) {
	if uint(slot) < f.bits.Len() && f.bits.Test(uint(slot)) {
		f.bits.Clear(uint(slot))
		f.used--
		if uint(slot) < f.nextHint {
			f.nextHint = uint(slot)
		}
	}
}

func (f *freeBitmap) isAllocated(slot uint32) bool {
	return uint(slot) < f.bits.Len() && f.bits.Test(uint(slot))
}
