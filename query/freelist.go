package query

// Arena is the per-query arena of LocationIterator instances (§9 design
// notes): composite nodes recycle released iterators through a free list
// of arena indices instead of the original intrusive-list-of-instances
// scheme, so a query tree's position-iterator churn costs an index push/
// pop rather than an allocator round-trip.
type Arena struct {
	slots []LocationIterator
	free  []int
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// Acquire returns a handle for it, reusing a freed slot if one exists.
func (a *Arena) Acquire(it LocationIterator) int {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = it
		return idx
	}
	a.slots = append(a.slots, it)
	return len(a.slots) - 1
}

// Get returns the iterator at handle idx.
func (a *Arena) Get(idx int) LocationIterator { return a.slots[idx] }

// Release returns idx's slot to the free list, calling the held
// iterator's Release first so its own resources go through the same
// recycling step.
func (a *Arena) Release(idx int) {
	if a.slots[idx] != nil {
		a.slots[idx].Release()
	}
	a.slots[idx] = nil
	a.free = append(a.free, idx)
}

// Len reports the number of slots ever allocated (including freed ones),
// for diagnostics.
func (a *Arena) Len() int { return len(a.slots) }
