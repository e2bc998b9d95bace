package location

// packedIterator walks a Packed-state list, decoding one gap per Next call
// and accumulating into currentLocation — the "decode inside next" variant
// the spec prescribes as the default because it keeps IsEnd a plain
// comparison (decoded > number) with no separate end-of-stream flag.
type packedIterator struct {
	base
	list            *List
	cur             uint32
	end             uint32
	decoded         int
	number          int
	currentLocation uint32
	length          uint32
}

func newPackedIterator(l *List) *packedIterator {
	it := &packedIterator{
		list:   l,
		end:    l.area[1],
		number: l.count,
		length: l.length,
	}
	it.base.self = it
	it.Next()
	return it
}

func (it *packedIterator) Next() {
	if it.decoded >= it.number {
		it.decoded++
		return
	}
	var gap uint32
	it.list.coder.Get(&gap, it.list.area[2:], it.end, &it.cur)
	it.currentLocation += gap
	it.decoded++
}

func (it *packedIterator) Reset() {
	it.cur = 0
	it.decoded = 0
	it.currentLocation = 0
	it.Next()
}

func (it *packedIterator) IsEnd() bool { return it.decoded > it.number }

func (it *packedIterator) Location() uint32 { return it.currentLocation }

func (it *packedIterator) EndLocation() uint32 { return it.currentLocation + it.length }

// Begin returns a fresh Iterator over the list's current contents. The
// concrete type differs by state: index-based for Inline/Unpacked, a
// lazy bit-stream decoder for Packed.
func (l *List) Begin() Iterator {
	switch l.state {
	case Inline, Unpacked:
		return newIndexIterator(l)
	default:
		return newPackedIterator(l)
	}
}
