package location

// indexIterator walks the Inline or Unpacked state by plain index — no
// decoding required since both states hold raw values directly.
type indexIterator struct {
	base
	list   *List
	idx    int
	length uint32
}

func newIndexIterator(l *List) *indexIterator {
	it := &indexIterator{list: l, idx: 0, length: l.length}
	it.base.self = it
	return it
}

func (it *indexIterator) Next() {
	if it.idx < it.list.count {
		it.idx++
	}
}

func (it *indexIterator) Reset() { it.idx = 0 }

func (it *indexIterator) IsEnd() bool { return it.idx >= it.list.count }

func (it *indexIterator) Location() uint32 {
	return it.list.at(it.idx)
}

func (it *indexIterator) EndLocation() uint32 {
	return it.Location() + it.length
}
