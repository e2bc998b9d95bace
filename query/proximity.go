package query

// OrderedDistance matches documents where every child occurs, in child
// order, with each consecutive pair's position gap within [lower,upper].
// It takes any number of children and matches as Within with
// ordered=true; Within below adds an unordered mode.
type OrderedDistance struct {
	base
	children []DocumentIterator
	lower    uint32
	upper    uint32
	doc      DocID
	end      bool
}

func NewOrderedDistance(lower, upper uint32, children ...DocumentIterator) *OrderedDistance {
	n := &OrderedDistance{children: children, lower: lower, upper: upper}
	n.self = n
	n.Reset()
	return n
}

func (n *OrderedDistance) Reset() {
	for _, c := range n.children {
		c.Reset()
	}
	n.seek()
}

func (n *OrderedDistance) satisfiesAt(doc DocID) bool {
	if len(n.children) == 0 {
		return false
	}
	for _, c := range n.children {
		if !c.Find(doc) {
			return false
		}
	}
	locs := make([]LocationIterator, len(n.children))
	for i, c := range n.children {
		locs[i] = c.Locations()
		if locs[i] == nil {
			return false
		}
	}
	return matchOrderedWindow(locs, n.lower, n.upper)
}

// matchOrderedWindow reports whether some assignment of positions, one
// per iterator in order, has each consecutive gap (from one token's end
// to the next token's start) within [lower,upper].
func matchOrderedWindow(locs []LocationIterator, lower, upper uint32) bool {
	for !locs[0].IsEnd() {
		ok := true
		prevEnd := locs[0].EndLocation()
		for i := 1; i < len(locs); i++ {
			locs[i].Reset()
			target := prevEnd + lower
			if !locs[i].LowerBound(target) {
				return false
			}
			gap := locs[i].Location() - prevEnd
			if gap > upper {
				ok = false
				break
			}
			prevEnd = locs[i].EndLocation()
		}
		if ok {
			return true
		}
		locs[0].Next()
	}
	return false
}

func (n *OrderedDistance) seek() {
	for _, c := range n.children {
		if c.IsEnd() {
			n.end = true
			return
		}
	}
	base := n.children[0]
	for !base.IsEnd() {
		doc := base.DocID()
		allPresent := true
		for _, c := range n.children[1:] {
			if !c.LowerBound(doc) {
				n.end = true
				return
			}
			if c.DocID() != doc {
				allPresent = false
				break
			}
		}
		if allPresent && n.satisfiesAt(doc) {
			n.doc = doc
			n.end = false
			return
		}
		base.Next()
	}
	n.end = true
}

func (n *OrderedDistance) Next() {
	if n.end {
		return
	}
	n.children[0].Next()
	n.seek()
}

func (n *OrderedDistance) IsEnd() bool               { return n.end }
func (n *OrderedDistance) DocID() DocID              { return n.doc }
func (n *OrderedDistance) InDocFreq() uint32         { return 1 }
func (n *OrderedDistance) Locations() LocationIterator { return nil }

func (n *OrderedDistance) LowerBound(doc DocID) bool {
	if !n.children[0].LowerBound(doc) {
		n.end = true
		return false
	}
	n.seek()
	return !n.end
}

func (n *OrderedDistance) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.doc == doc
}

// Within is OrderedDistance generalized to an unordered mode (§4.3,
// supplemented from Within.cpp's isOrdered flag): when ordered is false,
// a document matches when every pair of children has some pair of
// positions, in either order, whose gap falls within the window.
type Within struct {
	base
	children []DocumentIterator
	lower    uint32
	upper    uint32
	ordered  bool
	doc      DocID
	end      bool
}

func NewWithin(lower, upper uint32, ordered bool, children ...DocumentIterator) *Within {
	n := &Within{children: children, lower: lower, upper: upper, ordered: ordered}
	n.self = n
	n.Reset()
	return n
}

func (n *Within) Reset() {
	for _, c := range n.children {
		c.Reset()
	}
	n.seek()
}

func (n *Within) satisfiesAt(doc DocID) bool {
	for _, c := range n.children {
		if !c.Find(doc) {
			return false
		}
	}
	if n.ordered {
		locs := make([]LocationIterator, len(n.children))
		for i, c := range n.children {
			locs[i] = c.Locations()
			if locs[i] == nil {
				return false
			}
		}
		return matchOrderedWindow(locs, n.lower, n.upper)
	}
	return n.satisfiesUnordered(doc)
}

// satisfiesUnordered reports whether every pair of children has some pair
// of positions whose gap falls within [lower,upper], order-independent.
func (n *Within) satisfiesUnordered(doc DocID) bool {
	type span = struct{ start, end uint32 }
	var spans [][]span
	for _, c := range n.children {
		it := c.Locations()
		if it == nil {
			return false
		}
		var ss []span
		for !it.IsEnd() {
			ss = append(ss, span{it.Location(), it.EndLocation()})
			it.Next()
		}
		if len(ss) == 0 {
			return false
		}
		spans = append(spans, ss)
	}
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if !anyPairWithin(spans[i], spans[j], n.lower, n.upper) {
				return false
			}
		}
	}
	return true
}

func anyPairWithin(a, b []struct{ start, end uint32 }, lower, upper uint32) bool {
	for _, x := range a {
		for _, y := range b {
			var gap uint32
			if x.end <= y.start {
				gap = y.start - x.end
			} else if y.end <= x.start {
				gap = x.start - y.end
			} else {
				gap = 0
			}
			if gap >= lower && gap <= upper {
				return true
			}
		}
	}
	return false
}

func (n *Within) seek() {
	for _, c := range n.children {
		if c.IsEnd() {
			n.end = true
			return
		}
	}
	base := n.children[0]
	for !base.IsEnd() {
		doc := base.DocID()
		allPresent := true
		for _, c := range n.children[1:] {
			if !c.LowerBound(doc) {
				n.end = true
				return
			}
			if c.DocID() != doc {
				allPresent = false
				break
			}
		}
		if allPresent && n.satisfiesAt(doc) {
			n.doc = doc
			n.end = false
			return
		}
		base.Next()
	}
	n.end = true
}

func (n *Within) Next() {
	if n.end {
		return
	}
	n.children[0].Next()
	n.seek()
}

func (n *Within) IsEnd() bool               { return n.end }
func (n *Within) DocID() DocID              { return n.doc }
func (n *Within) InDocFreq() uint32         { return 1 }
func (n *Within) Locations() LocationIterator { return nil }

func (n *Within) LowerBound(doc DocID) bool {
	if !n.children[0].LowerBound(doc) {
		n.end = true
		return false
	}
	n.seek()
	return !n.end
}

func (n *Within) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.doc == doc
}
