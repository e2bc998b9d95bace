package query

// And produces the intersection of its children's document streams,
// merged by monotonic lower-bound (§4.3): the slowest-advancing child
// drives the probe into the others.
type And struct {
	base
	children []DocumentIterator
	doc      DocID
	end      bool
}

func NewAnd(children ...DocumentIterator) *And {
	n := &And{children: children}
	n.self = n
	n.Reset()
	return n
}

func (n *And) Reset() {
	for _, c := range n.children {
		c.Reset()
	}
	n.end = false
	n.converge()
}

// converge advances all children to a common document id, or marks end
// once any child is exhausted.
func (n *And) converge() {
	if len(n.children) == 0 {
		n.end = true
		return
	}
	for {
		candidate := n.children[0].DocID()
		if n.children[0].IsEnd() {
			n.end = true
			return
		}
		matched := true
		for _, c := range n.children[1:] {
			if !c.LowerBound(candidate) {
				n.end = true
				return
			}
			if c.DocID() != candidate {
				matched = false
				if !n.children[0].LowerBound(c.DocID()) {
					n.end = true
					return
				}
				break
			}
		}
		if matched {
			n.doc = candidate
			return
		}
	}
}

func (n *And) Next() {
	if n.end {
		return
	}
	n.children[0].Next()
	n.converge()
}

func (n *And) IsEnd() bool  { return n.end }
func (n *And) DocID() DocID { return n.doc }

func (n *And) InDocFreq() uint32 {
	var sum uint32
	for _, c := range n.children {
		sum += c.InDocFreq()
	}
	return sum
}

func (n *And) Locations() LocationIterator { return nil }

func (n *And) LowerBound(doc DocID) bool {
	if n.end {
		return false
	}
	if !n.children[0].LowerBound(doc) {
		n.end = true
		return false
	}
	n.converge()
	return !n.end
}

func (n *And) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.doc == doc
}

// Or produces the union of its children's document streams, always
// positioned at the smallest current child DocID.
type Or struct {
	base
	children []DocumentIterator
	doc      DocID
	end      bool
}

func NewOr(children ...DocumentIterator) *Or {
	n := &Or{children: children}
	n.self = n
	n.Reset()
	return n
}

func (n *Or) Reset() {
	for _, c := range n.children {
		c.Reset()
	}
	n.settle()
}

func (n *Or) settle() {
	n.doc = 0
	found := false
	for _, c := range n.children {
		if c.IsEnd() {
			continue
		}
		if !found || c.DocID() < n.doc {
			n.doc = c.DocID()
			found = true
		}
	}
	n.end = !found
}

func (n *Or) Next() {
	if n.end {
		return
	}
	for _, c := range n.children {
		if !c.IsEnd() && c.DocID() == n.doc {
			c.Next()
		}
	}
	n.settle()
}

func (n *Or) IsEnd() bool  { return n.end }
func (n *Or) DocID() DocID { return n.doc }

func (n *Or) InDocFreq() uint32 {
	var sum uint32
	for _, c := range n.children {
		if !c.IsEnd() && c.DocID() == n.doc {
			sum += c.InDocFreq()
		}
	}
	return sum
}

func (n *Or) Locations() LocationIterator { return nil }

func (n *Or) LowerBound(doc DocID) bool {
	if n.end {
		return false
	}
	for _, c := range n.children {
		if !c.IsEnd() && c.DocID() < doc {
			c.LowerBound(doc)
		}
	}
	n.settle()
	return !n.end
}

func (n *Or) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.doc == doc
}

// AndNot produces positive's document stream filtered to exclude any
// document present in negative.
type AndNot struct {
	base
	positive DocumentIterator
	negative DocumentIterator
	end      bool
}

func NewAndNot(positive, negative DocumentIterator) *AndNot {
	n := &AndNot{positive: positive, negative: negative}
	n.self = n
	n.Reset()
	return n
}

func (n *AndNot) Reset() {
	n.positive.Reset()
	n.negative.Reset()
	n.skipExcluded()
}

func (n *AndNot) skipExcluded() {
	for {
		if n.positive.IsEnd() {
			n.end = true
			return
		}
		doc := n.positive.DocID()
		if n.negative.LowerBound(doc) && n.negative.DocID() == doc {
			n.positive.Next()
			continue
		}
		n.end = false
		return
	}
}

func (n *AndNot) Next() {
	if n.end {
		return
	}
	n.positive.Next()
	n.skipExcluded()
}

func (n *AndNot) IsEnd() bool           { return n.end }
func (n *AndNot) DocID() DocID          { return n.positive.DocID() }
func (n *AndNot) InDocFreq() uint32     { return n.positive.InDocFreq() }
func (n *AndNot) Locations() LocationIterator { return n.positive.Locations() }

func (n *AndNot) LowerBound(doc DocID) bool {
	if !n.positive.LowerBound(doc) {
		n.end = true
		return false
	}
	n.skipExcluded()
	return !n.end
}

func (n *AndNot) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.DocID() == doc
}
