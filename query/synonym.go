package query

// Synonym evaluates its children in lock-step ID order like Or, but
// reports the matched child's own term frequency rather than a summed
// frequency (supplemented from original_source's Synonym.cpp).
type Synonym struct {
	base
	children []DocumentIterator
	doc      DocID
	matched  int
	end      bool
}

func NewSynonym(children ...DocumentIterator) *Synonym {
	n := &Synonym{children: children}
	n.self = n
	n.Reset()
	return n
}

func (n *Synonym) Reset() {
	for _, c := range n.children {
		c.Reset()
	}
	n.settle()
}

func (n *Synonym) settle() {
	n.doc = 0
	n.matched = -1
	for i, c := range n.children {
		if c.IsEnd() {
			continue
		}
		if n.matched < 0 || c.DocID() < n.doc {
			n.doc = c.DocID()
			n.matched = i
		}
	}
	n.end = n.matched < 0
}

func (n *Synonym) Next() {
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

func (n *Synonym) IsEnd() bool  { return n.end }
func (n *Synonym) DocID() DocID { return n.doc }

// InDocFreq returns the matched child's own term frequency, not a sum
// across children (the documented divergence from Or).
func (n *Synonym) InDocFreq() uint32 {
	if n.end {
		return 0
	}
	return n.children[n.matched].InDocFreq()
}

func (n *Synonym) Locations() LocationIterator {
	if n.end {
		return nil
	}
	return n.children[n.matched].Locations()
}

// MatchedChild returns the index of the child that produced the current
// document, bookkeeping that ExpandSynonym exposes for downstream
// highlighting (out of scope here).
func (n *Synonym) MatchedChild() int { return n.matched }

func (n *Synonym) LowerBound(doc DocID) bool {
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

func (n *Synonym) Find(doc DocID) bool {
	if !n.LowerBound(doc) {
		return false
	}
	return n.doc == doc
}

// ExpandSynonym is Synonym that also remembers the matched-child index of
// the last document, so callers can still inspect which expansion term hit
// after Next has moved the iterator past the end.
type ExpandSynonym struct {
	*Synonym
	lastMatched int
}

func NewExpandSynonym(children ...DocumentIterator) *ExpandSynonym {
	e := &ExpandSynonym{Synonym: NewSynonym(children...)}
	e.lastMatched = e.Synonym.matched
	return e
}

func (e *ExpandSynonym) Next() {
	if !e.Synonym.end {
		e.lastMatched = e.Synonym.matched
	}
	e.Synonym.Next()
}

// MatchedChild returns the child index that produced the document the
// iterator was last positioned on, surviving one Next() call past it.
func (e *ExpandSynonym) MatchedChild() int {
	if !e.Synonym.end {
		return e.Synonym.matched
	}
	return e.lastMatched
}
