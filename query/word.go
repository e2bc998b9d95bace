package query

// WordMode selects how OperatorWordNode matches a term against the
// indexed token stream (§3.4/§4.3).
type WordMode int

const (
	WordSimple WordMode = iota
	WordExact
	WordHead
	WordTail
	WordApproximate
)

// OperatorWordNode combines a term's document stream with an optional
// empty-string (word-boundary) iterator to implement exact/head/tail/
// approximate matching. Document-level membership always follows the
// term child; the boundary child only narrows which positions within a
// document count as hits, via filteredLocations.
type OperatorWordNode struct {
	base
	term     DocumentIterator
	boundary DocumentIterator // nil for WordSimple; present otherwise
	mode     WordMode
	// tolerance is the maximum position displacement WordApproximate
	// accepts between a term occurrence and a boundary occurrence.
	tolerance uint32
}

// NewOperatorWordNode builds a word-matching node. boundary may be nil
// only when mode is WordSimple.
func NewOperatorWordNode(mode WordMode, term, boundary DocumentIterator, tolerance uint32) *OperatorWordNode {
	n := &OperatorWordNode{term: term, boundary: boundary, mode: mode, tolerance: tolerance}
	n.self = n
	return n
}

func (n *OperatorWordNode) Next()         { n.term.Next() }
func (n *OperatorWordNode) Reset()        { n.term.Reset() }
func (n *OperatorWordNode) IsEnd() bool   { return n.term.IsEnd() }
func (n *OperatorWordNode) DocID() DocID  { return n.term.DocID() }
func (n *OperatorWordNode) InDocFreq() uint32 {
	return n.term.InDocFreq()
}

func (n *OperatorWordNode) LowerBound(doc DocID) bool { return n.term.LowerBound(doc) }
func (n *OperatorWordNode) Find(doc DocID) bool       { return n.term.Find(doc) }

// Locations returns the position stream for the current document,
// filtered per mode. WordSimple passes the term's positions through
// unfiltered; the other modes require a boundary iterator positioned on
// the same document and filter to positions that satisfy the mode's
// word-boundary rule.
func (n *OperatorWordNode) Locations() LocationIterator {
	termLocs := n.term.Locations()
	if n.mode == WordSimple || n.boundary == nil || termLocs == nil {
		return termLocs
	}
	if !n.boundary.Find(n.DocID()) {
		return nil
	}
	w := &wordFilterIterator{
		term:      termLocs,
		boundary:  n.boundary.Locations(),
		mode:      n.mode,
		tolerance: n.tolerance,
	}
	w.seek()
	return w
}

// wordFilterIterator adapts a term LocationIterator into a boundary-aware
// LocationIterator by re-checking the boundary stream at every step.
type wordFilterIterator struct {
	term      LocationIterator
	boundary  LocationIterator
	mode      WordMode
	tolerance uint32
}

func (w *wordFilterIterator) matches() bool {
	if w.boundary == nil {
		return false
	}
	target := w.term.Location()
	switch w.mode {
	case WordExact:
		return w.boundary.Find(target) && w.boundary.EndLocation() == w.term.EndLocation()
	case WordHead:
		return w.boundary.Find(target)
	case WordTail:
		return w.boundary.Find(w.term.EndLocation())
	case WordApproximate:
		if !w.boundary.LowerBound(target) {
			return false
		}
		d := w.boundary.Location() - target
		return d <= w.tolerance
	default:
		return true
	}
}

func (w *wordFilterIterator) seek() {
	for !w.term.IsEnd() && !w.matches() {
		w.term.Next()
	}
}

func (w *wordFilterIterator) Next() {
	w.term.Next()
	w.seek()
}
func (w *wordFilterIterator) Reset() {
	w.term.Reset()
	w.boundary.Reset()
	w.seek()
}
func (w *wordFilterIterator) IsEnd() bool         { return w.term.IsEnd() }
func (w *wordFilterIterator) Location() uint32    { return w.term.Location() }
func (w *wordFilterIterator) EndLocation() uint32 { return w.term.EndLocation() }
func (w *wordFilterIterator) Frequency() uint32   { return w.term.Frequency() }
func (w *wordFilterIterator) Release() {
	w.term.Release()
	w.boundary.Release()
}
func (w *wordFilterIterator) LowerBound(pos uint32) bool {
	if !w.term.LowerBound(pos) {
		return false
	}
	w.seek()
	return !w.term.IsEnd()
}
func (w *wordFilterIterator) Find(pos uint32) bool {
	if !w.LowerBound(pos) {
		return false
	}
	return w.term.Location() == pos
}
