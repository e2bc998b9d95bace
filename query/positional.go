package query

// OperatorEnd filters a child LocationIterator's positions to those whose
// end location, displaced by distance, equals a caller-chosen target
// (§4.3): "token ending at endLocation with displacement distance".
type OperatorEnd struct {
	child       LocationIterator
	endLocation uint32
	distance    int32
	end         bool
}

// NewOperatorEnd wraps child, filtering to positions satisfying
// child.EndLocation()+distance-1 == endLocation.
func NewOperatorEnd(child LocationIterator, endLocation uint32, distance int32) *OperatorEnd {
	o := &OperatorEnd{child: child, endLocation: endLocation, distance: distance}
	o.seek()
	return o
}

func (o *OperatorEnd) matches() bool {
	return int64(o.child.EndLocation())+int64(o.distance)-1 == int64(o.endLocation)
}

func (o *OperatorEnd) seek() {
	for !o.child.IsEnd() {
		if o.matches() {
			o.end = false
			return
		}
		o.child.Next()
	}
	o.end = true
}

func (o *OperatorEnd) Next() {
	if o.end {
		return
	}
	o.child.Next()
	o.seek()
}

func (o *OperatorEnd) Reset() {
	o.child.Reset()
	o.seek()
}

func (o *OperatorEnd) IsEnd() bool           { return o.end }
func (o *OperatorEnd) Location() uint32      { return o.child.Location() }
func (o *OperatorEnd) EndLocation() uint32   { return o.child.EndLocation() }
func (o *OperatorEnd) Frequency() uint32     { return o.child.Frequency() }
func (o *OperatorEnd) Release()              { o.child.Release() }

func (o *OperatorEnd) LowerBound(pos uint32) bool {
	for !o.end && o.Location() < pos {
		o.Next()
	}
	return !o.end
}

func (o *OperatorEnd) Find(pos uint32) bool {
	if !o.LowerBound(pos) {
		return false
	}
	return o.Location() == pos
}

// OperatorLocation filters a child LocationIterator's positions to those
// exactly equal to a target location.
type OperatorLocation struct {
	child    LocationIterator
	location uint32
	end      bool
}

func NewOperatorLocation(child LocationIterator, location uint32) *OperatorLocation {
	o := &OperatorLocation{child: child, location: location}
	o.seek()
	return o
}

func (o *OperatorLocation) seek() {
	for !o.child.IsEnd() {
		if o.child.Location() == o.location {
			o.end = false
			return
		}
		o.child.Next()
	}
	o.end = true
}

func (o *OperatorLocation) Next() {
	if o.end {
		return
	}
	o.child.Next()
	o.seek()
}

func (o *OperatorLocation) Reset() {
	o.child.Reset()
	o.seek()
}

func (o *OperatorLocation) IsEnd() bool         { return o.end }
func (o *OperatorLocation) Location() uint32    { return o.child.Location() }
func (o *OperatorLocation) EndLocation() uint32 { return o.child.EndLocation() }
func (o *OperatorLocation) Frequency() uint32   { return o.child.Frequency() }
func (o *OperatorLocation) Release()            { o.child.Release() }

func (o *OperatorLocation) LowerBound(pos uint32) bool {
	for !o.end && o.Location() < pos {
		o.Next()
	}
	return !o.end
}

func (o *OperatorLocation) Find(pos uint32) bool {
	if !o.LowerBound(pos) {
		return false
	}
	return o.Location() == pos
}
