package segrtree

// LineString is an ordered sequence of coordinates with a segment RTree
// built over it. The coordinate slice is referenced, not copied, and must
// not be mutated while the LineString is in use; the tree is built once and
// all queries are read-only, so a LineString is safe for concurrent use.
type LineString struct {
	coords []Point
	tree   *SegRTree
}

// NewLineString builds a LineString and its index without validating the
// coordinates. Use Validate or NewValidatedLineString when the path must be
// simple.
func NewLineString(coords []Point) *LineString {
	if len(coords) == 0 {
		return &LineString{tree: EmptySegRTree()}
	}
	envs := make([]Envelope, 0, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		envs = append(envs, NewEnvelope(coords[i], coords[i+1]))
	}
	return &LineString{coords: coords, tree: NewSegRTree(DefaultDegree, envs)}
}

// NewValidatedLineString builds a LineString while checking each segment
// against the partially built index, so an invalid path is rejected without
// indexing the remainder.
func NewValidatedLineString(coords []Point) (*LineString, error) {
	if len(coords) == 0 {
		return &LineString{tree: EmptySegRTree()}, nil
	} else if len(coords) == 1 {
		return nil, ErrSingleCoordinate
	}
	for _, c := range coords {
		if !c.IsFinite() {
			return nil, ErrNonFiniteCoordinate
		}
	}

	tree := NewIncrementalSegRTree(DefaultDegree, len(coords)-1)
	for i := 0; i+1 < len(coords); i++ {
		start, end := coords[i], coords[i+1]
		if start == end {
			return nil, DegenerateSegmentError{Index: i, Position: start}
		}
		env := NewEnvelope(start, end)
		for _, j := range tree.Query(env) {
			if err := checkIntersection(i, j, coords); err != nil {
				return nil, err
			}
		}
		if err := tree.Add(env); err != nil {
			return nil, err
		}
	}
	return &LineString{coords: coords, tree: tree}, nil
}

// Coords returns the coordinate sequence.
func (l *LineString) Coords() []Point {
	return l.coords
}

// RTree returns the segment index.
func (l *LineString) RTree() *SegRTree {
	return l.tree
}

// Envelope returns the envelope of the whole LineString.
func (l *LineString) Envelope() Envelope {
	return l.tree.Envelope()
}

// NumSegments returns the number of segments.
func (l *LineString) NumSegments() int {
	return l.tree.Len()
}

// Segment returns the endpoints of segment i.
func (l *LineString) Segment(i int) (Point, Point) {
	return l.coords[i], l.coords[i+1]
}

// Closed returns true if the last coordinate equals the first. A sequence
// without segments is not a loop.
func (l *LineString) Closed() bool {
	return 1 < len(l.coords) && l.coords[0] == l.coords[len(l.coords)-1]
}

// Validate checks that the path is simple: no non-finite coordinates, no
// zero-length segments, and no self-intersections other than the shared
// endpoints of consecutive segments and, for a closed path, of the first and
// last segment.
func (l *LineString) Validate() error {
	if len(l.coords) == 1 {
		return ErrSingleCoordinate
	}
	for _, c := range l.coords {
		if !c.IsFinite() {
			return ErrNonFiniteCoordinate
		}
	}
	for i := 0; i+1 < len(l.coords); i++ {
		if l.coords[i] == l.coords[i+1] {
			return DegenerateSegmentError{Index: i, Position: l.coords[i]}
		}
	}

	s := l.tree.SelfIntersections()
	for s.Scan() {
		i, j := s.Pair()
		if err := checkIntersection(i, j, l.coords); err != nil {
			return err
		}
	}
	return nil
}

// checkIntersection classifies the exact intersection of candidate segments
// i and j. Consecutive segments must meet exactly at their shared vertex,
// the first and last segment of a closed path must meet exactly at the
// closure point, and any other contact is a validity violation.
func checkIntersection(i, j int, coords []Point) error {
	first, second := min(i, j), max(i, j)
	firstStart, firstEnd := coords[first], coords[first+1]
	secondStart, secondEnd := coords[second], coords[second+1]

	isxnStart, isxnEnd, ok := IntersectSegments(firstStart, firstEnd, secondStart, secondEnd)
	if !ok {
		return nil
	}
	if isxnStart != isxnEnd {
		return OverlappingSegmentsError{I: first, J: second, Start: isxnStart, End: isxnEnd}
	}
	if first == second-1 {
		if isxnStart == secondStart {
			return nil
		}
	} else if first == 0 && second == len(coords)-2 {
		if isxnStart == firstStart && isxnStart == secondEnd {
			return nil
		}
	}
	return SelfIntersectionError{I: first, J: second, Position: isxnStart}
}

// Ring is a validated closed simple LineString with at least 4 coordinates
// (3 distinct vertices plus closure).
type Ring struct {
	LineString
}

// NewRing builds and validates a Ring. The ring shape is checked before the
// coordinates are indexed.
func NewRing(coords []Point) (*Ring, error) {
	if len(coords) < 4 {
		return nil, ErrTooFewCoordinates
	} else if coords[0] != coords[len(coords)-1] {
		return nil, ErrNotClosed
	}
	ls, err := NewValidatedLineString(coords)
	if err != nil {
		return nil, err
	}
	return &Ring{*ls}, nil
}

// Ring converts a LineString into a Ring, checking the ring shape. The
// LineString must already be validated (or known simple).
func (l *LineString) Ring() (*Ring, error) {
	if len(l.coords) < 4 {
		return nil, ErrTooFewCoordinates
	} else if !l.Closed() {
		return nil, ErrNotClosed
	}
	return &Ring{*l}, nil
}

// Locate returns the position of p relative to the ring.
func (r *Ring) Locate(p Point) RingLocation {
	return ringLocation(r.tree, r.coords, p)
}

// Contains returns true if p is inside the ring or on its boundary.
func (r *Ring) Contains(p Point) bool {
	loc := r.Locate(p)
	return loc.Inside || loc.OnBoundary
}
