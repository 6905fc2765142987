package segrtree

// IntersectSegments returns the exact intersection of the segments a0-a1 and
// b0-b1. A point intersection has start == end; collinear overlapping
// segments yield the overlap range. ok is false if the segments are disjoint.
//
// Callers are expected to have pruned with envelopes first; no envelope
// check is done here.
func IntersectSegments(a0, a1, b0, b1 Point) (Point, Point, bool) {
	if (a0 == b0 && a1 == b1) || (a0 == b1 && a1 == b0) {
		return a0, a1, true
	}

	da := a1.Sub(a0)     // direction of segment A
	db := b1.Sub(b0)     // direction of segment B
	offset := b0.Sub(a0) // from A's start to B's start

	daXdb := da.PerpDot(db)
	offsetXda := offset.PerpDot(da)

	if daXdb == 0.0 {
		// parallel; if the offset is not also parallel they are disjoint
		if offsetXda != 0.0 {
			return Point{}, Point{}, false
		}
		// collinear: project B onto A and check for overlap
		da2 := da.Dot(da)
		t0 := offset.Dot(da) / da2
		t1 := t0 + da.Dot(db)/da2
		tMin, tMax := t0, t1
		if tMax < tMin {
			tMin, tMax = tMax, tMin
		}
		if tMin > 1.0 || tMax < 0.0 {
			return Point{}, Point{}, false
		}
		return a0.Add(da.Mul(max(tMin, 0.0))), a0.Add(da.Mul(min(tMax, 1.0))), true
	}

	// not parallel: intersect the infinite lines and check that the
	// intersection lies on both segments
	ta := offset.PerpDot(db) / daXdb
	tb := offsetXda / daXdb
	if 0.0 <= ta && ta <= 1.0 && 0.0 <= tb && tb <= 1.0 {
		p := a0.Add(da.Mul(ta))
		return p, p, true
	}
	return Point{}, Point{}, false
}

type nodePair struct {
	a, b Node
}

// SelfIntersectionScanner lazily enumerates candidate pairs of segments of
// one tree whose envelopes intersect. Adjacent segments always show up as
// candidates since they share an endpoint; consumers must treat those (and
// the first/last pair of a closed ring) as expected. Abandoning a scanner
// mid-drain is safe; re-creating it restarts the traversal.
type SelfIntersectionScanner struct {
	t     *SegRTree
	stack []nodePair
	i, j  int
}

// SelfIntersections returns a scanner over all candidate self-intersecting
// segment pairs (i, j) with i < j.
func (t *SegRTree) SelfIntersections() *SelfIntersectionScanner {
	s := &SelfIntersectionScanner{t: t}
	if !t.IsEmpty() {
		s.stack = append(s.stack, nodePair{t.Root(), t.Root()})
	}
	return s
}

// Scan advances to the next candidate pair and returns true if one exists.
func (s *SelfIntersectionScanner) Scan() bool {
	t := s.t
	for len(s.stack) > 0 {
		pair := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if !t.EnvelopeAt(pair.a).Intersects(t.EnvelopeAt(pair.b)) {
			continue
		}
		if pair.a.Level == 0 && pair.b.Level == 0 {
			if pair.a.Offset < pair.b.Offset {
				s.i, s.j = pair.a.Offset, pair.b.Offset
				return true
			}
			continue
		}
		if pair.a == pair.b {
			// symmetric case: skip child pairs below the diagonal, they
			// mirror pairs above it
			first := t.degree * pair.a.Offset
			for i := first; i < first+t.degree; i++ {
				for j := i; j < first+t.degree; j++ {
					s.stack = append(s.stack, nodePair{Node{pair.a.Level - 1, i}, Node{pair.b.Level - 1, j}})
				}
			}
		} else if pair.a.Level >= pair.b.Level {
			first := t.degree * pair.a.Offset
			for i := first; i < first+t.degree; i++ {
				s.stack = append(s.stack, nodePair{Node{pair.a.Level - 1, i}, pair.b})
			}
		} else {
			first := t.degree * pair.b.Offset
			for j := first; j < first+t.degree; j++ {
				s.stack = append(s.stack, nodePair{pair.a, Node{pair.b.Level - 1, j}})
			}
		}
	}
	return false
}

// Pair returns the current candidate pair, with i < j.
func (s *SelfIntersectionScanner) Pair() (int, int) {
	return s.i, s.j
}

// SelfIntersectionPairs drains a SelfIntersections scanner into a slice.
func (t *SegRTree) SelfIntersectionPairs() [][2]int {
	var pairs [][2]int
	s := t.SelfIntersections()
	for s.Scan() {
		i, j := s.Pair()
		pairs = append(pairs, [2]int{i, j})
	}
	return pairs
}

// IntersectionScanner lazily enumerates pairs of segments of two distinct
// trees whose envelopes intersect.
type IntersectionScanner struct {
	t, o  *SegRTree
	stack []nodePair
	i, j  int
}

// Intersections returns a scanner over all candidate intersecting segment
// pairs (i, j) with segment i of t and segment j of o. The traversal expands
// whichever node is coarser, keeping the two trees' granularity matched.
func (t *SegRTree) Intersections(o *SegRTree) *IntersectionScanner {
	s := &IntersectionScanner{t: t, o: o}
	if !t.IsEmpty() && !o.IsEmpty() {
		s.stack = append(s.stack, nodePair{t.Root(), o.Root()})
	}
	return s
}

// Scan advances to the next candidate pair and returns true if one exists.
func (s *IntersectionScanner) Scan() bool {
	for len(s.stack) > 0 {
		pair := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if !s.t.EnvelopeAt(pair.a).Intersects(s.o.EnvelopeAt(pair.b)) {
			continue
		}
		if pair.a.Level == 0 && pair.b.Level == 0 {
			s.i, s.j = pair.a.Offset, pair.b.Offset
			return true
		}
		if pair.a.Level >= pair.b.Level {
			first := s.t.degree * pair.a.Offset
			for i := first; i < first+s.t.degree; i++ {
				s.stack = append(s.stack, nodePair{Node{pair.a.Level - 1, i}, pair.b})
			}
		} else {
			first := s.o.degree * pair.b.Offset
			for j := first; j < first+s.o.degree; j++ {
				s.stack = append(s.stack, nodePair{pair.a, Node{pair.b.Level - 1, j}})
			}
		}
	}
	return false
}

// Pair returns the current candidate pair.
func (s *IntersectionScanner) Pair() (int, int) {
	return s.i, s.j
}

// IntersectionPairs drains an Intersections scanner into a slice.
func (t *SegRTree) IntersectionPairs(o *SegRTree) [][2]int {
	var pairs [][2]int
	s := t.Intersections(o)
	for s.Scan() {
		i, j := s.Pair()
		pairs = append(pairs, [2]int{i, j})
	}
	return pairs
}
