package segrtree

// RingLocation is the position of a point relative to a closed ring.
// Inside is the nonzero-winding interior test; OnBoundary is set when the
// point lies exactly on a ring segment. A boundary point may or may not
// count as Inside depending on which side of the half-open crossing
// convention it falls; use Contains for boundary-inclusive containment.
type RingLocation struct {
	Inside     bool
	OnBoundary bool
}

// windingNumber returns the contribution of the segment from start to end to
// the winding number of the ring around p: +1 for an upward crossing of the
// rightward ray from p, -1 for a downward crossing, 0 otherwise. The y test
// is half-open (start.y <= p.y < end.y upward, mirrored downward) so a
// vertex shared by two segments is counted on exactly one of them.
func windingNumber(p, start, end Point) int {
	// the two halves of the cross product (end-start) x (p-start)
	lx := (end.X - start.X) * (p.Y - start.Y)
	rx := (end.Y - start.Y) * (p.X - start.X)

	if start.Y <= p.Y {
		if end.Y > p.Y && lx > rx { // upward crossing right of p
			return 1
		}
	} else {
		if end.Y <= p.Y && lx < rx { // downward crossing right of p
			return -1
		}
	}
	return 0
}

// ringLocation runs the pruned winding-number traversal over a tree built on
// ring coordinates. A node that lies strictly right of p contributes the
// winding number of the single chord between its range endpoints: the
// sub-path is homotopic to its chord without crossing p, so their winding
// contributions are equal. Nodes above, below or strictly left of p cannot
// cross the rightward ray and are discarded.
func ringLocation(t *SegRTree, coords []Point, p Point) RingLocation {
	var loc RingLocation
	if t.IsEmpty() {
		return loc
	}

	wn := 0
	stack := []Node{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		env := t.EnvelopeAt(n)
		if env.XMin > p.X {
			low, high := t.Range(n)
			wn += windingNumber(p, coords[low], coords[high])
			continue
		}
		if !env.ContainsPoint(p) {
			continue
		}
		if n.Level == 0 {
			start, end := coords[n.Offset], coords[n.Offset+1]
			// the leaf envelope contains p, so collinearity means incidence
			if end.Sub(start).PerpDot(p.Sub(start)) == 0.0 {
				loc.OnBoundary = true
			}
			wn += windingNumber(p, start, end)
			continue
		}
		first := t.degree * n.Offset
		for offset := first; offset < first+t.degree; offset++ {
			stack = append(stack, Node{n.Level - 1, offset})
		}
	}

	loc.Inside = wn != 0
	return loc
}
