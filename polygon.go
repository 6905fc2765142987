package segrtree

// Polygon is a shell ring with zero or more hole rings. Construction
// validates the polygon-level rules on the assumption that each ring is
// itself valid: every hole lies inside the shell, rings touch pairwise in at
// most one point, holes do not nest, and the ring-touch graph is acyclic so
// the interior stays connected.
type Polygon struct {
	shell *Ring
	holes []*Ring
}

// NewPolygon builds a Polygon from validated rings, checking the
// polygon-level validity rules.
func NewPolygon(shell *Ring, holes []*Ring) (*Polygon, error) {
	if err := validatePolygon(shell, holes); err != nil {
		return nil, err
	}
	return &Polygon{shell: shell, holes: holes}, nil
}

// Shell returns the outer ring.
func (p *Polygon) Shell() *Ring {
	return p.shell
}

// Holes returns the hole rings.
func (p *Polygon) Holes() []*Ring {
	return p.holes
}

// Envelope returns the envelope of the shell.
func (p *Polygon) Envelope() Envelope {
	return p.shell.Envelope()
}

// Contains returns true if pt lies in the polygon: inside the shell (or on
// its boundary) and not strictly inside any hole. Hole boundaries belong to
// the polygon.
func (p *Polygon) Contains(pt Point) bool {
	if !p.shell.Contains(pt) {
		return false
	}
	for _, hole := range p.holes {
		loc := hole.Locate(pt)
		if loc.Inside && !loc.OnBoundary {
			return false
		}
	}
	return true
}

// validatePolygon applies the polygon-level rules. Ring indices in the touch
// graph are 0 for the shell and i+1 for hole i.
func validatePolygon(shell *Ring, holes []*Ring) error {
	touches := map[[2]int]bool{}
	for i, hole := range holes {
		// a hole whose envelope equals or escapes the shell envelope cannot
		// lie in the interior
		if shell.Envelope().Equals(hole.Envelope()) || !shell.Envelope().Contains(hole.Envelope()) {
			return ErrHoleNotValid
		}

		isxn, touched, err := findIntersectingPoint(hole, shell)
		if err != nil {
			return err
		}
		if touched {
			touches[[2]int{0, i + 1}] = true
		}
		if !shell.Locate(findNonequalPoint(hole.coords, isxn, touched)).Inside {
			return ErrHoleNotValid
		}

		for j, other := range holes[:i] {
			if !hole.Envelope().Intersects(other.Envelope()) {
				continue
			}
			isxn, touched, err := findIntersectingPoint(hole, other)
			if err != nil {
				return err
			}
			if touched {
				touches[[2]int{i + 1, j + 1}] = true
			}
			// neither hole may lie in the other
			if other.Locate(findNonequalPoint(hole.coords, isxn, touched)).Inside {
				return ErrHoleNotValid
			}
			if hole.Locate(findNonequalPoint(other.coords, isxn, touched)).Inside {
				return ErrHoleNotValid
			}
		}
	}

	if hasCycle(touches) {
		return ErrInteriorDisconnected
	}
	return nil
}

// findIntersectingPoint finds the single point where two rings touch, if
// any. Several segment pairs meeting in the same point (a touch at a shared
// vertex) count as one touch; a second distinct point, or any overlap, makes
// the pair invalid.
func findIntersectingPoint(a, b *Ring) (Point, bool, error) {
	var isxn Point
	found := false
	s := a.tree.Intersections(b.tree)
	for s.Scan() {
		i, j := s.Pair()
		isxnStart, isxnEnd, ok := IntersectSegments(a.coords[i], a.coords[i+1], b.coords[j], b.coords[j+1])
		if !ok {
			continue
		}
		if isxnStart != isxnEnd {
			return Point{}, false, OverlappingSegmentsError{I: i, J: j, Start: isxnStart, End: isxnEnd}
		}
		if found && isxn != isxnStart {
			return Point{}, false, ErrMultipleIntersections
		}
		isxn, found = isxnStart, true
	}
	return isxn, found, nil
}

// findNonequalPoint returns a coordinate different from the needle. Rings
// have at least 3 distinct vertices, so this always finds one.
func findNonequalPoint(coords []Point, needle Point, haveNeedle bool) Point {
	for _, c := range coords {
		if !haveNeedle || c != needle {
			return c
		}
	}
	panic("segrtree: ring without a coordinate distinct from the touch point")
}

// hasCycle reports whether the undirected ring-touch graph contains a cycle.
// A cycle means a chain of touching rings encloses part of the interior,
// disconnecting it.
func hasCycle(touches map[[2]int]bool) bool {
	if len(touches) == 0 {
		return false
	}

	edges := map[int][]int{}
	for pair := range touches {
		edges[pair[0]] = append(edges[pair[0]], pair[1])
		edges[pair[1]] = append(edges[pair[1]], pair[0])
	}

	seen := map[int]bool{}
	type visit struct{ node, parent int }
	var stack []visit

	for base := range edges {
		if seen[base] {
			continue
		}
		stack = append(stack, visit{base, base})
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			seen[v.node] = true
			for _, next := range edges[v.node] {
				if !seen[next] {
					stack = append(stack, visit{next, v.node})
				} else if next != v.parent {
					return true
				}
			}
		}
	}
	return false
}
