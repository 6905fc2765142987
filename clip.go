package segrtree

// Clip returns the parts of the LineString inside rect, as coordinate
// sequences in path order. Contiguous clipped pieces are merged into one
// sequence; pieces separated by a stretch outside rect become separate
// sequences. A closed loop clipped apart at its closure point is rejoined
// into one sequence. Clipping by a rectangle covering the whole envelope
// returns a single copy of the input; a disjoint rectangle returns nothing.
func (l *LineString) Clip(rect Envelope) [][]Point {
	c := clipper{rect: rect, coords: l.coords, tree: l.tree, lastIndex: -1}
	return c.clip()
}

// clipper is query-local state for a single Clip call.
type clipper struct {
	rect      Envelope
	coords    []Point
	tree      *SegRTree
	output    [][]Point
	lastIndex int // coordinate index that ended the open run, -1 if none
}

func (c *clipper) clip() [][]Point {
	contained, partial := c.findRelevantSegments()
	c.buildOutput(contained, partial)
	c.reconnectLoop()
	return c.output
}

// findRelevantSegments classifies the tree against the clip rectangle:
// contained subtrees are merged as whole index ranges, leaves that cross the
// rectangle boundary go on a min-heap for exact clipping, and disjoint
// subtrees are discarded.
func (c *clipper) findRelevantSegments() (*SegmentUnion, *rangeHeap) {
	contained := NewSegmentUnion()
	partial := &rangeHeap{}
	if c.tree.IsEmpty() {
		return contained, partial
	}

	stack := []Node{c.tree.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		env := c.tree.EnvelopeAt(n)
		if !c.rect.Intersects(env) {
			continue
		}
		low, high := c.tree.Range(n)
		if c.rect.Contains(env) {
			contained.Add(low, high)
		} else if n.Level == 0 {
			partial.Push(indexRange{low, high})
		} else {
			first := c.tree.degree * n.Offset
			for offset := first; offset < first+c.tree.degree; offset++ {
				stack = append(stack, Node{n.Level - 1, offset})
			}
		}
	}
	return contained, partial
}

// buildOutput drains the contained ranges and partial segments in ascending
// index order, stitching them into maximal output sequences.
func (c *clipper) buildOutput(contained *SegmentUnion, partial *rangeHeap) {
	var out []Point
	for !contained.IsEmpty() && !partial.IsEmpty() {
		low, _ := contained.Peek()
		if low < partial.Top().low {
			out = c.pushContained(contained, out)
		} else {
			out = c.pushPartial(partial, out)
		}
	}
	for !contained.IsEmpty() {
		out = c.pushContained(contained, out)
	}
	for !partial.IsEmpty() {
		out = c.pushPartial(partial, out)
	}
	c.flush(&out)
}

func (c *clipper) pushContained(contained *SegmentUnion, out []Point) []Point {
	low, high := contained.Pop()
	if low == c.lastIndex {
		low++ // continue the open run without repeating the shared vertex
	} else {
		c.flush(&out)
	}
	out = append(out, c.coords[low:high+1]...)
	c.lastIndex = high
	return out
}

func (c *clipper) pushPartial(partial *rangeHeap, out []Point) []Point {
	r := partial.Pop()
	segStart, segEnd := c.coords[r.low], c.coords[r.high]
	isxnStart, isxnEnd, ok := c.rect.ClipSegment(segStart, segEnd)
	if !ok {
		return out
	}
	if r.low != c.lastIndex {
		c.flush(&out)
		out = append(out, isxnStart)
	}
	if isxnEnd != isxnStart {
		out = append(out, isxnEnd)
	}
	if isxnEnd == segEnd {
		// the path continues inside the rectangle past this segment
		c.lastIndex = r.high
	}
	return out
}

// reconnectLoop joins the last output piece onto the first when a closed
// loop starts and ends inside the rectangle but was clipped apart there: the
// last piece then ends exactly on the first piece's start.
func (c *clipper) reconnectLoop() {
	n := len(c.output)
	if n < 2 {
		return
	}
	first, last := c.output[0], c.output[n-1]
	if first[0] != last[len(last)-1] {
		return
	}
	c.output[0] = append(last[:len(last)-1], first...)
	c.output = c.output[:n-1]
}

func (c *clipper) flush(out *[]Point) {
	if 0 < len(*out) {
		c.output = append(c.output, append([]Point(nil), *out...))
		*out = (*out)[:0]
	}
}
