package segrtree

import "fmt"

// DefaultDegree is the branching factor used when none is given.
const DefaultDegree = 16

// Node is a handle to a node of a SegRTree: its level above the leaves and
// its offset within that level. The root is (Height, 0) and leaves are at
// level 0.
type Node struct {
	Level, Offset int
}

// SegRTree is a packed RTree over the consecutive segments of a polyline.
// Because segment envelopes are stored in index order and never reordered,
// every node covers a contiguous range of coordinate indices, which Range
// derives from the node's position alone. The tree is laid out as a single
// flat envelope array, leaves first, with levelStart giving the offset of
// each level.
//
// A built tree is immutable and safe for concurrent queries.
type SegRTree struct {
	degree     int
	maxSize    int
	size       int
	height     int
	levelStart []int
	envs       []Envelope
}

// levelIndices returns the offset of each level in the flat envelope array
// for a tree over n items, padding each level to a multiple of degree.
func levelIndices(degree, n int) []int {
	indices := []int{0}
	level, levelSize := 0, n
	for levelSize > 1 {
		levelBuffer := 0
		if levelSize%degree > 0 {
			levelBuffer = 1
		}
		// least multiple of degree >= levelSize
		levelCapacity := degree * (levelSize/degree + levelBuffer)
		indices = append(indices, indices[level]+levelCapacity)
		level++
		levelSize = levelCapacity / degree
	}
	return indices
}

// EmptySegRTree returns a tree over zero segments.
func EmptySegRTree() *SegRTree {
	return &SegRTree{
		degree:     2,
		levelStart: []int{0},
		envs:       []Envelope{EmptyEnvelope()},
	}
}

// NewSegRTree bulk-loads a tree from segment envelopes in index order.
// Degrees below 2 are raised to 2. Construction is O(n): each level is the
// degree-wise union of the level below.
func NewSegRTree(degree int, envs []Envelope) *SegRTree {
	if len(envs) == 0 {
		return EmptySegRTree()
	}
	if degree < 2 {
		degree = 2
	}
	levelStart := levelIndices(degree, len(envs))
	tree := make([]Envelope, levelStart[len(levelStart)-1]+1)
	for i := range tree {
		tree[i] = EmptyEnvelope()
	}
	copy(tree, envs)

	for level := 1; level < len(levelStart); level++ {
		prev := tree[levelStart[level-1]:levelStart[level]]
		for i := 0; i < len(prev); i += degree {
			group := prev[i:min(i+degree, len(prev))]
			tree[levelStart[level]+i/degree] = EnvelopeOf(group...)
		}
	}

	return &SegRTree{
		degree:     degree,
		maxSize:    len(envs),
		size:       len(envs),
		height:     len(levelStart) - 1,
		levelStart: levelStart,
		envs:       tree,
	}
}

// NewIncrementalSegRTree returns an empty tree with capacity for maxSize
// segment envelopes, to be filled in index order with Add. It lets a caller
// query the partially built tree between Adds, which is how construction-time
// self-intersection checking works.
func NewIncrementalSegRTree(degree, maxSize int) *SegRTree {
	if degree < 2 {
		degree = 2
	}
	levelStart := levelIndices(degree, maxSize)
	tree := make([]Envelope, levelStart[len(levelStart)-1]+1)
	for i := range tree {
		tree[i] = EmptyEnvelope()
	}
	return &SegRTree{
		degree:     degree,
		maxSize:    maxSize,
		levelStart: levelStart,
		envs:       tree,
	}
}

// Add appends the envelope of the next segment and updates its ancestors.
// It returns an error when the tree is already at capacity.
func (t *SegRTree) Add(env Envelope) error {
	if t.size >= t.maxSize {
		return fmt.Errorf("segrtree: tree capacity %d exceeded", t.maxSize)
	}

	level, offset := 0, t.size
	for {
		i := t.levelStart[level] + offset
		env = env.Expand(t.envs[i])
		t.envs[i] = env
		if offset == 0 {
			break
		} else if offset == 1 {
			// the parent also covers the first child
			env = env.Expand(t.envs[i-1])
		}
		offset /= t.degree
		level++
	}

	t.height = level
	t.size++
	return nil
}

// Len returns the number of indexed segments.
func (t *SegRTree) Len() int {
	return t.size
}

// IsEmpty returns true if the tree indexes no segments.
func (t *SegRTree) IsEmpty() bool {
	return t.size == 0
}

// Height returns the level of the root.
func (t *SegRTree) Height() int {
	return t.height
}

// Degree returns the branching factor.
func (t *SegRTree) Degree() int {
	return t.degree
}

// Root returns the root node, which is also a leaf for a single-segment tree.
func (t *SegRTree) Root() Node {
	return Node{t.height, 0}
}

// IsLeaf returns true if n represents a single segment.
func (t *SegRTree) IsLeaf(n Node) bool {
	return n.Level == 0
}

// Envelope returns the envelope of the whole tree.
func (t *SegRTree) Envelope() Envelope {
	return t.EnvelopeAt(t.Root())
}

// EnvelopeAt returns the envelope of node n.
func (t *SegRTree) EnvelopeAt(n Node) Envelope {
	return t.envs[t.levelStart[n.Level]+n.Offset]
}

// Range returns the contiguous coordinate index range [low,high] covered by
// node n: segment i connects coordinate i to i+1, so a leaf at offset i
// covers [i,i+1] and the root covers [0,Len()].
func (t *SegRTree) Range(n Node) (int, int) {
	width := 1
	for i := 0; i < n.Level; i++ {
		width *= t.degree
	}
	return width * n.Offset, min(t.size, width*(n.Offset+1))
}

// Children returns the child nodes of n in index order, or nil for a leaf.
func (t *SegRTree) Children(n Node) []Node {
	if n.Level == 0 {
		return nil
	}
	children := make([]Node, 0, t.degree)
	first := t.degree * n.Offset
	for offset := first; offset < first+t.degree; offset++ {
		children = append(children, Node{n.Level - 1, offset})
	}
	return children
}

// Query returns the indices of all segments whose envelope intersects env,
// in no particular order.
func (t *SegRTree) Query(env Envelope) []int {
	return t.query(func(e Envelope) bool { return e.Intersects(env) })
}

// QueryPoint returns the indices of all segments whose envelope contains p,
// in no particular order.
func (t *SegRTree) QueryPoint(p Point) []int {
	return t.query(func(e Envelope) bool { return e.ContainsPoint(p) })
}

func (t *SegRTree) query(predicate func(Envelope) bool) []int {
	var results []int
	if t.IsEmpty() || !predicate(t.Envelope()) {
		return results
	}

	stack := []Node{t.Root()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Level == 0 {
			results = append(results, n.Offset)
			continue
		}
		first := t.degree * n.Offset
		for offset := first; offset < first+t.degree; offset++ {
			child := Node{n.Level - 1, offset}
			if predicate(t.EnvelopeAt(child)) {
				stack = append(stack, child)
			}
		}
	}
	return results
}
