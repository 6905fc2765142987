package segrtree

import "github.com/google/btree"

// SegmentUnion merges integer index ranges as they are added. It keeps an
// ordered set of range boundaries where Add toggles membership of each
// boundary: a boundary shared by two touching ranges is added twice and
// cancels, so the set always has even cardinality and reads, in order, as
// the boundary pairs of the maximal merged ranges. Adding (3,8), (9,11) and
// (8,9) leaves {3,11}, a single merged range.
type SegmentUnion struct {
	set *btree.BTreeG[int]
}

// NewSegmentUnion returns an empty SegmentUnion.
func NewSegmentUnion() *SegmentUnion {
	return &SegmentUnion{set: btree.NewOrderedG[int](8)}
}

// Add merges the range [low,high] into the union.
func (u *SegmentUnion) Add(low, high int) {
	u.toggle(low)
	u.toggle(high)
}

func (u *SegmentUnion) toggle(boundary int) {
	if u.set.Has(boundary) {
		u.set.Delete(boundary)
	} else {
		u.set.ReplaceOrInsert(boundary)
	}
}

// Peek returns the smallest boundary present, or false if the union is empty.
func (u *SegmentUnion) Peek() (int, bool) {
	return u.set.Min()
}

// Pop removes and returns the lowest merged range. It panics when fewer than
// two boundaries are present: that indicates a bug in the caller's drain
// loop, not a data problem.
func (u *SegmentUnion) Pop() (int, int) {
	low, okLow := u.set.DeleteMin()
	high, okHigh := u.set.DeleteMin()
	if !okLow || !okHigh {
		panic("segrtree: Pop on SegmentUnion with fewer than two boundaries")
	}
	return low, high
}

// IsEmpty returns true if no ranges are present.
func (u *SegmentUnion) IsEmpty() bool {
	return u.set.Len() == 0
}

// Len returns the number of boundaries present, twice the number of merged
// ranges.
func (u *SegmentUnion) Len() int {
	return u.set.Len()
}

// Ranges returns all merged ranges in ascending order without draining the
// union.
func (u *SegmentUnion) Ranges() [][2]int {
	ranges := make([][2]int, 0, u.set.Len()/2)
	low, haveLow := 0, false
	u.set.Ascend(func(boundary int) bool {
		if !haveLow {
			low, haveLow = boundary, true
		} else {
			ranges = append(ranges, [2]int{low, boundary})
			haveLow = false
		}
		return true
	})
	return ranges
}
