package segrtree

// indexRange is a [low,high] coordinate index range.
type indexRange struct {
	low, high int
}

// rangeHeap is a min-heap of index ranges ordered by their low index. It is
// query-local scratch state for the clipper and needs no synchronization.
type rangeHeap struct {
	items []indexRange
}

func (q *rangeHeap) Len() int {
	return len(q.items)
}

func (q *rangeHeap) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *rangeHeap) Push(r indexRange) {
	q.items = append(q.items, r)
	q.up(len(q.items) - 1)
}

func (q *rangeHeap) Top() indexRange {
	return q.items[0]
}

func (q *rangeHeap) Pop() indexRange {
	n := len(q.items) - 1
	q.items[0], q.items[n] = q.items[n], q.items[0]
	q.down(0, n)

	item := q.items[n]
	q.items = q.items[:n]
	return item
}

func (q *rangeHeap) less(i, j int) bool {
	return q.items[i].low < q.items[j].low
}

// from container/heap
func (q *rangeHeap) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		j = i
	}
}

func (q *rangeHeap) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}
}
