package search

// entry is one heap element of UCS/AStar.
//
// cost is the accumulated path cost (g); priority is what the heap orders by
// (g for UCS, g+h for AStar); seq is a monotonically increasing push counter
// that breaks priority ties in insertion order.
type entry struct {
	label    string
	cost     int64
	priority float64
	seq      uint64
}

// frontier is a min-heap of *entry ordered by (priority, seq).
// It is used with the lazy-decrease-key pattern: a better route to a node
// pushes a new entry and the outdated one is discarded when popped.
type frontier []*entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
