package pathfinding

// frontierItem is a pending node together with the distance it had when it
// was pushed. Later improvements push a fresh item; the older one becomes
// stale and is dropped by the visited check in Solve.
type frontierItem struct {
	node string
	dist float64
	seq  uint64
}

// frontier is a min-heap of frontierItem ordered by distance, then by push
// order so that equal distances pop in the order they were discovered.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
