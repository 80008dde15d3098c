package pathfind

// entry is a frontier item. seq breaks priority ties in insertion order, so the
// frontier has a total order even though nodes themselves are not ordered.
type entry[NodeType comparable] struct {
	priority float64
	seq      int
	node     NodeType
	gScore   int
}

type frontier[NodeType comparable] []*entry[NodeType]

func (f frontier[NodeType]) Len() int { return len(f) }
func (f frontier[NodeType]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier[NodeType]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[NodeType]) Push(x any) {
	*f = append(*f, x.(*entry[NodeType]))
}

func (f *frontier[NodeType]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
