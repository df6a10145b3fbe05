package label

import (
	"container/heap"
	"sort"

	"github.com/iszczesniak/gdrsa/rsagraph"
)

// Tentative is the per-vertex Pareto frontier of candidate labels, T
// in the generic Dijkstra driver, plus a global min-cost priority
// index over every vertex's front label.
type Tentative struct {
	byVertex [][]Label
	items    []*pqItem // per-vertex pointer into pq, nil when vertex has no tentative label
	pq       vertexPQ
}

// NewTentative allocates a Tentative store for a graph of n vertices.
func NewTentative(n int) *Tentative {
	return &Tentative{
		byVertex: make([][]Label, n),
		items:    make([]*pqItem, n),
	}
}

// Empty reports whether no vertex has a tentative label.
func (t *Tentative) Empty() bool { return t.pq.Len() == 0 }

// At returns the tentative labels for v, in ascending cost order.
func (t *Tentative) At(v rsagraph.Vertex) []Label {
	return t.byVertex[v]
}

// Push inserts l into T[target(l)], keeping the per-vertex sequence in
// the strict total order, and updates the global priority index when
// l becomes the new front for its vertex.
func (t *Tentative) Push(l Label) {
	v := l.Target
	labels := t.byVertex[v]
	idx := sort.Search(len(labels), func(i int) bool { return l.Less(labels[i]) })
	labels = append(labels, Label{})
	copy(labels[idx+1:], labels[idx:])
	labels[idx] = l
	t.byVertex[v] = labels

	if idx == 0 {
		t.setFront(v, l.Cost)
	}
}

// Pop extracts and returns the globally minimum-cost tentative label,
// updating both the owning vertex's sequence and the priority index.
func (t *Tentative) Pop() Label {
	it := heap.Pop(&t.pq).(*pqItem)
	v := it.vertex
	t.items[v] = nil

	labels := t.byVertex[v]
	l := labels[0]
	t.byVertex[v] = labels[1:]

	if len(t.byVertex[v]) > 0 {
		t.setFront(v, t.byVertex[v][0].Cost)
	}
	return l
}

// HasBetterOrEqual walks T[target(j)] in cost order and reports
// whether some member already dominates j.
func (t *Tentative) HasBetterOrEqual(j Label) bool {
	for _, l := range t.byVertex[j.Target] {
		if l.Cost > j.Cost {
			break
		}
		if l.LessOrEqual(j) {
			return true
		}
	}
	return false
}

// PurgeWorse walks T[target(j)] in descending cost order and erases
// every member k with j <= k, stopping as soon as a member's cost
// falls below j's (no such member can be dominated by j).
func (t *Tentative) PurgeWorse(j Label) {
	v := j.Target
	labels := t.byVertex[v]
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i].Cost < j.Cost {
			break
		}
		if j.LessOrEqual(labels[i]) {
			labels = append(labels[:i], labels[i+1:]...)
		}
	}
	t.byVertex[v] = labels

	switch {
	case len(labels) == 0:
		if it := t.items[v]; it != nil {
			heap.Remove(&t.pq, it.index)
			t.items[v] = nil
		}
	default:
		t.setFront(v, labels[0].Cost)
	}
}

// setFront updates (or creates) the priority-index entry for v to
// reflect its new front cost.
func (t *Tentative) setFront(v rsagraph.Vertex, cost float64) {
	if it := t.items[v]; it != nil {
		it.cost = cost
		heap.Fix(&t.pq, it.index)
		return
	}
	it := &pqItem{vertex: v, cost: cost}
	heap.Push(&t.pq, it)
	t.items[v] = it
}

// pqItem is one entry of the global (cost,vertex) priority index.
type pqItem struct {
	vertex rsagraph.Vertex
	cost   float64
	index  int
}

// vertexPQ is a container/heap min-heap over pqItem.cost.
type vertexPQ []*pqItem

func (q vertexPQ) Len() int { return len(q) }

func (q vertexPQ) Less(i, j int) bool { return q[i].cost < q[j].cost }

func (q vertexPQ) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *vertexPQ) Push(x any) {
	it := x.(*pqItem)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *vertexPQ) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
