package search

import "snake-duel/game/types"

// node is a frontier entry. A position may be pushed more than once when a
// cheaper route to it is found; superseded entries are left in the heap.
type node struct {
	pos types.Point
	g   int // cost from start
	h   int // heuristic cost to goal
	f   int // g + h
	seq int // push order, final tie-break
}

// frontier implements heap.Interface as a min-heap on (f, h, seq).
type frontier []*node

func (fr frontier) Len() int { return len(fr) }

func (fr frontier) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}
	if fr[i].h != fr[j].h {
		return fr[i].h < fr[j].h
	}
	return fr[i].seq < fr[j].seq
}

func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

func (fr *frontier) Push(x any) {
	*fr = append(*fr, x.(*node))
}

func (fr *frontier) Pop() any {
	old := *fr
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*fr = old[:n-1]
	return item
}
