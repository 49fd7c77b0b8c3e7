// Package search implements the best-first grid search shared by both snakes.
//
// A* and Dijkstra run through the same FindPath code and differ only in the
// heuristic of their CostPolicy, so node counts and timings compare the
// algorithms rather than two implementations.
package search

import (
	"container/heap"
	"time"

	"snake-duel/game/types"

	"golang.org/x/exp/slices"
)

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal types.Point) int

// CostPolicy names a search algorithm by its heuristic.
type CostPolicy struct {
	Name      string
	Heuristic Heuristic
}

var (
	// AStar guides the search with the Manhattan distance, which is exact on an open grid.
	AStar = CostPolicy{Name: "A*", Heuristic: types.Manhattan}
	// Dijkstra expands purely by accumulated cost.
	Dijkstra = CostPolicy{Name: "Dijkstra", Heuristic: func(types.Point, types.Point) int { return 0 }}
)

// Result is the outcome of one FindPath call.
type Result struct {
	Path          []types.Point // excludes start, ends at goal; empty when unreachable
	NodesExplored int           // frontier pops, stale entries included
	Elapsed       time.Duration
}

// Found reports whether a path was returned.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Millis returns the elapsed search time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// FindPath searches grid from start to goal with uniform edge cost.
//
// Every pop counts as an explored node. Superseded frontier entries are not
// removed: a stale pop re-closes an already closed position and its best g is
// unchanged, so expanding it pushes nothing new. Stale pops still count
// toward NodesExplored.
func FindPath(grid types.Grid, start, goal types.Point, policy CostPolicy) Result {
	started := time.Now()

	open := &frontier{}
	gScore := map[types.Point]int{start: 0}
	cameFrom := make(map[types.Point]types.Point)
	closed := make(map[types.Point]struct{})

	seq := 0
	push := func(p types.Point, g int) {
		h := policy.Heuristic(p, goal)
		heap.Push(open, &node{pos: p, g: g, h: h, f: g + h, seq: seq})
		seq++
	}
	push(start, 0)

	explored := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		explored++

		if current.pos == goal {
			return Result{
				Path:          reconstruct(cameFrom, start, goal),
				NodesExplored: explored,
				Elapsed:       time.Since(started),
			}
		}

		closed[current.pos] = struct{}{}

		for _, next := range grid.Neighbors(current.pos) {
			if _, done := closed[next]; done {
				continue
			}

			tentative := gScore[current.pos] + 1
			if best, seen := gScore[next]; !seen || tentative < best {
				cameFrom[next] = current.pos
				gScore[next] = tentative
				push(next, tentative)
			}
		}
	}

	return Result{
		Path:          []types.Point{},
		NodesExplored: explored,
		Elapsed:       time.Since(started),
	}
}

func reconstruct(cameFrom map[types.Point]types.Point, start, goal types.Point) []types.Point {
	path := make([]types.Point, 0)
	for at := goal; at != start; at = cameFrom[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}
