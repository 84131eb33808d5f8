// Package graph implements best-first search over implicit weighted
// graphs. Nodes are never materialized up front; the caller's Neighbors
// function expands them on demand.
package graph

import (
	"container/heap"
	"errors"
	"iter"
)

var ErrNoPath = errors.New("no path to target")

// Edge is one outgoing connection with a non-negative weight.
type Edge[N comparable] struct {
	To     N
	Weight int64
}

// Graph supplies the outgoing edges of a node.
type Graph[N comparable] interface {
	Neighbors(n N) []Edge[N]
}

// Estimator optionally supplies an admissible lower bound on the
// remaining distance between two nodes. Returning 0 degrades the
// search to plain Dijkstra; ok=false marks the node as unreachable
// and prunes it from the search.
type Estimator[N comparable] interface {
	Estimate(from, to N) (int64, bool)
}

// Info describes a finalized node.
type Info[N comparable] struct {
	// Dist is the accumulated distance from the start node.
	Dist int64
	// Prev is the node this one was reached from; HasPrev is false
	// only for the start node.
	Prev    N
	HasPrev bool
}

type frontierItem[N comparable] struct {
	node     N
	dist     int64
	estimate int64
	prev     N
	hasPrev  bool
	seq      int
}

type frontier[N comparable] []*frontierItem[N]

func (f frontier[N]) Len() int { return len(f) }

func (f frontier[N]) Less(i, j int) bool {
	a, b := f[i].dist+f[i].estimate, f[j].dist+f[j].estimate
	if a != b {
		return a < b
	}
	// Equal priorities pop in insertion order.
	return f[i].seq < f[j].seq
}

func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[N]) Push(x any) { *f = append(*f, x.(*frontierItem[N])) }

func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// Search yields reachable nodes in non-decreasing order of distance
// from start. Each node is yielded exactly once, with its final
// distance; the caller stops pulling once a satisfying node is found.
// estimate may be nil (plain Dijkstra). Edge weights must be
// non-negative.
func Search[N comparable](g Graph[N], start N, estimate func(N) (int64, bool)) iter.Seq2[N, Info[N]] {
	return func(yield func(N, Info[N]) bool) {
		var f frontier[N]
		seq := 0
		push := func(it *frontierItem[N]) {
			it.seq = seq
			seq++
			heap.Push(&f, it)
		}

		if estimate != nil {
			est, ok := estimate(start)
			if !ok {
				return
			}
			push(&frontierItem[N]{node: start, estimate: est})
		} else {
			push(&frontierItem[N]{node: start})
		}

		finalized := make(map[N]struct{})
		for f.Len() > 0 {
			it := heap.Pop(&f).(*frontierItem[N])
			if _, done := finalized[it.node]; done {
				// A cheaper route already finalized this node.
				continue
			}
			finalized[it.node] = struct{}{}

			if !yield(it.node, Info[N]{Dist: it.dist, Prev: it.prev, HasPrev: it.hasPrev}) {
				return
			}

			for _, e := range g.Neighbors(it.node) {
				if _, done := finalized[e.To]; done {
					continue
				}
				next := &frontierItem[N]{
					node:    e.To,
					dist:    it.dist + e.Weight,
					prev:    it.node,
					hasPrev: true,
				}
				if estimate != nil {
					est, ok := estimate(e.To)
					if !ok {
						continue
					}
					next.estimate = est
				}
				push(next)
			}
		}
	}
}

// ShortestPath runs Search from start until goal is finalized and
// reconstructs the path, goal included and start excluded, along with
// the total cost. When g implements Estimator the search runs as A*.
// Returns ErrNoPath if the goal is unreachable.
func ShortestPath[N comparable](g Graph[N], start, goal N) ([]N, int64, error) {
	var estimate func(N) (int64, bool)
	if est, ok := g.(Estimator[N]); ok {
		estimate = func(n N) (int64, bool) { return est.Estimate(n, goal) }
	}

	prev := make(map[N]Info[N])
	for node, info := range Search(g, start, estimate) {
		prev[node] = info
		if node == goal {
			var path []N
			for cur := goal; ; {
				info := prev[cur]
				path = append(path, cur)
				if !info.HasPrev {
					break
				}
				cur = info.Prev
			}
			// Drop the start node and reverse.
			path = path[:len(path)-1]
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, prev[goal].Dist, nil
		}
	}
	return nil, 0, ErrNoPath
}
