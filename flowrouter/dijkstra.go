// File: dijkstra.go
// Role: Hop-count-minimizing shortest path over a *network.Graph,
//       adapted from lvlath/dijkstra's lazy-decrease-key min-heap to
//       integer NodeIDs and unit edge cost. Edges already logically
//       removed (RemoveEdge) never appear via Graph.Neighbors, so the
//       bottleneck-pruning working copy "just works" without any
//       dedicated mask-checking here.
package flowrouter

import (
	"container/heap"
	"math"

	"github.com/qlatnet/qcapnet/network"
)

// shortestHopPath runs Dijkstra with unit edge cost from src, returning
// the path to dst (excluding src, including dst) and true if reachable.
func shortestHopPath(g *network.Graph, src, dst network.NodeID) ([]network.NodeID, bool) {
	// 1) Initialize distance/predecessor/visited arrays: every node
	// starts at infinity and unvisited except src.
	n := g.NumNodes()
	dist := make([]int, n)
	prev := make([]network.NodeID, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.MaxInt32
		prev[i] = -1
	}
	dist[src] = 0

	// 2) Seed the lazy-decrease-key heap with src at distance 0.
	pq := &nodeHeap{{id: src, dist: 0}}
	heap.Init(pq)

	// 3) Pop the closest unvisited node, skipping stale heap entries
	// left behind by relaxations that found a shorter distance later.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		// 4) Stop as soon as dst itself is settled: its distance and
		// predecessor are final and nothing further can improve them.
		if u == dst {
			break
		}

		// 5) Relax every outgoing edge of u. Logically removed edges
		// never appear here, since Neighbors already filters them.
		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, idx := range neighbors {
			_, v, err := g.Endpoints(idx)
			if err != nil {
				continue
			}
			newDist := dist[u] + 1
			if newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(pq, nodeItem{id: v, dist: newDist})
			}
		}
	}

	// 6) dst never settled: unreachable in this graph.
	if dist[dst] == math.MaxInt32 {
		return nil, false
	}

	// 7) Reconstruct the path by walking predecessors back to src,
	// then reverse it into src-to-dst order (excluding src itself).
	path := make([]network.NodeID, 0, dist[dst]+1)
	for v := dst; v != src; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

type nodeItem struct {
	id   network.NodeID
	dist int
}

// nodeHeap is a min-heap of nodeItem ordered by dist ascending, using
// the same lazy-decrease-key strategy as lvlath/dijkstra.nodePQ: stale
// entries are pushed rather than updated in place, and skipped on pop
// via the visited set.
type nodeHeap []nodeItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
