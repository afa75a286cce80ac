// File: yen.go
// Role: k-loopless-shortest-paths-by-hop-count, cached once per
//       (host, peer) pair. Grounded on the spur-path/root-path
//       structure and candidate min-heap of the Yen's-algorithm
//       reference implementation in the retrieval pack
//       (router.FindKShortestPaths), adapted to network.NodeID and to
//       a hop-count Dijkstra mirroring flowrouter's.
package appalloc

import (
	"container/heap"
	"math"

	"github.com/qlatnet/qcapnet/network"
)

// kShortestPaths returns up to k loopless paths from src to dst,
// ordered by increasing hop count, as hop sequences excluding src and
// including dst. Returns an empty slice if dst is unreachable.
func kShortestPaths(g *network.Graph, src, dst network.NodeID, k int) [][]network.NodeID {
	first, ok := hopPathExcluding(g, src, dst, nil, nil)
	if !ok {
		return nil
	}

	A := [][]network.NodeID{first}
	B := &candidateHeap{}
	heap.Init(B)

	for len(A) < k {
		prevFull := append([]network.NodeID{src}, A[len(A)-1]...)

		for i := 0; i < len(prevFull)-1; i++ {
			spurNode := prevFull[i]
			rootPath := append([]network.NodeID(nil), prevFull[:i+1]...)

			excludedEdges := make(map[network.Pair]bool)
			for _, p := range A {
				pFull := append([]network.NodeID{src}, p...)
				if sharesPrefix(pFull, rootPath) && len(pFull) > i+1 {
					excludedEdges[network.Pair{U: pFull[i], V: pFull[i+1]}] = true
				}
			}

			excludedNodes := make(map[network.NodeID]bool)
			for j := 0; j < i; j++ {
				excludedNodes[prevFull[j]] = true
			}

			spur, ok := hopPathExcluding(g, spurNode, dst, excludedEdges, excludedNodes)
			if !ok {
				continue
			}

			total := append(append([]network.NodeID(nil), rootPath...), spur...)
			candidate := total[1:] // strip src, matching the hop-sequence convention

			if !containsHops(A, candidate) && !heapContainsHops(B, candidate) {
				heap.Push(B, &yenCandidate{hops: candidate})
			}
		}

		if B.Len() == 0 {
			break
		}
		best := heap.Pop(B).(*yenCandidate)
		A = append(A, best.hops)
	}

	return A
}

func sharesPrefix(path, prefix []network.NodeID) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}

	return true
}

func containsHops(paths [][]network.NodeID, candidate []network.NodeID) bool {
	for _, p := range paths {
		if hopsEqual(p, candidate) {
			return true
		}
	}

	return false
}

func heapContainsHops(h *candidateHeap, candidate []network.NodeID) bool {
	for _, c := range *h {
		if hopsEqual(c.hops, candidate) {
			return true
		}
	}

	return false
}

func hopsEqual(a, b []network.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

type yenCandidate struct {
	hops []network.NodeID
}

// candidateHeap is a min-heap of yenCandidate ordered by hop count.
type candidateHeap []*yenCandidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return len(h[i].hops) < len(h[j].hops) }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(*yenCandidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// hopPathExcluding is flowrouter's shortestHopPath generalized with
// edge and node exclusion sets, used both for the initial shortest
// path and every spur search.
func hopPathExcluding(g *network.Graph, src, dst network.NodeID, excludedEdges map[network.Pair]bool, excludedNodes map[network.NodeID]bool) ([]network.NodeID, bool) {
	if !g.HasNode(src) || !g.HasNode(dst) || excludedNodes[src] || excludedNodes[dst] {
		return nil, false
	}

	n := g.NumNodes()
	dist := make([]int, n)
	prev := make([]network.NodeID, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.MaxInt32
		prev[i] = -1
	}
	dist[src] = 0

	pq := &yenHeap{{id: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(yenNodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, idx := range neighbors {
			_, v, err := g.Endpoints(idx)
			if err != nil || excludedNodes[v] || excludedEdges[network.Pair{U: u, V: v}] {
				continue
			}
			newDist := dist[u] + 1
			if newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(pq, yenNodeItem{id: v, dist: newDist})
			}
		}
	}

	if dist[dst] == math.MaxInt32 {
		return nil, false
	}

	path := make([]network.NodeID, 0, dist[dst]+1)
	for v := dst; v != src; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

type yenNodeItem struct {
	id   network.NodeID
	dist int
}

type yenHeap []yenNodeItem

func (h yenHeap) Len() int            { return len(h) }
func (h yenHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h yenHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *yenHeap) Push(x interface{}) { *h = append(*h, x.(yenNodeItem)) }
func (h *yenHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
