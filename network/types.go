// File: types.go
// Role: Core types — NodeID, edge arena, Graph — and the two public
//       constructors (Constructor A: random/shared weight source;
//       Constructor B: explicit weighted triples).
package network

import (
	"fmt"
	"sync"
)

// NodeID identifies a vertex by a dense, non-negative integer index.
// Node identifiers used by clients correspond one-to-one with internal
// vertex handles; there is no separate "vertex object".
type NodeID int

// Pair is an unweighted directed (or to-be-bidirectionalized) node pair,
// the input shape for NewFromEdgeList.
type Pair struct {
	U, V NodeID
}

// WeightedEdge is an explicit (u, v, capacity) triple, the input shape
// for NewFromWeightedEdges and the output shape of Weights.
type WeightedEdge struct {
	U, V     NodeID
	Capacity float64
}

// WeightSource produces a single nonnegative real each time it is
// consulted. It is the only externally variable input to graph
// construction and is modeled as a one-method capability rather than an
// inheritance hierarchy, per the design notes.
//
// Its shape — Rand() float64 — is deliberately the same as
// gonum.org/v1/gonum/stat/distuv's Rander interface, so any distuv
// distribution (distuv.Poisson, distuv.Binomial, distuv.Pareto, ...)
// is a WeightSource with no adapter code. A Poisson arrival process is
// the natural model for EPR-pair generation rate, which is why
// ConstantSource/UniformSource below exist only as lightweight
// alternatives for tests and gonum-free callers.
type WeightSource interface {
	Rand() float64
}

// edge is one arena slot. capacity is mutated in place by admission;
// removed marks a logical deletion used only by the ephemeral working
// copies the flow router clones per flow (see Clone).
type edge struct {
	from, to NodeID
	capacity float64
	removed  bool
}

// Graph is the Graph Core: a directed, capacity-weighted graph over
// dense integer node identifiers.
//
// muCfg guards mu (measurement probability); muEdges guards the edge
// arena and adjOut. The two locks are never held together, avoiding
// lock-ordering concerns, matching lvlath/core's Stats() pattern.
type Graph struct {
	muCfg sync.RWMutex
	mu    float64 // measurement probability, default 1

	muEdges sync.RWMutex
	edges   []edge
	adjOut  [][]int // adjOut[node] = indices into edges of node's outgoing edges

	numNodes int
}

// NewFromEdgeList is Constructor A. For each input pair (u, v) a
// directed edge u→v is created with weight drawn once from ws. If
// bidirectional, a second edge v→u is added sharing that same draw
// (ws.Rand is called exactly len(pairs) times, never 2*len(pairs)).
//
// Node identifiers need not be contiguous; any identifier up to the
// observed maximum is instantiated as an isolated node if it never
// appears as an edge endpoint.
func NewFromEdgeList(pairs []Pair, ws WeightSource, bidirectional bool) (*Graph, error) {
	if ws == nil {
		return nil, fmt.Errorf("%w: weight source is nil", ErrInvalidArgument)
	}

	g := &Graph{mu: 1}
	maxID := -1
	for _, p := range pairs {
		if p.U < 0 || p.V < 0 {
			return nil, fmt.Errorf("%w: negative node id in edge (%d,%d)", ErrInvalidArgument, p.U, p.V)
		}
		if int(p.U) > maxID {
			maxID = int(p.U)
		}
		if int(p.V) > maxID {
			maxID = int(p.V)
		}
	}
	g.growTo(maxID + 1)

	for _, p := range pairs {
		w := ws.Rand()
		if w < 0 {
			return nil, fmt.Errorf("%w: weight source produced negative capacity %g", ErrInvalidArgument, w)
		}
		g.appendEdge(p.U, p.V, w)
		if bidirectional {
			g.appendEdge(p.V, p.U, w)
		}
	}

	return g, nil
}

// NewFromWeightedEdges is Constructor B: each (u, v, w) triple becomes a
// single directed edge with weight w. w must be >= 0.
func NewFromWeightedEdges(edges []WeightedEdge) (*Graph, error) {
	g := &Graph{mu: 1}
	maxID := -1
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("%w: negative node id in edge (%d,%d)", ErrInvalidArgument, e.U, e.V)
		}
		if e.Capacity < 0 {
			return nil, fmt.Errorf("%w: negative capacity %g on edge (%d,%d)", ErrInvalidArgument, e.Capacity, e.U, e.V)
		}
		if int(e.U) > maxID {
			maxID = int(e.U)
		}
		if int(e.V) > maxID {
			maxID = int(e.V)
		}
	}
	g.growTo(maxID + 1)

	for _, e := range edges {
		g.appendEdge(e.U, e.V, e.Capacity)
	}

	return g, nil
}

// growTo ensures the graph has at least n nodes (0..n-1), instantiating
// any newly-seen identifiers as isolated nodes.
func (g *Graph) growTo(n int) {
	for len(g.adjOut) < n {
		g.adjOut = append(g.adjOut, nil)
	}
	if n > g.numNodes {
		g.numNodes = n
	}
}

// appendEdge pushes a new arena slot and links it into adjOut[from].
func (g *Graph) appendEdge(from, to NodeID, capacity float64) int {
	idx := len(g.edges)
	g.edges = append(g.edges, edge{from: from, to: to, capacity: capacity})
	g.adjOut[from] = append(g.adjOut[from], idx)

	return idx
}
