// File: api.go
// Role: Thin public facade — construction-time introspection and
//       capacity getters. No admission logic lives here; flowrouter and
//       appalloc are the only callers of the mutating methods in
//       methods.go.
package network

import "sort"

// SetMeasurementProbability stores μ, the per-hop swap success
// probability. Fails with ErrInvalidArgument if mu is outside [0,1].
func (g *Graph) SetMeasurementProbability(mu float64) error {
	if mu < 0 || mu > 1 {
		return ErrInvalidArgument
	}
	g.muCfg.Lock()
	g.mu = mu
	g.muCfg.Unlock()

	return nil
}

// MeasurementProbability returns the current μ (default 1).
func (g *Graph) MeasurementProbability() float64 {
	g.muCfg.RLock()
	defer g.muCfg.RUnlock()

	return g.mu
}

// NumNodes returns the number of node indices instantiated at
// construction, including isolated nodes.
func (g *Graph) NumNodes() int {
	return g.numNodes
}

// NumEdges returns the number of edges currently present in the graph
// (excluding any logically removed from a working copy via RemoveEdge).
func (g *Graph) NumEdges() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	n := 0
	for _, e := range g.edges {
		if !e.removed {
			n++
		}
	}

	return n
}

// TotalCapacity returns the sum of all surviving edges' capacities.
func (g *Graph) TotalCapacity() float64 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var total float64
	for _, e := range g.edges {
		if !e.removed {
			total += e.capacity
		}
	}

	return total
}

// DegreeRange is a (min, max) pair returned by InDegreeRange/OutDegreeRange.
type DegreeRange struct {
	Min, Max int
}

// OutDegreeRange returns the (min, max) out-degree over all nodes,
// counting only surviving edges.
func (g *Graph) OutDegreeRange() DegreeRange {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return degreeRange(g.outDegreesLocked())
}

// InDegreeRange returns the (min, max) in-degree over all nodes,
// counting only surviving edges.
func (g *Graph) InDegreeRange() DegreeRange {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	in := make([]int, g.numNodes)
	for _, e := range g.edges {
		if !e.removed {
			in[e.to]++
		}
	}

	return degreeRange(in)
}

// outDegreesLocked assumes muEdges is already held.
func (g *Graph) outDegreesLocked() []int {
	out := make([]int, g.numNodes)
	for _, e := range g.edges {
		if !e.removed {
			out[e.from]++
		}
	}

	return out
}

func degreeRange(deg []int) DegreeRange {
	if len(deg) == 0 {
		return DegreeRange{}
	}
	r := DegreeRange{Min: deg[0], Max: deg[0]}
	for _, d := range deg[1:] {
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}

	return r
}

// Weights returns the current (u, v, capacity) triples in stable,
// insertion-order (surviving edges only). Reconstructing a graph from
// this output via NewFromWeightedEdges reproduces identical Weights()
// output.
func (g *Graph) Weights() []WeightedEdge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]WeightedEdge, 0, len(g.edges))
	for _, e := range g.edges {
		if !e.removed {
			out = append(out, WeightedEdge{U: e.from, V: e.to, Capacity: e.capacity})
		}
	}

	return out
}

// sortedNodeIDs is a small helper used by ToDot for deterministic output.
func (g *Graph) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, g.numNodes)
	for i := range ids {
		ids[i] = NodeID(i)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
