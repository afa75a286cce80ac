// File: router.go
// Role: Route — the capacity-aware path search and admission loop,
//       spec §4.2.
package flowrouter

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/qlatnet/qcapnet/network"
)

// Route admits flows onto g in input order, mutating each *Flow in
// place with its chosen path, gross rate, and Dijkstra invocation
// count. The entire batch is pre-validated before any mutation: if any
// flow has src==dst, an unknown node id, or a non-positive net rate,
// Route returns ErrInvalidFlow and leaves g untouched.
//
// Each flow that passes pre-validation transitions independently
// through {Searching, Admitted, Rejected}: Searching→Admitted on a
// successful commit, Searching→Rejected if the destination is
// unreachable, if μ=0 forces an infeasible multi-hop flow, if every
// retry is exhausted without finding sufficient residual capacity, or
// if the batch's CheckFn vetoes an otherwise-feasible candidate.
// Admission for one flow either commits every capacity deduction along
// its path or makes none; a rejected flow never partially reserves
// capacity.
func Route(g *network.Graph, flows []*Flow, opts ...Option) (Summary, error) {
	cfg := resolveOptions(opts)
	summary := Summary{BatchID: uuid.New()}

	if err := validateBatch(g, flows); err != nil {
		return summary, err
	}

	for _, f := range flows {
		if admitOne(g, f, cfg) {
			summary.Admitted++
			cfg.recorder.FlowAdmitted(len(f.Path))
		} else {
			summary.Rejected++
			cfg.recorder.FlowRejected()
		}
	}

	return summary, nil
}

func validateBatch(g *network.Graph, flows []*Flow) error {
	for _, f := range flows {
		if f.Src == f.Dst {
			return fmt.Errorf("%w: src==dst (%d)", ErrInvalidFlow, f.Src)
		}
		if !g.HasNode(f.Src) {
			return fmt.Errorf("%w: unknown src node %d", ErrInvalidFlow, f.Src)
		}
		if !g.HasNode(f.Dst) {
			return fmt.Errorf("%w: unknown dst node %d", ErrInvalidFlow, f.Dst)
		}
		if f.NetRate <= 0 {
			return fmt.Errorf("%w: non-positive net rate %g", ErrInvalidFlow, f.NetRate)
		}
	}

	return nil
}

// admitOne runs the search/verify/reserve loop for a single flow and
// reports whether it was admitted. The three rejection modes
// (unreachable, infeasible, check_fn veto) are recovered locally here
// via errors.Is, per spec §7 — none of them is ever returned from
// Route. Any other error out of tryAdmit indicates a programming bug
// in the search itself, not a legitimate rejection, and is not
// recoverable at this layer.
func admitOne(g *network.Graph, f *Flow, cfg options) bool {
	err := tryAdmit(g, f, cfg)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errUnreachable), errors.Is(err, errInfeasible), errors.Is(err, errCheckVetoed):
		return false
	default:
		panic(fmt.Sprintf("flowrouter: admitOne: unexpected error: %v", err))
	}
}

// tryAdmit implements the numbered algorithm documented on the package
// (see doc.go's "Algorithm (admitOne, per flow)"): it either commits a
// path's capacity to f and returns nil, or returns one of
// errUnreachable, errInfeasible, errCheckVetoed.
func tryAdmit(g *network.Graph, f *Flow, cfg options) error {
	// 1) Clone the graph into an ephemeral working copy owned only by
	// this flow's search; bottleneck pruning mutates it freely.
	working := g.Clone()
	maxIters := g.NumEdges() + 1
	mu := g.MeasurementProbability()

	for iter := 0; iter <= maxIters; iter++ {
		// 2) Run hop-count Dijkstra on the working copy.
		path, ok := shortestHopPath(working, f.Src, f.Dst)
		f.DijkstraCount++
		// 3) No path at all: unreachable, regardless of capacity.
		if !ok {
			return errUnreachable
		}

		// 4) Compute gross = net_rate / μ^(h-1). μ=0 with h>1 means
		// total swap loss on every intermediate hop, so no finite
		// gross rate can deliver the flow; reject immediately rather
		// than looping toward an unreachable infinite gross rate.
		h := len(path)
		if mu == 0 && h > 1 {
			return errInfeasible
		}
		gross := f.NetRate
		if h > 1 {
			gross = f.NetRate / math.Pow(mu, float64(h-1))
		}

		// 5) Check residual capacity along the candidate path on the
		// original graph, not the working copy: the working copy only
		// tracks which edges are still in play, never real capacity.
		edgeIdxs, feasible := feasiblePath(g, f.Src, path, gross)
		if feasible {
			// 6) Feasible: give CheckFn a chance to veto before
			// committing. A veto leaves g untouched.
			if !cfg.check(&Flow{Src: f.Src, Dst: f.Dst, NetRate: f.NetRate, Path: path, GrossRate: gross}) {
				return errCheckVetoed
			}
			for _, idx := range edgeIdxs {
				_ = g.ReduceCapacity(idx, gross)
			}
			f.Path = path
			f.GrossRate = gross

			return nil
		}

		// 7) Infeasible: remove the working copy's bottleneck edge
		// (first occurrence among ties) and retry from step 2. This
		// terminates in at most |E|+1 iterations, since each retry
		// permanently removes one edge from the working copy.
		bottleneck, found := bottleneckEdge(working, f.Src, path)
		if !found {
			return errInfeasible
		}
		_ = working.RemoveEdge(bottleneck)
	}

	return errInfeasible
}

// feasiblePath checks, on the original (non-ephemeral) graph, whether
// every edge along path has residual capacity >= gross, returning the
// edge handles in path order when it does.
func feasiblePath(g *network.Graph, src network.NodeID, path []network.NodeID, gross float64) ([]int, bool) {
	idxs := make([]int, 0, len(path))
	prev := src
	for _, next := range path {
		idx, ok := g.FindEdge(prev, next)
		if !ok {
			return nil, false
		}
		cap, err := g.Capacity(idx)
		if err != nil || cap+epsilon < gross {
			return nil, false
		}
		idxs = append(idxs, idx)
		prev = next
	}

	return idxs, true
}

// bottleneckEdge returns the handle, within the working copy, of the
// smallest-capacity edge along path (ties broken by first occurrence).
func bottleneckEdge(working *network.Graph, src network.NodeID, path []network.NodeID) (int, bool) {
	prev := src
	best := -1
	bestCap := math.Inf(1)
	for _, next := range path {
		idx, ok := working.FindEdge(prev, next)
		if ok {
			if cap, err := working.Capacity(idx); err == nil && cap < bestCap {
				bestCap = cap
				best = idx
			}
		}
		prev = next
	}

	return best, best >= 0
}
