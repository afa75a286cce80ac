// File: allocator.go
// Role: Allocate — the round-robin deficit-counter app allocator,
//       spec §4.3.
package appalloc

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/qlatnet/qcapnet/network"
)

// Allocate iteratively assigns paths to apps in rounds, mutating each
// *App in place with its accumulated Paths, terminal Delta, and
// YenCount. The entire batch is pre-validated before any mutation: a
// non-positive k, out-of-range policy, or any app with a non-positive
// priority, empty peers, or unknown host makes Allocate return
// ErrInvalidApp/ErrInvalidArgument and leave g untouched.
//
// Per (host, peer) pair, up to k loopless candidate paths are cached
// once via Yen's algorithm. Each round, every app accrues
// priority/Σpriorities * RoundQuantum gross EPR/s onto its deficit
// counter, then proposes an allocation along one feasible cached path
// chosen by policy; allocation stops when a round admits nothing
// across every app, or when MaxRounds is reached.
func Allocate(g *network.Graph, apps []*App, k int, policy Policy, opts ...Option) (Summary, error) {
	cfg := resolveOptions(opts)
	summary := Summary{BatchID: uuid.New()}

	if err := validateBatch(g, apps, k, policy); err != nil {
		return summary, err
	}
	if len(apps) == 0 {
		return summary, nil
	}

	cache := make([][][]network.NodeID, len(apps))
	sumPriority := 0.0
	for i, a := range apps {
		sumPriority += a.Priority
		cache[i] = make([][]network.NodeID, len(a.Peers))
		for j, p := range a.Peers {
			cache[i][j] = kShortestPaths(g, a.Host, p, k)
			a.YenCount++
		}
	}

	for round := 0; round < cfg.maxRounds; round++ {
		admitted := 0
		for i, a := range apps {
			a.Delta += a.Priority / sumPriority * cfg.roundQuantum
			if a.Delta < cfg.epsilon {
				continue
			}

			chosen, ok := choosePath(g, a.Host, cache[i], policy, cfg)
			if !ok {
				continue
			}

			amount := math.Min(a.Delta, chosen.bottleneck)
			if amount < cfg.epsilon {
				continue
			}

			deductPath(g, a.Host, chosen.hops, amount)

			h := len(chosen.hops)
			netRate := amount
			if h > 1 {
				netRate = amount * math.Pow(g.MeasurementProbability(), float64(h-1))
			}
			mergeAllocation(a, netRate, amount, chosen.hops)
			a.Delta -= amount
			admitted++
		}

		summary.Rounds++
		cfg.recorder.AppRoundAdmitted(admitted)
		if admitted == 0 {
			break
		}
	}

	return summary, nil
}

func validateBatch(g *network.Graph, apps []*App, k int, policy Policy) error {
	if k <= 0 {
		return fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
	}
	if !policy.valid() {
		return fmt.Errorf("%w: unknown policy value %d", ErrInvalidArgument, int(policy))
	}
	for _, a := range apps {
		if a.Priority <= 0 {
			return fmt.Errorf("%w: non-positive priority %g for host %d", ErrInvalidApp, a.Priority, a.Host)
		}
		if len(a.Peers) == 0 {
			return fmt.Errorf("%w: empty peers for host %d", ErrInvalidApp, a.Host)
		}
		if !g.HasNode(a.Host) {
			return fmt.Errorf("%w: unknown host node %d", ErrInvalidApp, a.Host)
		}
	}

	return nil
}

type candidatePath struct {
	hops       []network.NodeID
	bottleneck float64
}

// choosePath flattens every cached path across an app's peers, applies
// policy's selection criterion, and reports whether a usable path was
// found. *Feas variants restrict the candidate pool to currently
// feasible paths before selecting; base variants select first and then
// reject the pick if it turns out infeasible (spec §9 Open Question
// (c)).
func choosePath(g *network.Graph, host network.NodeID, peerPaths [][][]network.NodeID, policy Policy, cfg options) (candidatePath, bool) {
	pool := make([]candidatePath, 0)
	for _, paths := range peerPaths {
		for _, hops := range paths {
			bottleneck, ok := pathBottleneck(g, host, hops)
			if !ok {
				continue
			}
			pool = append(pool, candidatePath{hops: hops, bottleneck: bottleneck})
		}
	}
	if len(pool) == 0 {
		return candidatePath{}, false
	}

	candidates := pool
	if policy.feasOnly() {
		candidates = filterFeasible(pool, cfg.epsilon)
		if len(candidates) == 0 {
			return candidatePath{}, false
		}
	}

	chosen := selectByBase(policy.base(), candidates, cfg)
	if !policy.feasOnly() && chosen.bottleneck < cfg.epsilon {
		return candidatePath{}, false
	}

	return chosen, true
}

func filterFeasible(pool []candidatePath, eps float64) []candidatePath {
	out := make([]candidatePath, 0, len(pool))
	for _, c := range pool {
		if c.bottleneck >= eps {
			out = append(out, c)
		}
	}

	return out
}

func selectByBase(base Policy, candidates []candidatePath, cfg options) candidatePath {
	best := candidates[0]
	switch base {
	case Random:
		return candidates[cfg.rng.Intn(len(candidates))]
	case SPF:
		for _, c := range candidates[1:] {
			if len(c.hops) < len(best.hops) || (len(c.hops) == len(best.hops) && lexLess(c.hops, best.hops)) {
				best = c
			}
		}
	case BestFit:
		for _, c := range candidates[1:] {
			if c.bottleneck > best.bottleneck {
				best = c
			}
		}
	}

	return best
}

func lexLess(a, b []network.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

func pathBottleneck(g *network.Graph, src network.NodeID, hops []network.NodeID) (float64, bool) {
	prev := src
	best := math.Inf(1)
	for _, next := range hops {
		idx, ok := g.FindEdge(prev, next)
		if !ok {
			return 0, false
		}
		cap, err := g.Capacity(idx)
		if err != nil {
			return 0, false
		}
		if cap < best {
			best = cap
		}
		prev = next
	}

	return best, true
}

func deductPath(g *network.Graph, src network.NodeID, hops []network.NodeID, amount float64) {
	prev := src
	for _, next := range hops {
		if idx, ok := g.FindEdge(prev, next); ok {
			_ = g.ReduceCapacity(idx, amount)
		}
		prev = next
	}
}

func mergeAllocation(a *App, netRate, grossRate float64, hops []network.NodeID) {
	for i := range a.Paths {
		if hopsEqual(a.Paths[i].Hops, hops) {
			a.Paths[i].NetRate += netRate
			a.Paths[i].GrossRate += grossRate
			return
		}
	}
	a.Paths = append(a.Paths, Allocation{
		NetRate:   netRate,
		GrossRate: grossRate,
		Hops:      append([]network.NodeID(nil), hops...),
	})
}
