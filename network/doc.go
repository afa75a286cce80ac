// Package network is the Graph Core of qcapnet: an in-memory directed
// graph whose edge weights are entanglement-generation capacities (EPR
// pairs per second).
//
// Overview:
//
//   - A Graph is built once from an edge list — either uniformly
//     randomized via a pluggable WeightSource (NewFromEdgeList) or from
//     explicit (u, v, capacity) triples (NewFromWeightedEdges) — and is
//     then admitted against by the flowrouter and appalloc packages,
//     which subtract capacity from edges as flows and apps are
//     accepted.
//   - The graph never grows new topology after construction; only
//     residual capacities and, inside ephemeral working copies, an
//     edge-removed mask change over its lifetime.
//   - Measurement probability μ is a process-local scalar in [0,1] held
//     by each Graph; it converts a path's hop count into the
//     end-to-end delivered rate (gross = net / μ^(h-1)), and is the
//     one piece of per-Graph configuration admission reads.
//
// When to use:
//
//   - As the shared substrate both flowrouter.Route and
//     appalloc.Allocate admit demands against.
//   - Standalone, for introspection of a topology's size, degree
//     spread, and aggregate capacity, or to export it for
//     visualization via ToDot.
//
// Key features:
//
//   - Two constructors covering both input shapes named by the data
//     model: a pluggable-weight edge list and explicit weighted
//     triples. Unseen node identifiers up to the observed maximum are
//     instantiated as isolated nodes in both.
//   - WeightSource is a single-method capability (Rand() float64)
//     rather than an inheritance hierarchy, chosen so that
//     gonum.org/v1/gonum/stat/distuv distributions (distuv.Poisson,
//     distuv.Binomial, distuv.Pareto, ...) satisfy it directly with no
//     adapter code.
//   - Clone gives the flow router a cheap, independent working copy to
//     mutate (via RemoveEdge's boolean mask) during bottleneck-pruning
//     search, without touching the caller's graph.
//   - ToDot exports the current residual topology for visualization
//     tooling.
//
// Representation:
//
//   - Nodes are dense, non-negative integers (NodeID) with no payload.
//   - Edges live in a single arena (a []edge slice) indexed by an
//     integer edge handle; adjOut[node] holds the handles of edges
//     leaving that node. This mirrors lvlath/core's map-based adjacency
//     list but specializes it to integer node identities and adds the
//     per-edge "removed" mask that the flow router's bottleneck-pruning
//     search needs on its ephemeral working copies (see Clone).
//   - Two sync.RWMutex fields guard configuration (muCfg, for the
//     measurement probability) and the edge arena (muEdges), so
//     read-only introspection calls are safe to run concurrently with
//     each other, matching core.Graph's muVert/muEdgeAdj split.
//
// Performance and complexity:
//
//   - Construction: O(E) to append the arena and link adjOut, plus
//     O(E) to scan for the maximum node id.
//   - NumEdges/TotalCapacity/degree ranges/Weights: O(E), since removed
//     edges are filtered by a linear scan rather than tracked
//     incrementally — this module favors a simple arena over
//     incremental bookkeeping, since admission calls dominate runtime,
//     not introspection.
//   - FindEdge/Neighbors: O(out-degree of the queried node).
//   - Clone: O(V + E), a full deep copy of the arena and adjacency
//     lists.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidArgument: μ outside [0,1], a negative node id, or a
//     negative weight/capacity supplied to either constructor or to
//     SetMeasurementProbability.
//   - ErrNodeNotFound: an edge-handle-level query (Neighbors) against
//     an id outside [0, NumNodes).
//   - ErrEdgeNotFound: an edge-handle-level query (Endpoints, Capacity,
//     ReduceCapacity, RemoveEdge) against a stale or out-of-range
//     handle.
//
// Thread safety:
//
//   - Per spec §5, the library is single-threaded cooperative: callers
//     must not run an admission call (flowrouter.Route,
//     appalloc.Allocate) concurrently with any other call on the same
//     Graph.
//   - The muCfg/muEdges locks exist so that concurrent read-only
//     introspection (NumNodes, Weights, and similar) never data-races
//     with an in-flight admission call; they do not make concurrent
//     mutation safe, and the two locks are never held together.
package network
