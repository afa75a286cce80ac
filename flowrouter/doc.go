// Package flowrouter admits a batch of fixed-rate point-to-point flows
// onto a *network.Graph, per spec §4.2.
//
// Overview:
//
//   - Route processes flows sequentially in input order, mutating each
//     *Flow in place with its admitted path, gross rate, and Dijkstra
//     invocation count.
//   - For each flow it repeatedly runs hop-count-minimizing Dijkstra on
//     an ephemeral working copy of the graph, checks whether the
//     original graph has enough residual capacity along the candidate
//     path to deliver the flow's requested net rate after accounting
//     for measurement-probability swap loss, and either commits the
//     capacity deduction or prunes the path's bottleneck edge from the
//     working copy and retries.
//   - The outcome of flow i+1 depends on the residual capacity left by
//     flow i; there is no rollback once a flow commits.
//
// When to use:
//
//   - For demands that need one fixed, guaranteed end-to-end rate
//     between a single source and a single destination. Demands that
//     should be spread across several peers and paths under priority
//     weights belong in appalloc instead.
//
// Key features:
//
//   - Atomic batch pre-validation: a malformed flow (src==dst, unknown
//     node, non-positive net rate) rejects the entire batch with
//     ErrInvalidFlow before any capacity is touched.
//   - Per-flow atomic commit: a flow either reserves capacity on every
//     edge of its path, or reserves none.
//   - An optional CheckFn vetoes an otherwise-feasible candidate path
//     (e.g. a caller-side policy check) without reserving any
//     capacity.
//   - An optional telemetry.Recorder observes admissions/rejections as
//     they happen, with zero overhead when omitted (a no-op recorder
//     is the default).
//
// Algorithm (admitOne, per flow):
//
//  1. Clone the graph into an ephemeral working copy G′ owned only by
//     this flow's search.
//  2. Run hop-count Dijkstra on G′ from src to dst; increment the
//     flow's Dijkstra invocation counter.
//  3. If dst is unreachable in G′, reject the flow.
//  4. Compute gross = net_rate / μ^(h-1) for the candidate path's hop
//     count h (μ = 0 with h > 1 rejects immediately: no finite gross
//     rate delivers a multi-hop flow through total swap loss).
//  5. Check residual capacity along the candidate path on the
//     original graph (not G′). If every edge has enough headroom, the
//     path is feasible.
//  6. On a feasible path, consult CheckFn with the tentative outputs;
//     a veto rejects the flow without reserving capacity or recording
//     a Path/GrossRate (only its DijkstraCount has moved). Otherwise, commit:
//     subtract gross from every edge of the path and record the real
//     outputs.
//  7. On an infeasible path, remove the smallest-capacity edge along
//     it from G′ (first occurrence breaks ties) and go to step 2. This
//     guarantees termination in at most |E| retries, since each retry
//     permanently removes one edge from G′.
//
// Performance and complexity:
//
//   - Per flow, at most |E|+1 Dijkstra invocations, each
//     O((V+E) log V) with the lazy-decrease-key heap; worst case
//     O(E·(V+E) log V) per flow when every retry prunes exactly one
//     bottleneck edge.
//   - Route itself is O(n) calls to admitOne for n flows; there is no
//     cross-flow batching beyond sequential residual-capacity sharing.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidFlow is the only sentinel ever returned from Route: a
//     batch-level pre-validation failure, returned before any capacity
//     is mutated.
//   - Unreachable, infeasible, and check_fn-vetoed outcomes are
//     recovered locally per spec §7: tryAdmit returns the unexported
//     errUnreachable/errInfeasible/errCheckVetoed sentinels, admitOne
//     recognizes each with errors.Is, and none ever escapes Route as a
//     returned error — a rejected flow is identified by its empty
//     Path, not by an error value. Any other error surfacing from
//     tryAdmit is treated as a programming bug and panics rather than
//     being silently absorbed as a rejection.
//
// Thread safety:
//
//   - Route is a single-threaded cooperative call, per spec §5: it must
//     not run concurrently with another Route or appalloc.Allocate
//     call against the same graph. Each flow's G′ is private to its
//     own search and never shared across goroutines.
package flowrouter
