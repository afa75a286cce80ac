// Package appalloc implements the multi-path app allocator, per spec
// §4.3: iterative round-robin distribution of residual graph capacity
// among elastic, multi-peer demands under priority weights and a
// deficit-counter scheme, with candidate paths per (host, peer) pair
// cached once via Yen's algorithm.
//
// Overview:
//
//   - Allocate runs apps through successive rounds rather than
//     admitting each one to completion in turn, so that no single app
//     can starve the others of capacity within a round: every app
//     accrues its priority share of one RoundQuantum onto a deficit
//     counter, then proposes at most one allocation before the next
//     app gets its turn.
//   - Unlike flowrouter.Route's fixed-rate flows, an App is elastic:
//     it may be satisfied by summed contributions across several
//     peers and several rounds, each along a path chosen fresh by
//     Policy from that (host, peer) pair's cached candidates.
//   - Allocation halts once a full round admits nothing for any app,
//     or MaxRounds is reached — whichever comes first.
//
// When to use:
//
//   - For demands that can be split across multiple peers and paths
//     and whose admitted rate is whatever the topology can sustain,
//     rather than a single fixed rate that must be fully met or
//     rejected. A single fixed-rate point-to-point demand belongs in
//     flowrouter instead.
//
// Key features:
//
//   - Atomic batch pre-validation: a non-positive k, an out-of-range
//     Policy, or any app with a non-positive priority, empty peers, or
//     an unknown host node rejects the entire batch with
//     ErrInvalidApp/ErrInvalidArgument before any capacity is touched.
//   - Six selection policies (Random, SPF, BestFit, and their *Feas
//     counterparts) choose among an app's cached candidate paths each
//     round; the *Feas variants restrict the candidate pool to
//     currently feasible paths before selecting, while the base
//     policies select by criterion first and reject the pick only if
//     it then proves infeasible.
//   - Per-path contributions across rounds are merged by hop sequence,
//     so a.Paths never grows an entry per round — one entry per
//     distinct path actually used.
//   - An optional telemetry.Recorder observes each round's admitted
//     app count, with zero overhead when omitted.
//
// Algorithm:
//
//  1. Pre-validate the batch; on any violation, return the
//     corresponding sentinel error and leave the graph untouched.
//  2. For every (host, peer) pair across every app, cache up to k
//     loopless paths ordered by increasing hop count via Yen's
//     algorithm (kShortestPaths), counting one YenCount invocation per
//     pair. This cache never refreshes mid-call: an app's candidate
//     pool is fixed at call time, only its residual bottleneck along
//     each cached path changes round to round.
//  3. Each round, for every app in order: accrue
//     priority/Σpriorities * RoundQuantum onto its deficit counter; if
//     the counter is below epsilon, skip the app this round.
//  4. Flatten the app's cached paths across all its peers into one
//     pool, apply Policy to pick a candidate (see choosePath), and
//     read its current bottleneck capacity on the live graph.
//  5. Admit min(deficit, bottleneck) along the chosen path: reduce
//     every edge's capacity by that amount, convert it to a net rate
//     via net = gross * μ^(h-1), and merge it into the app's Paths by
//     hop sequence. Subtract the admitted amount from the deficit.
//  6. A round that admits nothing for any app ends the call early;
//     otherwise continue until MaxRounds rounds have run.
//
// Performance and complexity:
//
//   - Yen's cache: O(pairs * k * V * (V+E) log V) total over all
//     (host, peer) pairs, paid once per call, not per round — each of
//     the k paths runs one hop-count Dijkstra per spur node of the
//     previous path (at most V of them).
//   - Each round is O(apps * peers * k) to flatten and score the pool;
//     MaxRounds bounds the total work, since nothing after the cache
//     re-runs Dijkstra.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidApp: a non-positive priority, empty peers, or an
//     unknown host node anywhere in the batch.
//   - ErrInvalidArgument: a non-positive k, or a Policy value outside
//     the six declared constants.
//   - Both are returned only from batch pre-validation, before any
//     edge capacity is mutated; a later per-round shortfall (no
//     feasible path, deficit below epsilon) is not an error — the app
//     simply accrues no allocation that round.
//
// Thread safety:
//
//   - Allocate is a single-threaded cooperative call, per spec §5: it
//     must not run concurrently with another Allocate or
//     flowrouter.Route call against the same graph.
package appalloc
