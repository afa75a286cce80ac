// Package telemetry is a thin, optional observer attachable to
// flowrouter.Route and appalloc.Allocate via WithRecorder. It never
// performs network I/O itself: the Prometheus recorder only registers
// in-process counters and histograms against a caller-supplied
// registry, grounded on the collector/metrics wiring in
// Hola-to-network_logistics_problem/pkg/metrics.
//
// Overview:
//
//   - Recorder is the single-method-per-event capability both
//     admission packages call into: FlowAdmitted/FlowRejected from
//     flowrouter, AppRoundAdmitted from appalloc. Neither package
//     depends on Prometheus directly — they depend only on this
//     interface, so a caller that doesn't want metrics pays nothing.
//   - NoOp returns a Recorder whose methods do nothing; it is the
//     default supplied by both packages' resolveOptions when the
//     caller passes no WithRecorder option.
//   - NewPrometheus wraps a *prometheus.Registry with promauto,
//     registering a fixed, namespaced ("qcapnet") set of counters and
//     histograms when NewPrometheus is called.
//
// When to use:
//
//   - Attach NewPrometheus's Recorder via flowrouter.WithRecorder or
//     appalloc.WithRecorder when a caller wants to expose admission
//     counts and path-length distributions on its own
//     /metrics endpoint. Otherwise, omit WithRecorder entirely.
//
// Key features:
//
//   - flows_admitted_total / flows_rejected_total counters and a
//     flow_path_hops histogram for flowrouter.
//   - A round_admitted_apps histogram for appalloc, one observation
//     per round recording how many apps it admitted.
//   - Every metric is registered against the caller's own
//     *prometheus.Registry, never the global DefaultRegisterer, so
//     multiple qcapnet instances in one process never collide.
//
// Error handling:
//
//   - None of Recorder's methods return an error: an observer must
//     never cause an admission call to fail. NewPrometheus panics only
//     if the same registry already has a conflicting collector
//     registered under one of the fixed metric names (promauto's
//     documented behavior), which indicates a caller-side registry
//     reuse bug, not a runtime condition to recover from.
//
// Thread safety:
//
//   - Both Recorder implementations are safe for concurrent use: NoOp
//     has no state, and the Prometheus client library's collectors are
//     themselves safe for concurrent Observe/Inc calls.
package telemetry
