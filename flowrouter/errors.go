// File: errors.go
// Role: Sentinel errors for flowrouter.
//
// Error policy: ErrInvalidFlow is the only sentinel ever returned from
// Route; it signals a batch-level pre-validation failure and is
// returned before any capacity is mutated (spec §7: "fail fast, entire
// batch rejected"). errUnreachable, errInfeasible, and errCheckVetoed
// are unexported — per spec §7 they are "recovered locally": tryAdmit
// returns them internally, admitOne recognizes each via errors.Is and
// turns it into a rejected (empty Path) flow, and none of the three
// ever escapes Route as a returned error.
package flowrouter

import "errors"

// ErrInvalidFlow is returned when any flow in the batch has src==dst,
// an unknown node id, or a non-positive net rate. The entire batch is
// rejected atomically; no flow's path or capacity is touched.
var ErrInvalidFlow = errors.New("flowrouter: invalid flow")

// errUnreachable signals that no path exists from src to dst in the
// current working copy. Recognized by admitOne via errors.Is.
var errUnreachable = errors.New("flowrouter: destination unreachable")

// errInfeasible signals that every retry has been exhausted without
// finding a path with sufficient residual capacity, or that μ=0 rules
// out the multi-hop candidate path. Recognized by admitOne via
// errors.Is.
var errInfeasible = errors.New("flowrouter: no feasible path")

// errCheckVetoed signals that an otherwise-feasible path was rejected
// by the batch's CheckFn. Recognized by admitOne via errors.Is.
var errCheckVetoed = errors.New("flowrouter: check_fn vetoed path")

// epsilon bounds capacity comparisons to avoid livelock when a residual
// capacity approaches zero through repeated floating-point subtraction
// (spec §9 design notes).
const epsilon = 1e-9
