// File: errors.go
// Role: Sentinel errors for appalloc.
package appalloc

import "errors"

// ErrInvalidApp is returned when any app in the batch has a non-positive
// priority, empty peers, or an unknown host node. The entire batch is
// rejected before any capacity is mutated.
var ErrInvalidApp = errors.New("appalloc: invalid app")

// ErrInvalidArgument is returned for a non-positive k or an out-of-range
// policy value.
var ErrInvalidArgument = errors.New("appalloc: invalid argument")

// epsilon is the minimum per-edge residual capacity, and minimum
// deficit, below which a path is treated as infeasible or a round's
// contribution as negligible.
const epsilon = 1e-9
