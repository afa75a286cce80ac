// File: types.go
// Role: Flow descriptor, CheckFn, functional Options, and the Summary
//       returned by Route.
package flowrouter

import (
	"github.com/google/uuid"

	"github.com/qlatnet/qcapnet/network"
	"github.com/qlatnet/qcapnet/telemetry"
)

// Flow is a fixed-rate point-to-point demand. Src, Dst, and NetRate are
// immutable inputs; Path, GrossRate, and DijkstraCount are populated by
// Route in place. Path is the ordered hop sequence excluding Src and
// including Dst; an empty Path after Route means the flow was rejected.
type Flow struct {
	Src, Dst      network.NodeID
	NetRate       float64
	Path          []network.NodeID
	GrossRate     float64
	DijkstraCount int
}

// CheckFn is consulted once a flow's candidate path is known to be
// capacity-feasible, with the flow's tentative Path/GrossRate already
// populated. Returning false vetoes admission (the flow is rejected and
// no capacity is deducted). The zero value (nil) behaves as
// always-true.
type CheckFn func(f *Flow) bool

func alwaysTrue(*Flow) bool { return true }

// Summary reports the outcome of one Route call. BatchID is a fresh
// correlation identifier per call, useful for joining Recorder metrics
// emitted during this batch with an external trace — the router itself
// performs no I/O with it.
type Summary struct {
	BatchID  uuid.UUID
	Admitted int
	Rejected int
}

// Option configures a Route call.
type Option func(*options)

type options struct {
	check    CheckFn
	recorder telemetry.Recorder
}

func resolveOptions(opts []Option) options {
	o := options{check: alwaysTrue, recorder: telemetry.NoOp()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.check == nil {
		o.check = alwaysTrue
	}
	if o.recorder == nil {
		o.recorder = telemetry.NoOp()
	}

	return o
}

// WithCheckFn sets the veto function consulted on every capacity-
// feasible candidate path. Default: always admit.
func WithCheckFn(fn CheckFn) Option {
	return func(o *options) { o.check = fn }
}

// WithRecorder attaches a telemetry.Recorder observing admissions and
// rejections as they happen. Default: a no-op recorder.
func WithRecorder(r telemetry.Recorder) Option {
	return func(o *options) { o.recorder = r }
}
