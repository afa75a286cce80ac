// File: types.go
// Role: App descriptor, Allocation, functional Options, and the
//       Summary returned by Allocate.
package appalloc

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/qlatnet/qcapnet/network"
	"github.com/qlatnet/qcapnet/telemetry"
)

// App is an elastic, multi-peer demand hosted at one node. Host, Peers,
// and Priority are immutable inputs; Paths, Delta, and YenCount are
// populated by Allocate in place.
type App struct {
	Host     network.NodeID
	Peers    []network.NodeID
	Priority float64

	Paths    []Allocation
	Delta    float64
	YenCount int
}

// Allocation is one path-level slice of an app's admitted rate. Hops is
// the ordered hop sequence excluding Host and including the terminal
// peer, matching flowrouter.Flow's Path convention. Identical paths
// proposed in successive rounds are merged by summing their rates
// rather than appended as separate entries.
type Allocation struct {
	NetRate   float64
	GrossRate float64
	Hops      []network.NodeID
}

// Summary reports the outcome of one Allocate call.
type Summary struct {
	BatchID uuid.UUID
	Rounds  int
}

// Option configures an Allocate call.
type Option func(*options)

type options struct {
	roundQuantum float64
	maxRounds    int
	epsilon      float64
	recorder     telemetry.Recorder
	rng          *rand.Rand
}

func resolveOptions(opts []Option) options {
	o := options{
		roundQuantum: 1.0,
		maxRounds:    10000,
		epsilon:      epsilon,
		recorder:     telemetry.NoOp(),
		rng:          rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = telemetry.NoOp()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	return o
}

// WithRoundQuantum sets the total per-round budget distributed across
// apps in proportion to priority, in gross EPR/s. Default 1.0.
func WithRoundQuantum(q float64) Option {
	return func(o *options) { o.roundQuantum = q }
}

// WithMaxRounds caps the number of allocation rounds, giving a caller a
// way to time-box a call per spec §5. Default 10000.
func WithMaxRounds(n int) Option {
	return func(o *options) { o.maxRounds = n }
}

// WithRandSource fixes the random source consulted by the Random and
// RandomFeas policies, for reproducible runs. Default: a fixed seed.
func WithRandSource(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithRecorder attaches a telemetry.Recorder observing per-round
// admission counts. Default: a no-op recorder.
func WithRecorder(r telemetry.Recorder) Option {
	return func(o *options) { o.recorder = r }
}
