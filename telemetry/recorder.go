// File: recorder.go
// Role: Recorder interface and the no-op default implementation.
package telemetry

// Recorder observes admission outcomes from flowrouter.Route and
// appalloc.Allocate. Implementations must be safe for concurrent use;
// neither caller serializes calls.
type Recorder interface {
	// FlowAdmitted is called once per admitted flow with its path's hop
	// count.
	FlowAdmitted(hops int)
	// FlowRejected is called once per rejected flow.
	FlowRejected()
	// AppRoundAdmitted is called once per allocator round with the
	// number of apps that were admitted an allocation that round.
	AppRoundAdmitted(n int)
}

type noopRecorder struct{}

func (noopRecorder) FlowAdmitted(int)     {}
func (noopRecorder) FlowRejected()        {}
func (noopRecorder) AppRoundAdmitted(int) {}

// NoOp returns a Recorder whose methods do nothing. It is the default
// used when no WithRecorder option is supplied.
func NoOp() Recorder { return noopRecorder{} }
