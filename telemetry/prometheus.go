// File: prometheus.go
// Role: Recorder backed by github.com/prometheus/client_golang,
//       grounded on InitMetrics in
//       Hola-to-network_logistics_problem/pkg/metrics/prometheus.go.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusRecorder struct {
	flowsAdmitted  prometheus.Counter
	flowsRejected  prometheus.Counter
	flowHops       prometheus.Histogram
	appRoundAdmits prometheus.Histogram
}

// NewPrometheus registers qcapnet's counters and histograms against reg
// and returns a Recorder backed by them. Passing the same *Registry to
// multiple NewPrometheus calls panics on duplicate registration, same
// as any other prometheus.Collector.
func NewPrometheus(reg *prometheus.Registry) Recorder {
	factory := promauto.With(reg)

	return &prometheusRecorder{
		flowsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "qcapnet",
			Subsystem: "flowrouter",
			Name:      "flows_admitted_total",
			Help:      "Total number of flows admitted by Route.",
		}),
		flowsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "qcapnet",
			Subsystem: "flowrouter",
			Name:      "flows_rejected_total",
			Help:      "Total number of flows rejected by Route.",
		}),
		flowHops: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "qcapnet",
			Subsystem: "flowrouter",
			Name:      "flow_path_hops",
			Help:      "Hop count of admitted flow paths.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 13, 21},
		}),
		appRoundAdmits: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "qcapnet",
			Subsystem: "appalloc",
			Name:      "round_admitted_apps",
			Help:      "Number of apps admitted an allocation per allocation round.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

func (r *prometheusRecorder) FlowAdmitted(hops int) {
	r.flowsAdmitted.Inc()
	r.flowHops.Observe(float64(hops))
}

func (r *prometheusRecorder) FlowRejected() {
	r.flowsRejected.Inc()
}

func (r *prometheusRecorder) AppRoundAdmitted(n int) {
	r.appRoundAdmits.Observe(float64(n))
}
