package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/qlatnet/qcapnet/telemetry"
)

func TestNoOp_DoesNotPanic(t *testing.T) {
	r := telemetry.NoOp()
	r.FlowAdmitted(3)
	r.FlowRejected()
	r.AppRoundAdmitted(2)
}

func TestNewPrometheus_RecordsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := telemetry.NewPrometheus(reg)

	r.FlowAdmitted(2)
	r.FlowAdmitted(4)
	r.FlowRejected()
	r.AppRoundAdmitted(5)

	families, err := reg.Gather()
	require.NoError(t, err)

	var admitted *dto.MetricFamily
	for _, fam := range families {
		if fam.GetName() == "qcapnet_flowrouter_flows_admitted_total" {
			admitted = fam
		}
	}
	require.NotNil(t, admitted, "expected flows_admitted_total to be registered")
	require.Equal(t, 2.0, admitted.GetMetric()[0].GetCounter().GetValue())
}
