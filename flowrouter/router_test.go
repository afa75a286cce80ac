package flowrouter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlatnet/qcapnet/flowrouter"
	"github.com/qlatnet/qcapnet/network"
)

func mustGraph(t *testing.T, edges []network.WeightedEdge) *network.Graph {
	t.Helper()
	g, err := network.NewFromWeightedEdges(edges)
	require.NoError(t, err)

	return g
}

// Seed scenario 1: two-node direct link.
func TestRoute_TwoNodeDirectLink(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	f := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 3}

	summary, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Admitted)
	require.Equal(t, []network.NodeID{1}, f.Path)
	require.Equal(t, 3.0, f.GrossRate)
	require.GreaterOrEqual(t, f.DijkstraCount, 1)

	idx, ok := g.FindEdge(0, 1)
	require.True(t, ok)
	cap, err := g.Capacity(idx)
	require.NoError(t, err)
	require.Equal(t, 7.0, cap)
}

// Seed scenario 2: three-node chain with swap loss.
func TestRoute_ChainWithSwapLoss(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 1, V: 2, Capacity: 10},
	})
	require.NoError(t, g.SetMeasurementProbability(0.5))

	f := &flowrouter.Flow{Src: 0, Dst: 2, NetRate: 2}
	_, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)

	require.Equal(t, []network.NodeID{1, 2}, f.Path)
	require.Equal(t, 4.0, f.GrossRate) // 2 / 0.5^1

	idx01, _ := g.FindEdge(0, 1)
	idx12, _ := g.FindEdge(1, 2)
	c01, _ := g.Capacity(idx01)
	c12, _ := g.Capacity(idx12)
	require.Equal(t, 6.0, c01)
	require.Equal(t, 6.0, c12)
}

// Seed scenario 3: bottleneck reroute.
func TestRoute_BottleneckReroute(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 1},
		{U: 1, V: 3, Capacity: 10},
		{U: 0, V: 2, Capacity: 10},
		{U: 2, V: 3, Capacity: 10},
	})
	f := &flowrouter.Flow{Src: 0, Dst: 3, NetRate: 5}
	_, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)

	require.Equal(t, []network.NodeID{2, 3}, f.Path)
	require.Equal(t, 5.0, f.GrossRate)
	require.GreaterOrEqual(t, f.DijkstraCount, 2, "must have retried after the direct 0->1->3 path proved infeasible")
}

// Seed scenario 4: unreachable.
func TestRoute_Unreachable(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 5},
		{U: 2, V: 3, Capacity: 5},
	})
	f := &flowrouter.Flow{Src: 0, Dst: 3, NetRate: 1}
	summary, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Rejected)
	require.Empty(t, f.Path)
}

// Seed scenario 6: check function veto.
func TestRoute_CheckFnVeto(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	f := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 3}

	summary, err := flowrouter.Route(g, []*flowrouter.Flow{f}, flowrouter.WithCheckFn(func(*flowrouter.Flow) bool {
		return false
	}))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Rejected)
	require.Empty(t, f.Path)

	idx, _ := g.FindEdge(0, 1)
	cap, _ := g.Capacity(idx)
	require.Equal(t, 10.0, cap)
}

func TestRoute_MuOne_GrossEqualsNet(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 1, V: 2, Capacity: 10},
	})
	f := &flowrouter.Flow{Src: 0, Dst: 2, NetRate: 4}
	_, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)
	require.Equal(t, f.NetRate, f.GrossRate)
}

func TestRoute_MuZero_MultiHopRejected_SingleHopAdmitted(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 1, V: 2, Capacity: 10},
	})
	require.NoError(t, g.SetMeasurementProbability(0))

	multiHop := &flowrouter.Flow{Src: 0, Dst: 2, NetRate: 1}
	singleHop := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 1}
	summary, err := flowrouter.Route(g, []*flowrouter.Flow{multiHop, singleHop})
	require.NoError(t, err)
	require.Empty(t, multiHop.Path)
	require.Equal(t, []network.NodeID{1}, singleHop.Path)
	require.Equal(t, 1.0, singleHop.GrossRate)
	require.Equal(t, 1, summary.Admitted)
	require.Equal(t, 1, summary.Rejected)
}

func TestRoute_NetRateExceedsTotalCapacity_Rejected(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 4}})
	f := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 100}
	_, err := flowrouter.Route(g, []*flowrouter.Flow{f})
	require.NoError(t, err)
	require.Empty(t, f.Path)
}

func TestRoute_InvalidBatch_NoMutation(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	good := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 3}
	bad := &flowrouter.Flow{Src: 0, Dst: 0, NetRate: 3} // src == dst

	_, err := flowrouter.Route(g, []*flowrouter.Flow{good, bad})
	require.ErrorIs(t, err, flowrouter.ErrInvalidFlow)
	require.Empty(t, good.Path, "no flow in the batch should be mutated when validation fails")

	idx, _ := g.FindEdge(0, 1)
	cap, _ := g.Capacity(idx)
	require.Equal(t, 10.0, cap)
}

func TestRoute_EmptyBatch_IsNoOp(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	summary, err := flowrouter.Route(g, nil)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Admitted)
	require.Equal(t, 0, summary.Rejected)
	require.Equal(t, 1, g.NumEdges())
}

func TestRoute_SequentialFlowsCompeteForCapacity(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 5}})
	first := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 4}
	second := &flowrouter.Flow{Src: 0, Dst: 1, NetRate: 4}

	_, err := flowrouter.Route(g, []*flowrouter.Flow{first, second})
	require.NoError(t, err)
	require.NotEmpty(t, first.Path)
	require.Empty(t, second.Path, "second flow depends on residual capacity left by the first")
}
