package appalloc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlatnet/qcapnet/appalloc"
	"github.com/qlatnet/qcapnet/network"
)

func mustGraph(t *testing.T, edges []network.WeightedEdge) *network.Graph {
	t.Helper()
	g, err := network.NewFromWeightedEdges(edges)
	require.NoError(t, err)

	return g
}

func TestParsePolicy_AllLabels(t *testing.T) {
	labels := []string{"random", "spf", "bestfit", "randomfeas", "spffeas", "bestfitfeas"}
	for _, label := range labels {
		p, err := appalloc.ParsePolicy(label)
		require.NoError(t, err)
		require.Equal(t, label, p.String())
	}
}

func TestParsePolicy_UnknownLabel(t *testing.T) {
	_, err := appalloc.ParsePolicy("greedy")
	require.ErrorIs(t, err, appalloc.ErrInvalidArgument)
}

// Seed scenario 5: app load-balancing across two disjoint equal-length
// paths splits admission within one RoundQuantum (default 1.0).
func TestAllocate_LoadBalancingSplitsEvenly(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 5},
		{U: 1, V: 3, Capacity: 5},
		{U: 0, V: 2, Capacity: 5},
		{U: 2, V: 3, Capacity: 5},
	})

	host := network.NodeID(0)
	peer := network.NodeID(3)
	a1 := &appalloc.App{Host: host, Peers: []network.NodeID{peer}, Priority: 1}
	a2 := &appalloc.App{Host: host, Peers: []network.NodeID{peer}, Priority: 1}

	summary, err := appalloc.Allocate(g, []*appalloc.App{a1, a2}, 4, appalloc.BestFitFeas, appalloc.WithMaxRounds(200))
	require.NoError(t, err)
	require.Greater(t, summary.Rounds, 0)

	idx01, _ := g.FindEdge(0, 1)
	idx02, _ := g.FindEdge(0, 2)
	cap01, _ := g.Capacity(idx01)
	cap02, _ := g.Capacity(idx02)
	require.InDelta(t, cap01, cap02, 1.0+1e-6, "the two disjoint paths should drain within roughly one quantum of each other")
}

func TestAllocate_SPFPrefersFewerHops(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 0, V: 2, Capacity: 10},
		{U: 2, V: 1, Capacity: 10},
	})
	a := &appalloc.App{Host: 0, Peers: []network.NodeID{1}, Priority: 1}

	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 4, appalloc.SPF, appalloc.WithMaxRounds(5))
	require.NoError(t, err)
	require.Len(t, a.Paths, 1)
	require.Equal(t, []network.NodeID{1}, a.Paths[0].Hops)
}

func TestAllocate_InvalidApp_EmptyPeers(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	a := &appalloc.App{Host: 0, Priority: 1}

	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 3, appalloc.Random)
	require.ErrorIs(t, err, appalloc.ErrInvalidApp)
}

func TestAllocate_InvalidApp_NonPositivePriority(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	a := &appalloc.App{Host: 0, Peers: []network.NodeID{1}, Priority: 0}

	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 3, appalloc.Random)
	require.ErrorIs(t, err, appalloc.ErrInvalidApp)
}

func TestAllocate_InvalidArgument_NonPositiveK(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	a := &appalloc.App{Host: 0, Peers: []network.NodeID{1}, Priority: 1}

	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 0, appalloc.Random)
	require.ErrorIs(t, err, appalloc.ErrInvalidArgument)
}

func TestAllocate_UnreachablePeer_NoCachedPaths(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 2, V: 3, Capacity: 10},
	})
	a := &appalloc.App{Host: 0, Peers: []network.NodeID{3}, Priority: 1}

	summary, err := appalloc.Allocate(g, []*appalloc.App{a}, 3, appalloc.Random, appalloc.WithMaxRounds(10))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Rounds)
	require.Empty(t, a.Paths)
	require.Equal(t, 1, a.YenCount)
}

func TestAllocate_EmptyBatch_IsNoOp(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{{U: 0, V: 1, Capacity: 10}})
	summary, err := appalloc.Allocate(g, nil, 3, appalloc.Random)
	require.NoError(t, err)
	require.Equal(t, 0, summary.Rounds)
	require.Equal(t, 1, g.NumEdges())
}

func TestAllocate_NeverIncreasesCapacity(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 5},
		{U: 1, V: 2, Capacity: 5},
	})
	a := &appalloc.App{Host: 0, Peers: []network.NodeID{2}, Priority: 1}

	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 2, appalloc.BestFit, appalloc.WithMaxRounds(50))
	require.NoError(t, err)

	for _, w := range g.Weights() {
		require.GreaterOrEqual(t, w.Capacity, 0.0)
		require.LessOrEqual(t, w.Capacity, 5.0+1e-9)
	}
}

func TestAllocate_GrossRateMatchesMuFormula(t *testing.T) {
	g := mustGraph(t, []network.WeightedEdge{
		{U: 0, V: 1, Capacity: 10},
		{U: 1, V: 2, Capacity: 10},
	})
	require.NoError(t, g.SetMeasurementProbability(0.5))

	a := &appalloc.App{Host: 0, Peers: []network.NodeID{2}, Priority: 1}
	_, err := appalloc.Allocate(g, []*appalloc.App{a}, 2, appalloc.BestFit, appalloc.WithMaxRounds(20))
	require.NoError(t, err)
	require.Len(t, a.Paths, 1)

	p := a.Paths[0]
	h := len(p.Hops)
	require.Equal(t, 2, h)
	require.InDelta(t, p.GrossRate, p.NetRate/math.Pow(0.5, float64(h-1)), 1e-6)
}
