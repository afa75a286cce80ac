package network_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlatnet/qcapnet/network"
)

func TestToDot_TruncatesAndWritesEdges(t *testing.T) {
	g, err := network.NewFromWeightedEdges([]network.WeightedEdge{{U: 0, V: 1, Capacity: 8}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that must be truncated away"), 0o644))

	require.NoError(t, g.ToDot(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "digraph qcapnet {")
	require.Contains(t, string(contents), `0 -> 1 [label="8"];`)
	require.NotContains(t, string(contents), "stale contents")
}
