// File: dot.go
// Role: Textual graph-visualization export (spec §6 "Dot export").
//
// This hand-rolls a minimal `digraph` writer rather than depending on
// gonum's graph/encoding/dot Marshal: Marshal operates on graph.Graph
// (gonum's node/edge iterator interfaces) and earns its keep when a
// caller also wants subgraphs, ports, or attribute sets — none of which
// this spec needs. Wiring a small adapter just to reach one label-only
// writer would add an import for less code than writing the loop
// directly; see DESIGN.md for this standard-library justification.
package network

import (
	"fmt"
	"os"
)

// ToDot writes a directed-graph textual representation of g to path,
// with each surviving edge labeled by its current capacity. The file is
// truncated if it already exists (opaque-path, truncate-on-open
// semantics per spec §6).
func (g *Graph) ToDot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("network: ToDot: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "digraph qcapnet {"); err != nil {
		return err
	}

	g.muEdges.RLock()
	edges := make([]edge, len(g.edges))
	copy(edges, g.edges)
	g.muEdges.RUnlock()

	for _, id := range g.sortedNodeIDs() {
		if _, err := fmt.Fprintf(f, "\t%d;\n", id); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if e.removed {
			continue
		}
		if _, err := fmt.Fprintf(f, "\t%d -> %d [label=%q];\n", e.from, e.to, fmt.Sprintf("%.6g", e.capacity)); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(f, "}")

	return err
}
