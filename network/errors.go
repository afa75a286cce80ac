// File: errors.go
// Role: Sentinel errors for the network package.
//
// Error policy (mirrors lvlath/core):
//   - Only sentinel variables are exported.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Context is attached with fmt.Errorf("%w: ...", ErrX) at call sites,
//     never by constructing new, unrelated error values.
package network

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or setter receives
	// a value outside its documented domain: a measurement probability
	// outside [0,1], a negative edge capacity, or a malformed edge list.
	ErrInvalidArgument = errors.New("network: invalid argument")

	// ErrNodeNotFound is returned when an operation references a node
	// index that does not exist in the graph.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEdgeNotFound is returned when an operation references an edge
	// handle that does not exist, or has been logically removed from a
	// working copy.
	ErrEdgeNotFound = errors.New("network: edge not found")
)
