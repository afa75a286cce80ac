package network_test

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/qlatnet/qcapnet/network"
)

// ExampleNewFromEdgeList_poissonSource builds a bidirectional link graph
// whose capacities are drawn from a Poisson process, modeling EPR-pair
// generation as Poisson arrivals at a fixed mean rate.
func ExampleNewFromEdgeList_poissonSource() {
	source := distuv.Poisson{Lambda: 50, Source: rand.New(rand.NewSource(1))}

	g, err := network.NewFromEdgeList([]network.Pair{
		{U: 0, V: 1},
		{U: 1, V: 2},
	}, source, true)
	if err != nil {
		panic(err)
	}

	fmt.Println(g.NumNodes(), g.NumEdges())
	// Output:
	// 3 4
}
