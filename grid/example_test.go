package grid_test

import (
	"fmt"

	"github.com/tessellab/gosom/grid"
	"github.com/tessellab/gosom/topology"
)

// ExampleGrid_SeedCycle demonstrates cyclic seeding: cell k (enumeration
// order) receives seeds[k mod len(seeds)], so one zero vector produces an
// all-zero grid and two seeds alternate.
func ExampleGrid_SeedCycle() {
	topo, _ := topology.NewRectangular("3x1")
	g, _ := grid.New(topo, 1)
	_ = g.SeedCycle([]float64{10}, []float64{20})

	for _, v := range g.Snapshot() {
		fmt.Println(v[0])
	}
	// Output:
	// 10
	// 20
	// 10
}
