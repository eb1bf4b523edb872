package ceg_test

import (
	"fmt"

	"github.com/katalvlaran/cegraph/ceg"
	"github.com/katalvlaran/cegraph/core"
)

// ExampleCEG_Generate collapses two clinics asserted to share a recovery
// distribution into a single chain event graph node.
func ExampleCEG_Generate() {
	g := core.NewGraph()
	_ = g.AddEdge("intake", "clinicA", "A", core.AttrMap{core.AttrCount: 20})
	_ = g.AddEdge("intake", "clinicB", "B", core.AttrMap{core.AttrCount: 25})
	_ = g.AddEdge("clinicA", "end", "recover", core.AttrMap{core.AttrCount: 12})
	_ = g.AddEdge("clinicA", "end", "relapse", core.AttrMap{core.AttrCount: 8})
	_ = g.AddEdge("clinicB", "end", "recover", core.AttrMap{core.AttrCount: 18})
	_ = g.AddEdge("clinicB", "end", "relapse", core.AttrMap{core.AttrCount: 7})
	_ = g.SetStage("clinicA", "treatment")
	_ = g.SetStage("clinicB", "treatment")
	_ = g.SetRoot("intake")
	_ = g.SetSink("end")

	c, _ := ceg.New(g)
	if err := c.Generate(); err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("nodes:", g.Nodes())
	fmt.Println("edges:", g.EdgeCount())
	rec, _ := g.Edge("w1", "winf", "recover")
	fmt.Println("recoveries:", rec.Attrs.Get(core.AttrCount))

	// Output:
	// nodes: [w0 w1 winf]
	// edges: 4
	// recoveries: 30
}
