package eventtree_test

import (
	"fmt"

	"github.com/katalvlaran/cegraph/eventtree"
)

// ExampleFromRows tallies raw observations into an event tree.
func ExampleFromRows() {
	tree, err := eventtree.FromRows([][]string{
		{"treated", "recovered"},
		{"treated", "recovered"},
		{"treated", "relapsed"},
		{"untreated", "recovered"},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Println("nodes:", tree.Len())
	fmt.Println("situations:", tree.Situations())
	fmt.Println("leaves:", tree.Leaves())

	// Output:
	// nodes: 6
	// situations: [s0 s1 s4]
	// leaves: [s2 s3 s5]
}
