package graph_test

import (
	"fmt"

	"github.com/matzehuels/careermap/pkg/graph"
)

func ExampleBuild() {
	g := graph.Build(
		[]string{"Python", "SQL", "Machine Learning"},
		map[string][]string{
			"SQL":              {"Python"},
			"Machine Learning": {"Python", "SQL"},
		},
	)

	for _, n := range g.Nodes {
		fmt.Printf("%s: %s size=%d row=%d\n", n.ID, n.Category, n.Size, n.Row)
	}
	for _, e := range g.Edges {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	// Output:
	// Python: Programming size=47 row=0
	// SQL: Data Science size=47 row=1
	// Machine Learning: Data Science size=47 row=2
	// Python -> SQL
	// Python -> Machine Learning
	// SQL -> Machine Learning
}
