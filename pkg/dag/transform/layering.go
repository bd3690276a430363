package transform

import "github.com/matzehuels/careermap/pkg/dag"

// AssignLayers assigns every node the length of the longest prerequisite
// chain leading to it: skills without prerequisites sit in row 0 and every
// other skill sits one row below its deepest prerequisite.
//
// It is Kahn's topological sort carrying the row along, O(V + E). Nodes
// on a cycle never reach in-degree zero and stay in row 0, so run
// [BreakCycles] first. Existing rows are overwritten.
func AssignLayers(g *dag.DAG) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		rows[n.ID] = 0
		degree := g.InDegree(n.ID)
		inDegree[n.ID] = degree
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}
