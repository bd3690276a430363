// Package dag provides the directed graph behind skill prerequisite layouts.
//
// Nodes are skills and an edge From→To means "From is a prerequisite of To".
// Prerequisite data comes from an external service and is not guaranteed to
// be acyclic (the extracted data even lists Statistics as its own
// prerequisite), so the graph accepts cycles. The [transform] subpackage
// breaks them and assigns each node a row so the graph can be drawn
// top-down with every prerequisite above its dependents.
//
//	g := dag.New()
//	_ = g.AddNode(dag.Node{ID: "Python"})
//	_ = g.AddNode(dag.Node{ID: "SQL"})
//	_ = g.AddEdge(dag.Edge{From: "Python", To: "SQL"})
//
// Iteration order ([DAG.Nodes], [DAG.Sources]) is insertion
// order, which keeps every derived layout deterministic.
//
// DAG instances are not safe for concurrent use.
//
// [transform]: github.com/matzehuels/careermap/pkg/dag/transform
package dag
