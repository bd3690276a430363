// Package transform prepares a prerequisite graph for top-down drawing.
//
// [BreakCycles] removes the back edges found by a depth-first search so
// that circular prerequisite data still yields a drawable graph, and
// [AssignLayers] places every skill one row below its deepest prerequisite.
//
//	removed := transform.BreakCycles(g)
//	transform.AssignLayers(g)
package transform
