package dag

import (
	"errors"
	"slices"
)

// Errors returned while assembling a graph.
var (
	ErrEmptyID             = errors.New("dag: skill id is empty")
	ErrDuplicateSkill      = errors.New("dag: skill already added")
	ErrUnknownPrerequisite = errors.New("dag: prerequisite is not in the graph")
	ErrUnknownDependent    = errors.New("dag: dependent skill is not in the graph")
)

// Node is one skill and the row it is drawn on (0 = top).
type Node struct {
	ID  string
	Row int
}

// Edge reads "From is a prerequisite of To".
type Edge struct {
	From string
	To   string
}

type vertex struct {
	node       Node
	prereqs    []string
	dependents []string
}

// DAG holds skills in insertion order. Use New; the zero value is not
// usable.
type DAG struct {
	ids   []string
	verts map[string]*vertex
	edges []Edge
}

func New() *DAG {
	return &DAG{verts: make(map[string]*vertex)}
}

// AddNode registers a skill.
func (d *DAG) AddNode(n Node) error {
	switch {
	case n.ID == "":
		return ErrEmptyID
	case d.verts[n.ID] != nil:
		return ErrDuplicateSkill
	}
	d.verts[n.ID] = &vertex{node: n}
	d.ids = append(d.ids, n.ID)
	return nil
}

// AddEdge links two registered skills. Repeating an edge is allowed.
func (d *DAG) AddEdge(e Edge) error {
	from, to := d.verts[e.From], d.verts[e.To]
	if from == nil {
		return ErrUnknownPrerequisite
	}
	if to == nil {
		return ErrUnknownDependent
	}
	d.edges = append(d.edges, e)
	from.dependents = append(from.dependents, e.To)
	to.prereqs = append(to.prereqs, e.From)
	return nil
}

// RemoveEdge drops every from→to edge.
func (d *DAG) RemoveEdge(from, to string) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	if v := d.verts[from]; v != nil {
		v.dependents = slices.DeleteFunc(v.dependents, func(s string) bool { return s == to })
	}
	if v := d.verts[to]; v != nil {
		v.prereqs = slices.DeleteFunc(v.prereqs, func(s string) bool { return s == from })
	}
}

// SetRows assigns rows by skill id; unknown ids are ignored.
func (d *DAG) SetRows(rows map[string]int) {
	for id, r := range rows {
		if v := d.verts[id]; v != nil {
			v.node.Row = r
		}
	}
}

// Nodes lists the graph's own nodes in insertion order.
func (d *DAG) Nodes() []*Node {
	out := make([]*Node, 0, len(d.ids))
	for _, id := range d.ids {
		out = append(out, &d.verts[id].node)
	}
	return out
}

func (d *DAG) Node(id string) (*Node, bool) {
	v := d.verts[id]
	if v == nil {
		return nil, false
	}
	return &v.node, true
}

// Edges returns a copy of the edge list.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// Children lists the skills that require id. Callers must not modify the
// result.
func (d *DAG) Children(id string) []string {
	if v := d.verts[id]; v != nil {
		return v.dependents
	}
	return nil
}

// InDegree counts the prerequisites of id.
func (d *DAG) InDegree(id string) int {
	if v := d.verts[id]; v != nil {
		return len(v.prereqs)
	}
	return 0
}

// Sources lists skills with no prerequisites, in insertion order.
func (d *DAG) Sources() []*Node {
	var out []*Node
	for _, id := range d.ids {
		if v := d.verts[id]; len(v.prereqs) == 0 {
			out = append(out, &v.node)
		}
	}
	return out
}
