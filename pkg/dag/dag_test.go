package dag

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("AddNode(empty) = %v, want ErrEmptyID", err)
	}
	_ = g.AddNode(Node{ID: "SQL"})
	if err := g.AddNode(Node{ID: "SQL"}); !errors.Is(err, ErrDuplicateSkill) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateSkill", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "SQL"})
	if err := g.AddEdge(Edge{From: "Excel", To: "SQL"}); !errors.Is(err, ErrUnknownPrerequisite) {
		t.Errorf("AddEdge(unknown prerequisite) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "SQL", To: "Tableau"}); !errors.Is(err, ErrUnknownDependent) {
		t.Errorf("AddEdge(unknown dependent) = %v", err)
	}
	if len(g.Edges()) != 0 {
		t.Errorf("rejected edges were stored: %v", g.Edges())
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New()
	ids := []string{"Statistics", "Excel", "SQL", "Python"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}
	var got []string
	for _, n := range g.Nodes() {
		got = append(got, n.ID)
	}
	if !reflect.DeepEqual(got, ids) {
		t.Errorf("Nodes() = %v, want %v", got, ids)
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "Python"})
	_ = g.AddNode(Node{ID: "Pandas"})
	_ = g.AddEdge(Edge{From: "Python", To: "Pandas"})
	_ = g.AddEdge(Edge{From: "Python", To: "Pandas"})

	g.RemoveEdge("Python", "Pandas")
	g.RemoveEdge("Pandas", "Python")
	g.RemoveEdge("Missing", "Python")

	if len(g.Edges()) != 0 || len(g.Children("Python")) != 0 || g.InDegree("Pandas") != 0 {
		t.Errorf("edge not removed: %v", g.Edges())
	}
}

func TestSetRows(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "HTML"})
	_ = g.AddNode(Node{ID: "CSS", Row: 2})
	g.SetRows(map[string]int{"HTML": 1, "missing": 4})

	html, _ := g.Node("HTML")
	css, _ := g.Node("CSS")
	if html.Row != 1 || css.Row != 2 {
		t.Errorf("rows = %d, %d; want 1, 2", html.Row, css.Row)
	}
	if _, ok := g.Node("missing"); ok {
		t.Error("SetRows created a node")
	}
}

func TestSourcesAndDegrees(t *testing.T) {
	g := New()
	for _, id := range []string{"Python", "Statistics", "Machine Learning"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "Python", To: "Machine Learning"})
	_ = g.AddEdge(Edge{From: "Statistics", To: "Machine Learning"})

	var src []string
	for _, n := range g.Sources() {
		src = append(src, n.ID)
	}
	if !reflect.DeepEqual(src, []string{"Python", "Statistics"}) {
		t.Errorf("Sources() = %v", src)
	}
	if g.InDegree("Machine Learning") != 2 || g.InDegree("unknown") != 0 {
		t.Errorf("InDegree = %d", g.InDegree("Machine Learning"))
	}
	if got := g.Children("Python"); !reflect.DeepEqual(got, []string{"Machine Learning"}) {
		t.Errorf("Children(Python) = %v", got)
	}
}
