package graph

import (
	"slices"
	"sort"

	"github.com/matzehuels/careermap/pkg/color"
	"github.com/matzehuels/careermap/pkg/dag"
	"github.com/matzehuels/careermap/pkg/dag/transform"
	"github.com/matzehuels/careermap/pkg/skills"
)

// Node sizing.
const (
	BaseSize     = 35
	SizePerLevel = 12
)

// Shading percentages for derived colors.
const (
	BorderDarken     = 20
	HighlightLighten = 20
)

// DefaultEdgeStyle is applied to every edge.
var DefaultEdgeStyle = EdgeStyle{
	Width:     3,
	Color:     "#adb5bd",
	Highlight: "#4361ee",
	Opacity:   0.8,
	Arrow:     Arrow{Type: "arrow", ScaleFactor: 1.2},
	Smooth:    Smooth{Type: "curvedCW", Roundness: 0.3},
	Shadow:    Shadow{Enabled: true, Color: "rgba(0, 0, 0, 0.1)", Size: 5, X: 2, Y: 2},
}

// DefaultOptions is the layout every built graph carries.
var DefaultOptions = Options{
	Layout: Hierarchical{
		Direction:            "UD",
		SortMethod:           "directed",
		LevelSeparation:      250,
		NodeSpacing:          300,
		TreeSpacing:          200,
		BlockShifting:        true,
		EdgeMinimization:     true,
		ParentCentralization: true,
		ShakeTowards:         "leaves",
	},
	Physics: false,
}

// categoryStyles holds the node style for every category. The colors are
// fixed, so shading is done once.
var categoryStyles = func() map[string]NodeStyle {
	m := make(map[string]NodeStyle)
	for _, c := range skills.Categories() {
		m[c.Name] = NodeStyle{
			Shape:      "box",
			Background: c.Color,
			Border:     color.MustShade(c.Color, BorderDarken, color.ShadeDarken),
			Highlight: Highlight{
				Background: color.MustShade(c.Color, HighlightLighten, color.ShadeLighten),
				Border:     c.Color,
			},
			Font:        Font{Color: "white", Size: 14, Face: "Inter", Bold: true},
			Margin:      12,
			BorderWidth: 3,
			Shadow:      Shadow{Enabled: true, Color: "rgba(0, 0, 0, 0.2)", Size: 10, X: 3, Y: 3},
		}
	}
	return m
}()

// Build creates the graph for skillList and deps, where deps maps a skill to
// its prerequisites.
//
// Nodes follow skillList order. Edges are grouped by dependent skill: first
// the skills of skillList that have prerequisites, in list order, then any
// other dependency keys in sorted order; within a group, prerequisites keep
// their listed order.
func Build(skillList []string, deps map[string][]string) Graph {
	g := Graph{
		Nodes:   make([]Node, 0, len(skillList)),
		Options: DefaultOptions,
	}

	for _, s := range skillList {
		g.Nodes = append(g.Nodes, newNode(s))
	}

	known := make(map[string]bool, len(skillList))
	for _, s := range skillList {
		known[s] = true
	}
	dangling := map[string]bool{}
	for _, skill := range dependencyOrder(skillList, deps) {
		for _, pre := range deps[skill] {
			g.Edges = append(g.Edges, Edge{From: pre, To: skill, Style: DefaultEdgeStyle})
			for _, id := range []string{pre, skill} {
				if !known[id] {
					dangling[id] = true
				}
			}
		}
	}
	for id := range dangling {
		g.Dangling = append(g.Dangling, id)
	}
	sort.Strings(g.Dangling)

	g.CyclesBroken = assignRows(&g)
	return g
}

func newNode(skill string) Node {
	c := skills.Classify(skill)
	return Node{
		ID:       skill,
		Label:    skill,
		Category: c.Name,
		Icon:     c.Icon,
		Level:    c.Level,
		Size:     BaseSize + c.Level*SizePerLevel,
		Style:    categoryStyles[c.Name],
	}
}

func dependencyOrder(skillList []string, deps map[string][]string) []string {
	order := make([]string, 0, len(deps))
	seen := make(map[string]bool, len(deps))
	for _, s := range skillList {
		if _, ok := deps[s]; ok && !seen[s] {
			seen[s] = true
			order = append(order, s)
		}
	}
	var rest []string
	for k := range deps {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// assignRows layers the known skills and copies the rows onto g.Nodes. It
// returns the number of prerequisite edges dropped to break cycles.
func assignRows(g *Graph) int {
	d := dag.New()
	for _, n := range g.Nodes {
		_ = d.AddNode(dag.Node{ID: n.ID})
	}
	for _, e := range g.Edges {
		// Edges touching dangling skills are rejected here and play no part
		// in layering.
		_ = d.AddEdge(dag.Edge{From: e.From, To: e.To})
	}
	broken := transform.BreakCycles(d)
	transform.AssignLayers(d)

	for i := range g.Nodes {
		if n, ok := d.Node(g.Nodes[i].ID); ok {
			g.Nodes[i].Row = n.Row
		}
	}
	return broken
}

// Categories returns the distinct categories present in g, in the fixed
// category order. Useful for legends.
func (g *Graph) Categories() []skills.Category {
	present := map[string]bool{}
	for _, n := range g.Nodes {
		present[n.Category] = true
	}
	return slices.DeleteFunc(skills.Categories(), func(c skills.Category) bool {
		return !present[c.Name]
	})
}
