package graph

// =============================================================================
// Graph
// =============================================================================

// Graph is the view-model handed to renderers.
type Graph struct {
	Nodes   []Node  `json:"nodes" bson:"nodes"`
	Edges   []Edge  `json:"edges" bson:"edges"`
	Options Options `json:"options" bson:"options"`

	// Dangling lists prerequisite references to skills missing from Nodes.
	Dangling []string `json:"dangling,omitempty" bson:"dangling,omitempty"`
	// CyclesBroken counts prerequisite edges ignored when computing rows.
	CyclesBroken int `json:"cycles_broken,omitempty" bson:"cycles_broken,omitempty"`
}

// NodeIDs returns node IDs in emission order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Node returns the first node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// IsDangling reports whether id is a prerequisite reference without a node.
func (g *Graph) IsDangling(id string) bool {
	for _, d := range g.Dangling {
		if d == id {
			return true
		}
	}
	return false
}

// =============================================================================
// Node
// =============================================================================

// Node is one skill.
type Node struct {
	ID       string    `json:"id" bson:"id"`
	Label    string    `json:"label" bson:"label"`
	Category string    `json:"category" bson:"category"`
	Icon     string    `json:"icon" bson:"icon"`
	Level    int       `json:"level" bson:"level"`
	Size     int       `json:"size" bson:"size"`
	Row      int       `json:"row" bson:"row"`
	Style    NodeStyle `json:"style" bson:"style"`
}

// NodeStyle is the visual style derived from the skill's category.
type NodeStyle struct {
	Shape       string    `json:"shape" bson:"shape"`
	Background  string    `json:"background" bson:"background"`
	Border      string    `json:"border" bson:"border"`
	Highlight   Highlight `json:"highlight" bson:"highlight"`
	Font        Font      `json:"font" bson:"font"`
	Margin      int       `json:"margin" bson:"margin"`
	BorderWidth int       `json:"border_width" bson:"border_width"`
	Shadow      Shadow    `json:"shadow" bson:"shadow"`
}

// Highlight is the style applied to a selected or hovered node.
type Highlight struct {
	Background string `json:"background" bson:"background"`
	Border     string `json:"border" bson:"border"`
}

// Font describes node label text.
type Font struct {
	Color string `json:"color" bson:"color"`
	Size  int    `json:"size" bson:"size"`
	Face  string `json:"face" bson:"face"`
	Bold  bool   `json:"bold" bson:"bold"`
}

// Shadow is a drop shadow. Color is a CSS color.
type Shadow struct {
	Enabled bool   `json:"enabled" bson:"enabled"`
	Color   string `json:"color" bson:"color"`
	Size    int    `json:"size" bson:"size"`
	X       int    `json:"x" bson:"x"`
	Y       int    `json:"y" bson:"y"`
}

// =============================================================================
// Edge
// =============================================================================

// Edge points from a prerequisite to the skill that needs it.
type Edge struct {
	From  string    `json:"from" bson:"from"`
	To    string    `json:"to" bson:"to"`
	Style EdgeStyle `json:"style" bson:"style"`
}

// EdgeStyle is shared by all edges.
type EdgeStyle struct {
	Width     int     `json:"width" bson:"width"`
	Color     string  `json:"color" bson:"color"`
	Highlight string  `json:"highlight" bson:"highlight"`
	Opacity   float64 `json:"opacity" bson:"opacity"`
	Arrow     Arrow   `json:"arrow" bson:"arrow"`
	Smooth    Smooth  `json:"smooth" bson:"smooth"`
	Shadow    Shadow  `json:"shadow" bson:"shadow"`
}

// Arrow is the arrowhead drawn at the dependent skill.
type Arrow struct {
	Type        string  `json:"type" bson:"type"`
	ScaleFactor float64 `json:"scale_factor" bson:"scale_factor"`
}

// Smooth is the curve hint for edge rendering.
type Smooth struct {
	Type      string  `json:"type" bson:"type"`
	Roundness float64 `json:"roundness" bson:"roundness"`
}

// =============================================================================
// Options
// =============================================================================

// Options are renderer layout settings.
type Options struct {
	Layout  Hierarchical `json:"layout" bson:"layout"`
	Physics bool         `json:"physics" bson:"physics"`
}

// Hierarchical configures a layered top-down layout.
type Hierarchical struct {
	Direction            string `json:"direction" bson:"direction"`
	SortMethod           string `json:"sort_method" bson:"sort_method"`
	LevelSeparation      int    `json:"level_separation" bson:"level_separation"`
	NodeSpacing          int    `json:"node_spacing" bson:"node_spacing"`
	TreeSpacing          int    `json:"tree_spacing" bson:"tree_spacing"`
	BlockShifting        bool   `json:"block_shifting" bson:"block_shifting"`
	EdgeMinimization     bool   `json:"edge_minimization" bson:"edge_minimization"`
	ParentCentralization bool   `json:"parent_centralization" bson:"parent_centralization"`
	ShakeTowards         string `json:"shake_towards" bson:"shake_towards"`
}
