// Package nodelink draws skill graphs as Graphviz node-link diagrams.
//
// [ToDOT] turns a graph.Graph into DOT source: top-to-bottom ranks, boxes
// filled with the category color and outlined with the darker border
// color, curved gray edges with arrowheads at the dependent skill.
// Prerequisites that are not part of the skill list are drawn as dashed
// gray placeholders.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// SVG rendering runs in-process via [github.com/goccy/go-graphviz]; PDF
// and PNG go through rsvg-convert.
package nodelink
