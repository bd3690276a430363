// Package render converts rendered documents between formats using external
// tools.
//
// SVG graphs become PDF or PNG through rsvg-convert (librsvg), and HTML
// documents become PDF through wkhtmltopdf. Both tools read stdin and write
// stdout, so nothing touches the filesystem.
//
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
//	pdf, err := render.ToPDF(ctx, svg)
//
// The [nodelink] subpackage draws skill graphs with Graphviz.
//
// [nodelink]: github.com/matzehuels/careermap/pkg/render/nodelink
package render
