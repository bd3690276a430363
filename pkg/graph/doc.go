// Package graph turns a roadmap's skills and prerequisites into a renderer
// neutral node/edge description.
//
// [Build] emits exactly one [Node] per skill and one [Edge] per
// (skill, prerequisite) pair, oriented prerequisite → skill. Node styling is
// derived from the skill's category: the background is the category color,
// the border is that color darkened by 20%, and the highlight background is
// the color lightened by 20%. Node size grows with the category level
// (35 + 12 × level). Every edge shares one style.
//
// Rendering is someone else's job. The JSON form of [Graph] is what the HTTP
// API serves to browser renderers, and the nodelink package draws the same
// value with Graphviz. [Options] carries the hierarchical layout settings a
// renderer is expected to apply (top-down, physics disabled).
//
// # Dangling prerequisites
//
// Prerequisite data can name skills that are not in the skill list. Build
// still emits those edges so the one-edge-per-pair contract holds, and lists
// the missing skill names in [Graph.Dangling]. Renderers draw such endpoints
// as placeholders; strict callers can reject the roadmap up front with
// roadmap.Validate.
//
// # Rows
//
// Besides the renderer options, Build assigns each node a [Node.Row]: the
// length of its longest prerequisite chain, computed after breaking any
// prerequisite cycles. Renderers without their own hierarchical layout can
// use it directly.
package graph
