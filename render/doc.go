// Package render draws a solved tour as a Graphviz diagram.
//
// ToDOT writes the tour as a left-to-right chain (origin first, edge labels
// carrying leg lengths) and RenderSVG lays it out in-process with
// [github.com/goccy/go-graphviz], so no dot binary is needed.
package render
