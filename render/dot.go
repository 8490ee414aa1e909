package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// Options configures diagram output.
type Options struct {
	// Title is drawn above the chain; empty omits it.
	Title string
	// Legs labels every edge with its length.
	Legs bool
	// Precision is the number of decimals used for lengths.
	Precision int
}

// DefaultOptions labels legs with one decimal.
func DefaultOptions() Options {
	return Options{Legs: true, Precision: 1}
}

// ToDOT converts a path to Graphviz DOT. The origin is double-circled.
func ToDOT(p Path, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", fmt.Sprintf("%s (%s)", opts.Title, formatLength(p.Length, opts.Precision)))
	}
	buf.WriteString("\n")

	for k, s := range p.Stops {
		if k == 0 {
			fmt.Fprintf(&buf, "  %q [shape=doublecircle];\n", s)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", s)
	}

	buf.WriteString("\n")
	for k := 0; k+1 < len(p.Stops); k++ {
		if opts.Legs && k < len(p.Legs) {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", p.Stops[k], p.Stops[k+1], formatLength(p.Legs[k], opts.Precision))
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", p.Stops[k], p.Stops[k+1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out a DOT graph and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func formatLength(v float64, precision int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
