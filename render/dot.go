package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/matching"
)

// ArcValueFunc reports the flow on a network arc. A nil func draws every
// arc with flow 0.
type ArcValueFunc func(arc int) (int64, error)

// NetworkDOT writes net as a digraph. labels names vertices; unnamed
// vertices fall back to their id. Source and sink are drawn as boxes.
func NetworkDOT(net *flow.SkewNetwork, labels map[int]string, value ArcValueFunc) (string, error) {
	var b strings.Builder
	b.WriteString("digraph network {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=ellipse, fontname=\"Helvetica\"];\n")

	for _, v := range net.Vertices() {
		label, ok := labels[v]
		if !ok {
			label = fmt.Sprint(v)
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if v == net.Source() || v == net.Sink() {
			attrs = append(attrs, "shape=box")
		}
		fmt.Fprintf(&b, "  n%d [%s];\n", v, strings.Join(attrs, ", "))
	}

	for _, a := range net.Arcs() {
		var f int64
		if value != nil {
			var err error
			if f, err = value(a.ID); err != nil {
				return "", err
			}
		}
		attrs := []string{fmt.Sprintf("label=\"%d/%d\"", f, a.Capacity)}
		if f > 0 {
			attrs = append(attrs, "penwidth=2", "color=\"#1f77b4\"")
		} else if a.Capacity == 0 {
			attrs = append(attrs, "style=dotted")
		}
		fmt.Fprintf(&b, "  n%d -> n%d [%s];\n", a.From, a.To, strings.Join(attrs, ", "))
	}

	b.WriteString("}\n")

	return b.String(), nil
}

// MatchingDOT writes g as an undirected graph with the matched edges
// highlighted.
func MatchingDOT(g *core.Graph, matched []matching.EdgeMultiplicity) string {
	mult := make(map[int]int64, len(matched))
	for _, m := range matched {
		mult[m.Edge] = m.Multiplicity
	}

	var b strings.Builder
	b.WriteString("graph matching {\n")
	b.WriteString("  node [shape=circle, fontname=\"Helvetica\"];\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "  v%d [label=\"%d\"];\n", v, v)
	}
	for _, e := range g.Edges() {
		if m := mult[e.ID]; m > 0 {
			fmt.Fprintf(&b, "  v%d -- v%d [label=\"x%d\", penwidth=3, color=\"#d62728\"];\n", e.Beg, e.End, m)
			continue
		}
		fmt.Fprintf(&b, "  v%d -- v%d [color=grey];\n", e.Beg, e.End)
	}
	b.WriteString("}\n")

	return b.String()
}
