// Package render draws matching networks and matched graphs as Graphviz DOT
// and turns DOT into SVG in-process through go-graphviz.
//
// NetworkDOT shows every network arc as "flow/capacity"; arcs that carry
// flow are drawn bold. MatchingDOT shows the input graph with matched edges
// bold and labelled with their multiplicity.
package render
