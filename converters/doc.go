// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so graphs prepared with gonum tooling can be matched and
// core graphs can be analysed with gonum algorithms. Compact uses the round
// trip to renumber a graph whose vertex ids have gaps; problem.FromGraph
// relies on it.
//
// Conversions are deterministic: gonum nodes and neighbors are visited in
// ascending id order, so the same gonum graph always yields the same core
// vertex ids, edge ids and adjacency order.
package converters
