// Package problem reads and writes constrained b-matching instances as TOML
// and turns them into ready-to-solve finders.
//
// A problem file lists the graph (vertex count and edges), the constraint
// sets and the requested cardinality:
//
//	cardinality = 2
//	vertices = 3
//
//	[[edges]]
//	from = 0
//	to = 1
//	max_multiplicity = 1
//
//	[[sets]]
//	name = "all"
//	capacity = 2
//	node_capacity = 1
//	nodes = [0, 1, 2]
//
//	  [[sets.overrides]]
//	  node = 2
//	  capacity = 0
//
// Sets refer to their parent by name; an empty parent makes a top-level set.
// node_capacity applies to every node of the set unless an override names
// the node. Edge ids follow the order of [[edges]].
package problem
