// SPDX-License-Identifier: MIT
// Package: skewmatch/builder
//
// helpers.go - shared internals for constructors.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/core"
)

// builderErrorf wraps sentinel with "<method>: <formatted message>" context.
func builderErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}

// addVertices appends n fresh vertices to g and returns their ids in
// creation order.
// Complexity: O(n).
func addVertices(g *core.Graph, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}

	return ids
}

// addEdge inserts u-v and tags any failure with method.
func addEdge(g *core.Graph, method string, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%d, %d)", method, u, v)
	}

	return nil
}

// addCompleteEdges adds every pair of ids, i<j, in lexicographic index order.
// Complexity: O(len(ids)²).
func addCompleteEdges(g *core.Graph, method string, ids []int) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
