package flow

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/skewmatch/core"
)

// EdmondsKarp computes the ordinary maximum flow from the network source to
// its sink, treating every arc as independent (mirror pairing ignored).
//
// Every skew-symmetric flow is also an ordinary flow, so the result is an
// upper bound on what SkewFlowFinder can reach. It is used as a reference in
// tests and by the CLI to report the gap.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, net *SkewNetwork) (int64, error) {
	// 1) Validate source/sink
	source, sink := net.Source(), net.Sink()
	if source == core.NoID {
		return 0, ErrSourceNotSet
	}

	// 2) Residual state: flow per arc id
	flow := make([]int64, net.ArcEnd())
	parentArc := make([]int, net.VertexEnd())
	queue := make([]int, 0, net.VertexEnd())

	var maxFlow int64
	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, errors.Wrap(err, "edmonds-karp")
		}

		// 3) BFS for the shortest path with positive residual capacity
		for i := range parentArc {
			parentArc[i] = core.NoID
		}
		queue = append(queue[:0], source)
		reached := false
		for len(queue) > 0 && !reached {
			u := queue[0]
			queue = queue[1:]
			nei, _ := net.g.Neighbors(u)
			for _, nb := range nei {
				v := nb.Vertex
				if v == source || parentArc[v] != core.NoID {
					continue
				}
				if residualFrom(net, flow, nb.Edge, u) <= 0 {
					continue
				}
				parentArc[v] = nb.Edge
				if v == sink {
					reached = true
					break
				}
				queue = append(queue, v)
			}
		}
		if !reached {
			return maxFlow, nil
		}

		// 4) Bottleneck along the path, walking back from the sink
		var bottle int64 = -1
		for v := sink; v != source; {
			e := parentArc[v]
			u := otherEnd(net, e, v)
			if r := residualFrom(net, flow, e, u); bottle < 0 || r < bottle {
				bottle = r
			}
			v = u
		}

		// 5) Augment
		for v := sink; v != source; {
			e := parentArc[v]
			u := otherEnd(net, e, v)
			if net.arcs[e].from == u {
				flow[e] += bottle
			} else {
				flow[e] -= bottle
			}
			v = u
		}
		maxFlow += bottle
	}
}

// residualFrom is the capacity left on arc when crossed starting at u:
// unused capacity forwards, cancellable flow backwards.
func residualFrom(net *SkewNetwork, flow []int64, arc, u int) int64 {
	if net.arcs[arc].from == u {
		return net.arcs[arc].capacity - flow[arc]
	}

	return flow[arc]
}

func otherEnd(net *SkewNetwork, arc, v int) int {
	if net.arcs[arc].from == v {
		return net.arcs[arc].to
	}

	return net.arcs[arc].from
}
