package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skewmatch/flow"
)

// ExampleSkewFlowFinder pushes flow through a network that models a single
// matching edge a-b. The augmenting path s->a->b'->t is mirrored by
// s->b->a'->t, so one augmentation saturates both.
func ExampleSkewFlowFinder() {
	net := flow.NewSkewNetwork()
	s, _ := net.AddVertex()
	a, _ := net.AddVertex()
	b, bSym := net.AddVertex()
	_, _ = net.AddArc(s, a, 1)
	_, _ = net.AddArc(s, b, 1)
	ab, _ := net.AddArc(a, bSym, 1)
	_ = net.SetSource(s)

	f := flow.NewSkewFlowFinder(net, flow.DefaultOptions())
	if err := f.Process(); err != nil {
		fmt.Println(err)
		return
	}
	v, _ := f.ArcValue(ab)
	fmt.Println("source flow:", f.SourceFlow())
	fmt.Println("edge arc:", v)
	// Output:
	// source flow: 2
	// edge arc: 1
}

// ExampleEdmondsKarp bounds the skew-symmetric flow with the plain max flow.
func ExampleEdmondsKarp() {
	net := flow.NewSkewNetwork()
	s, _ := net.AddVertex()
	a, _ := net.AddVertex()
	b, bSym := net.AddVertex()
	_, _ = net.AddArc(s, a, 3)
	_, _ = net.AddArc(s, b, 3)
	_, _ = net.AddArc(a, bSym, 2)
	_ = net.SetSource(s)

	mf, _ := flow.EdmondsKarp(context.Background(), net)
	fmt.Println(mf)
	// Output:
	// 4
}
