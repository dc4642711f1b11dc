package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewmatch/builder"
	"github.com/katalvlaran/skewmatch/converters"
	"github.com/katalvlaran/skewmatch/core"
	"github.com/katalvlaran/skewmatch/problem"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	n, n2, rows, cols, degree int
	p                         float64
	seed                      int64
	nodeCap, setCap           int64
	multiplicity              int64
	cardinality               int
	perComponent              bool
	output                    string
}

// topologies maps topology names to constructors.
var topologies = map[string]func(o *generateOpts) builder.Constructor{
	"path":      func(o *generateOpts) builder.Constructor { return builder.Path(o.n) },
	"cycle":     func(o *generateOpts) builder.Constructor { return builder.Cycle(o.n) },
	"star":      func(o *generateOpts) builder.Constructor { return builder.Star(o.n) },
	"wheel":     func(o *generateOpts) builder.Constructor { return builder.Wheel(o.n) },
	"complete":  func(o *generateOpts) builder.Constructor { return builder.Complete(o.n) },
	"bipartite": func(o *generateOpts) builder.Constructor { return builder.CompleteBipartite(o.n, o.n2) },
	"grid":      func(o *generateOpts) builder.Constructor { return builder.Grid(o.rows, o.cols) },
	"random":    func(o *generateOpts) builder.Constructor { return builder.RandomSparse(o.n, o.p) },
	"regular":   func(o *generateOpts) builder.Constructor { return builder.RandomRegular(o.n, o.degree) },
}

func topologyNames() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		n:            6,
		n2:           3,
		rows:         3,
		cols:         3,
		degree:       3,
		p:            0.3,
		seed:         1,
		nodeCap:      1,
		setCap:       -1,
		multiplicity: 1,
		cardinality:  fromFile,
	}

	cmd := &cobra.Command{
		Use:       "generate [topology]",
		Short:     "Write a TOML problem for a standard graph topology",
		Long:      "Write a TOML problem for one of: " + strings.Join(topologyNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: topologyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.n, "n", opts.n, "vertex count (first side for bipartite)")
	cmd.Flags().IntVar(&opts.n2, "n2", opts.n2, "second side for bipartite")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().IntVar(&opts.degree, "degree", opts.degree, "degree for regular graphs")
	cmd.Flags().Float64Var(&opts.p, "p", opts.p, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().Int64Var(&opts.nodeCap, "node-cap", opts.nodeCap, "capacity of every node")
	cmd.Flags().Int64Var(&opts.setCap, "set-cap", opts.setCap, "capacity of the top-level set (default: sum of node capacities)")
	cmd.Flags().Int64Var(&opts.multiplicity, "multiplicity", opts.multiplicity, "max multiplicity of every edge")
	cmd.Flags().IntVarP(&opts.cardinality, "cardinality", "k", opts.cardinality, "requested cardinality (default: half the vertex count)")
	cmd.Flags().BoolVar(&opts.perComponent, "per-component", false, "add one child set per connected component")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, topology string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	mk, ok := topologies[topology]
	if !ok {
		return errors.Newf("unknown topology %q (want one of %s)", topology, strings.Join(topologyNames(), ", "))
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(opts.seed)}, mk(opts))
	if err != nil {
		return err
	}
	logger.Infof("Generated %s: %d vertices, %d edges", topology, g.VertexCount(), g.EdgeCount())

	p, err := problem.FromGraph(g, cardinalityFor(g, opts), opts.multiplicity, setsFor(g, opts))
	if err != nil {
		return err
	}

	if opts.output == "" {
		return problem.Encode(out, p)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return errors.Wrapf(err, "create %s", opts.output)
	}
	defer f.Close()
	if err := problem.Encode(f, p); err != nil {
		return err
	}
	logger.Infof("Wrote %s", opts.output)

	return nil
}

func cardinalityFor(g *core.Graph, opts *generateOpts) int {
	if opts.cardinality != fromFile {
		return opts.cardinality
	}

	return g.VertexCount() / 2
}

// setsFor returns one set "all" holding every vertex, or with perComponent
// an empty "all" parent over one set per connected component.
func setsFor(g *core.Graph, opts *generateOpts) []problem.Set {
	setCap := opts.setCap
	if setCap < 0 {
		setCap = int64(g.VertexCount()) * opts.nodeCap
	}
	if !opts.perComponent {
		return []problem.Set{{
			Name:         "all",
			Capacity:     setCap,
			NodeCapacity: opts.nodeCap,
			Nodes:        g.Vertices(),
		}}
	}

	sets := []problem.Set{{Name: "all", Capacity: setCap, Nodes: []int{}}}
	for i, comp := range converters.Components(g) {
		sets = append(sets, problem.Set{
			Name:         fmt.Sprintf("component-%d", i),
			Parent:       "all",
			Capacity:     int64(len(comp)) * opts.nodeCap,
			NodeCapacity: opts.nodeCap,
			Nodes:        comp,
		})
	}

	return sets
}
