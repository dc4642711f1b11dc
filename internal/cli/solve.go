package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/problem"
	"github.com/katalvlaran/skewmatch/render"
)

// fromFile marks a cardinality flag left at its default.
const fromFile = -1

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	cardinality int    // overrides the file's cardinality when >= 0
	dotPath     string // network DOT output
	svgPath     string // matching SVG output
	noCheck     bool   // skip the flow consistency check
	bound       bool   // also compute the plain max-flow bound
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{cardinality: fromFile}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find a constrained b-matching for a TOML problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.cardinality, "cardinality", "k", opts.cardinality, "requested number of matched edges (default: from file)")
	cmd.Flags().StringVar(&opts.dotPath, "dot", "", "write the solved network as DOT to this path")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write the matched graph as SVG to this path")
	cmd.Flags().BoolVar(&opts.noCheck, "no-check", false, "skip the flow consistency check")
	cmd.Flags().BoolVar(&opts.bound, "bound", false, "report the plain max-flow upper bound")

	return cmd
}

func runSolve(ctx context.Context, out io.Writer, path string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	p, err := problem.Load(path)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d vertices, %d edges, %d sets", path, p.Vertices, len(p.Edges), len(p.Sets))

	in, err := p.Build(flow.FlowOptions{Logger: logger, CheckConsistency: !opts.noCheck})
	if err != nil {
		return err
	}

	k := p.Cardinality
	if opts.cardinality != fromFile {
		k = opts.cardinality
	}

	prog := newProgress(logger)
	res, err := in.Solve(k)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Matched %d of %d", res.Achieved, res.Requested))

	writeResult(out, p, res)

	if opts.bound {
		mf, err := flow.EdmondsKarp(ctx, in.Finder.Network())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "max-flow bound: %d edges\n", mf/2)
	}

	if opts.dotPath != "" {
		dot, err := render.NetworkDOT(in.Finder.Network(), in.Finder.Labels(), in.Finder.ArcValue)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.dotPath, []byte(dot), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", opts.dotPath)
		}
		logger.Infof("Wrote %s", opts.dotPath)
	}

	if opts.svgPath != "" {
		svg, err := render.RenderSVG(ctx, render.MatchingDOT(in.Graph, res.Matched))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svgPath, svg, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", opts.svgPath)
		}
		logger.Infof("Wrote %s", opts.svgPath)
	}

	return nil
}

// writeResult prints the summary line, the matched edges and the set loads.
func writeResult(out io.Writer, p *problem.Problem, res *problem.Result) {
	fmt.Fprintf(out, "requested: %d  matched: %d  exact: %t\n", res.Requested, res.Achieved, res.Exact)

	edges := table.NewWriter()
	edges.SetOutputMirror(out)
	edges.SetStyle(table.StyleLight)
	edges.AppendHeader(table.Row{"Edge", "From", "To", "Multiplicity"})
	for _, m := range res.Matched {
		edges.AppendRow(table.Row{m.Edge, m.Beg, m.End, m.Multiplicity})
	}
	edges.AppendFooter(table.Row{"", "", "Total", res.Achieved})
	edges.Render()

	if len(p.Sets) == 0 {
		return
	}
	sets := table.NewWriter()
	sets.SetOutputMirror(out)
	sets.SetStyle(table.StyleLight)
	sets.AppendHeader(table.Row{"Set", "Parent", "Load", "Capacity"})
	for _, s := range p.Sets {
		parent := s.Parent
		if parent == "" {
			parent = "-"
		}
		sets.AppendRow(table.Row{s.Name, parent, res.SetLoads[s.Name], s.Capacity})
	}
	sets.Render()
}
