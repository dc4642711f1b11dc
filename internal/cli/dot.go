package cli

import (
	"context"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewmatch/flow"
	"github.com/katalvlaran/skewmatch/problem"
	"github.com/katalvlaran/skewmatch/render"
)

// dotOpts holds the flags of the dot command.
type dotOpts struct {
	network bool   // draw the flow network instead of the graph
	svg     bool   // lay out with Graphviz and emit SVG
	output  string // output path, stdout when empty
}

func newDotCmd() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Draw a solved problem as DOT or SVG",
		Long:  "Solve the problem at its file cardinality and draw the matched graph, or with --network the flow network with flow/capacity labels.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.network, "network", false, "draw the flow network")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "emit SVG instead of DOT")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runDot(ctx context.Context, out io.Writer, path string, opts *dotOpts) error {
	logger := loggerFromContext(ctx)

	p, err := problem.Load(path)
	if err != nil {
		return err
	}
	in, err := p.Build(flow.FlowOptions{Logger: logger, CheckConsistency: true})
	if err != nil {
		return err
	}
	res, err := in.Solve(p.Cardinality)
	if err != nil {
		return err
	}

	var dot string
	if opts.network {
		if dot, err = render.NetworkDOT(in.Finder.Network(), in.Finder.Labels(), in.Finder.ArcValue); err != nil {
			return err
		}
	} else {
		dot = render.MatchingDOT(in.Graph, res.Matched)
	}

	data := []byte(dot)
	if opts.svg {
		if data, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = out.Write(data)
		return errors.Wrap(err, "write output")
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", opts.output)
	}
	logger.Infof("Wrote %s", opts.output)

	return nil
}
