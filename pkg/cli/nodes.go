package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/gather"
	"github.com/clusterscope/resource-gather/pkg/report"
)

func nodesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "nodes",
		EnableShellCompletion: true,
		Usage:                 "Report per-node capacity, allocation, and running pods",
		Description: `Records one block per node: allocatable capacity, the allocated
CPU and memory totals parsed from the node description, and one row per
non-terminated pod with its requests and limits.

Nodes are gathered concurrently; a node whose description cannot be
fetched still appears with its capacity columns.

# Examples

Gather to a timestamped directory as CSV (default):
  resgather nodes

Gather as JSON with a metrics listener for the duration of the run:
  resgather nodes -t json --metrics-listen :9090`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGather(ctx, cmd, "nodes", func(ctx context.Context, g *gather.Gatherer) (report.Report, error) {
				return g.Nodes(ctx)
			})
		},
	}
}
