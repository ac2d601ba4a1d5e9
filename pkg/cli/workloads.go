package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/gather"
	"github.com/clusterscope/resource-gather/pkg/report"
)

func workloadsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "workloads",
		EnableShellCompletion: true,
		Usage:                 "Inventory container resource requests and limits per workload",
		Description: `Walks every namespace (minus exclusions) and records one row per
container of each deployment, deploymentconfig, and statefulset: CPU and
memory requests and limits, normalized to cores and binary units.

# Examples

Gather to a timestamped directory as CSV (default):
  resgather workloads

Gather to a fixed directory as JSON, skipping system namespaces:
  resgather workloads -o ./reports -t json --exclude-namespace 'openshift-*' --exclude-namespace 'kube-*'`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGather(ctx, cmd, "workload", func(ctx context.Context, g *gather.Gatherer) (report.Report, error) {
				return g.Workloads(ctx)
			})
		},
	}
}
