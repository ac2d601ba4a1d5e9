package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/gather"
	"github.com/clusterscope/resource-gather/pkg/report"
)

func quotasLimitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "quotas-limits",
		EnableShellCompletion: true,
		Usage:                 "Inventory resource quotas and limit ranges per namespace",
		Description: `Records every ResourceQuota (hard and used values) and every
LimitRange (default, defaultRequest, min, and max per limit type) across
the cluster. The CSV output carries both sections in one file, separated
by section markers.

# Examples

Gather to a timestamped directory as CSV (default):
  resgather quotas-limits

Gather as YAML to a fixed directory:
  resgather quotas-limits -o ./reports -t yaml`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGather(ctx, cmd, "quotas-limits", func(ctx context.Context, g *gather.Gatherer) (report.Report, error) {
				return g.QuotasLimits(ctx)
			})
		},
	}
}
