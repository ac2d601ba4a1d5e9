package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/logging"
	"github.com/clusterscope/resource-gather/pkg/version"
)

// New builds the resgather root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "resgather",
		Usage:                 "Gather workload, quota, and node resource reports from a cluster",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLogger("resgather", version.Version,
				cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			workloadsCmd(),
			quotasLimitsCmd(),
			nodesCmd(),
			publishCmd(),
			versionCmd(),
		},
	}
}

// globalFlags are shared by every gather subcommand. Flag values override
// the config file, which in turn overrides built-in defaults.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to a YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "kubeconfig",
			Usage: "path to the kubeconfig file (api source only; default: autodetect)",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "collection source: 'cli' (shell out to oc/kubectl) or 'api' (client-go)",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "report output directory (default: timestamped resource-gather_* directory)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Usage:   "report output format: csv, json, or yaml",
		},
		&cli.StringSliceFlag{
			Name:  "exclude-namespace",
			Usage: "namespace pattern to skip (prefix*, *suffix, *contains*, or exact; can be repeated)",
		},
		&cli.StringFlag{
			Name:  "metrics-listen",
			Usage: "address for the Prometheus metrics listener during the run (e.g., :9090; default: disabled)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging and echo reports to stdout",
		},
		&cli.BoolFlag{
			Name:  "log-json",
			Usage: "output logs in JSON format",
		},
	}
}
