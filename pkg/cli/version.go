package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Println(version.String())
			return nil
		},
	}
}
