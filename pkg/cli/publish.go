package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/oci"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Push a gathered report directory to an OCI registry",
		Description: `Packages a previously gathered report directory as an OCI artifact
and pushes it to a registry, so report runs can be archived and shared
with standard registry tooling.

# Examples

Push a report run to a registry:
  resgather publish --dir ./resource-gather_20260826_120000 \
    --registry ghcr.io --repository acme/cluster-reports --tag 2026-08-26

Push to a local development registry:
  resgather publish --dir ./reports --registry localhost:5000 \
    --repository reports --plain-http`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "report directory to publish",
			},
			&cli.StringFlag{
				Name:     "registry",
				Required: true,
				Usage:    "OCI registry host (e.g., ghcr.io, localhost:5000)",
			},
			&cli.StringFlag{
				Name:     "repository",
				Required: true,
				Usage:    "OCI repository path (e.g., acme/cluster-reports)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "OCI artifact tag (default: latest)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the registry",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry (local development)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			registry := cmd.String("registry")
			repository := cmd.String("repository")
			tag := cmd.String("tag")

			if err := oci.ValidateRegistryReference(registry, repository); err != nil {
				return err
			}

			dir, err := filepath.Abs(cmd.String("dir"))
			if err != nil {
				return fmt.Errorf("failed to resolve report directory: %w", err)
			}
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("report directory %q does not exist", dir)
			}

			slog.Info("publishing report to OCI registry",
				slog.String("dir", dir),
				slog.String("registry", registry),
				slog.String("repository", repository),
			)

			packaged, err := oci.Package(ctx, oci.PackageOptions{
				SourceDir:  dir,
				OutputDir:  dir,
				Registry:   registry,
				Repository: repository,
				Tag:        tag,
			})
			if err != nil {
				return fmt.Errorf("failed to package report artifact: %w", err)
			}

			slog.Info("report artifact packaged",
				slog.String("reference", packaged.Reference),
				slog.String("digest", packaged.Digest),
				slog.Int("files", packaged.Files),
			)

			pushed, err := oci.PushFromStore(ctx, packaged.StorePath, oci.PushOptions{
				Registry:    registry,
				Repository:  repository,
				Tag:         tag,
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure-tls"),
			})
			if err != nil {
				return fmt.Errorf("failed to push report artifact: %w", err)
			}

			slog.Info("report artifact pushed",
				slog.String("reference", pushed.Reference),
				slog.String("digest", pushed.Digest),
			)

			fmt.Printf("Pushed %s\n", pushed.Reference)
			return nil
		},
	}
}
