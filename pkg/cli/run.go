package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/collector"
	"github.com/clusterscope/resource-gather/pkg/gather"
	"github.com/clusterscope/resource-gather/pkg/report"
	"github.com/clusterscope/resource-gather/pkg/serializer"
	"github.com/clusterscope/resource-gather/pkg/server"
	"github.com/clusterscope/resource-gather/pkg/version"
)

// gatherFunc produces one report from a configured gatherer.
type gatherFunc func(context.Context, *gather.Gatherer) (report.Report, error)

// runGather is the shared flow behind the workloads, quotas-limits, and
// nodes commands: resolve config, collect, serialize to the report
// directory, and write the run manifest.
func runGather(ctx context.Context, cmd *cli.Command, fileBase string, run gatherFunc) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	outFormat, err := parseOutputFormat(cfg.Format)
	if err != nil {
		return err
	}

	client, err := collector.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create collector: %w", err)
	}

	g := gather.New(client,
		gather.WithConfig(cfg),
		gather.WithVersion(version.Version),
	)

	slog.Info("starting gather run",
		slog.String("report", fileBase),
		slog.String("source", cfg.Source),
		slog.String("run_id", g.RunID()),
	)

	// The metrics listener, when enabled, serves for the duration of
	// the run and shuts down with it.
	var wg sync.WaitGroup
	if cfg.MetricsListen != "" {
		srvCtx, cancel := context.WithCancel(ctx)
		defer func() {
			cancel()
			wg.Wait()
		}()

		srv := server.New(server.DefaultConfig(cfg.MetricsListen))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Start(srvCtx); err != nil {
				slog.Error("metrics listener error", "error", err)
			}
		}()
	}

	started := time.Now()
	rep, err := run(ctx, g)
	if err != nil {
		slog.Error("gather run failed", "error", err, "report", fileBase)
		return err
	}
	completed := time.Now()

	dir, err := reportDir(cfg)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, fileBase+"."+outFormat.Extension())
	w, err := serializer.NewFileWriter(outFormat, path)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	if err := w.Serialize(ctx, rep); err != nil {
		w.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	if err := gather.WriteManifest(dir, g.Manifest(rep, started, completed)); err != nil {
		return err
	}

	if cfg.Debug {
		if err := serializer.NewStdoutWriter(outFormat).Serialize(ctx, rep); err != nil {
			slog.Warn("failed to echo report to stdout", "error", err)
		}
	}

	slog.Info("gather run completed",
		slog.String("report", fileBase),
		slog.String("path", path),
		slog.Int("rows", rep.Len()),
		slog.Duration("elapsed", completed.Sub(started)),
	)

	printRunSummary(rep, dir, completed.Sub(started))
	return nil
}
