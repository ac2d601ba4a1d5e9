// Package gather orchestrates the collection of whole reports: it walks
// namespaces and nodes through a collector backend, hands each fetched
// document to the report layer, and never lets a single failed entity
// abort the run — a fetch error means "no record for this entity".
package gather

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/clusterscope/resource-gather/pkg/collector"
	"github.com/clusterscope/resource-gather/pkg/config"
	"github.com/clusterscope/resource-gather/pkg/report"
)

// Gatherer runs report collection against one cluster.
type Gatherer struct {
	client  collector.Client
	cfg     *config.Config
	version string
	runID   string
}

// Option configures a Gatherer.
type Option func(*Gatherer)

// WithConfig sets the gather configuration.
func WithConfig(cfg *config.Config) Option {
	return func(g *Gatherer) { g.cfg = cfg }
}

// WithVersion records the tool version in run manifests.
func WithVersion(version string) Option {
	return func(g *Gatherer) { g.version = version }
}

// New creates a Gatherer over the given collector backend. Every Gatherer
// carries a unique run ID.
func New(client collector.Client, opts ...Option) *Gatherer {
	g := &Gatherer{
		client: client,
		cfg:    config.Default(),
		runID:  uuid.New().String(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RunID returns the unique identifier of this gather run.
func (g *Gatherer) RunID() string { return g.runID }

// Workloads inventories container requests and limits for every workload
// type in every non-excluded namespace.
func (g *Gatherer) Workloads(ctx context.Context) (*report.WorkloadReport, error) {
	start := time.Now()
	defer func() {
		gatherDuration.WithLabelValues("workloads").Observe(time.Since(start).Seconds())
	}()

	namespaces, err := g.namespaces(ctx)
	if err != nil {
		return nil, err
	}

	rep := &report.WorkloadReport{}
	for _, ns := range namespaces {
		for _, workloadType := range g.cfg.WorkloadTypes {
			names, err := g.client.Names(ctx, ns, workloadType)
			if err != nil {
				collectorCalls.WithLabelValues("names", "error").Inc()
				slog.Debug("skipping workload type",
					slog.String("namespace", ns),
					slog.String("type", workloadType),
					slog.String("error", err.Error()),
				)
				continue
			}
			collectorCalls.WithLabelValues("names", "success").Inc()

			for _, name := range names {
				obj, err := g.client.Get(ctx, ns, workloadType, name)
				if err != nil {
					collectorCalls.WithLabelValues("get", "error").Inc()
					slog.Debug("no record for workload",
						slog.String("namespace", ns),
						slog.String("type", workloadType),
						slog.String("name", name),
						slog.String("error", err.Error()),
					)
					continue
				}
				collectorCalls.WithLabelValues("get", "success").Inc()
				rep.Rows = append(rep.Rows, report.WorkloadRows(ns, workloadType, name, obj)...)
			}
		}
	}

	reportRows.WithLabelValues(rep.Kind()).Add(float64(rep.Len()))
	slog.Info("gathered workloads",
		slog.Int("namespaces", len(namespaces)),
		slog.Int("rows", rep.Len()),
	)
	return rep, nil
}

// QuotasLimits inventories resource quota and limit range detail for
// every non-excluded namespace. Quotas are walked first, then limit
// ranges, matching the report's section order.
func (g *Gatherer) QuotasLimits(ctx context.Context) (*report.QuotaLimitsReport, error) {
	start := time.Now()
	defer func() {
		gatherDuration.WithLabelValues("quotas-limits").Observe(time.Since(start).Seconds())
	}()

	namespaces, err := g.namespaces(ctx)
	if err != nil {
		return nil, err
	}

	rep := &report.QuotaLimitsReport{}
	for _, ns := range namespaces {
		for _, name := range g.resourceNames(ctx, ns, "resourcequota") {
			obj, err := g.client.Get(ctx, ns, "resourcequota", name)
			if err != nil {
				collectorCalls.WithLabelValues("get", "error").Inc()
				slog.Debug("no record for resource quota",
					slog.String("namespace", ns),
					slog.String("name", name),
					slog.String("error", err.Error()),
				)
				continue
			}
			collectorCalls.WithLabelValues("get", "success").Inc()
			rep.Quotas = append(rep.Quotas, report.QuotaRowFrom(ns, name, obj))
		}
	}

	for _, ns := range namespaces {
		for _, name := range g.resourceNames(ctx, ns, "limitrange") {
			obj, err := g.client.Get(ctx, ns, "limitrange", name)
			if err != nil {
				collectorCalls.WithLabelValues("get", "error").Inc()
				slog.Debug("no record for limit range",
					slog.String("namespace", ns),
					slog.String("name", name),
					slog.String("error", err.Error()),
				)
				continue
			}
			collectorCalls.WithLabelValues("get", "success").Inc()
			rep.LimitRanges = append(rep.LimitRanges, report.LimitRangeRowFrom(ns, name, obj))
		}
	}

	reportRows.WithLabelValues(rep.Kind()).Add(float64(rep.Len()))
	slog.Info("gathered quotas and limit ranges",
		slog.Int("namespaces", len(namespaces)),
		slog.Int("quotas", len(rep.Quotas)),
		slog.Int("limit_ranges", len(rep.LimitRanges)),
	)
	return rep, nil
}

// Nodes gathers the per-node summary and pod detail rows. Nodes are
// fetched concurrently up to the configured bound; output preserves the
// listing order. A node whose JSON document cannot be fetched produces no
// block; a node whose describe text cannot be fetched still produces a
// block with empty allocation fields.
func (g *Gatherer) Nodes(ctx context.Context) (*report.NodesReport, error) {
	start := time.Now()
	defer func() {
		gatherDuration.WithLabelValues("nodes").Observe(time.Since(start).Seconds())
	}()

	names, err := g.client.Nodes(ctx)
	if err != nil {
		collectorCalls.WithLabelValues("nodes", "error").Inc()
		return nil, err
	}
	collectorCalls.WithLabelValues("nodes", "success").Inc()

	results := make([]*report.NodeReport, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Concurrency)

	for i, name := range names {
		eg.Go(func() error {
			obj, err := g.client.Get(ctx, "", "node", name)
			if err != nil {
				collectorCalls.WithLabelValues("get", "error").Inc()
				slog.Debug("no record for node",
					slog.String("node", name),
					slog.String("error", err.Error()),
				)
				return nil
			}
			collectorCalls.WithLabelValues("get", "success").Inc()

			text, err := g.client.DescribeNode(ctx, name)
			if err != nil {
				collectorCalls.WithLabelValues("describe", "error").Inc()
				slog.Debug("describe unavailable for node",
					slog.String("node", name),
					slog.String("error", err.Error()),
				)
				text = ""
			} else {
				collectorCalls.WithLabelValues("describe", "success").Inc()
			}

			node := report.NodeReportFrom(name, obj, text)
			results[i] = &node
			return nil
		})
	}

	// Workers degrade per node instead of failing; Wait only propagates
	// context cancellation.
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep := &report.NodesReport{}
	for _, node := range results {
		if node != nil {
			rep.Nodes = append(rep.Nodes, *node)
		}
	}

	reportRows.WithLabelValues(rep.Kind()).Add(float64(rep.Len()))
	slog.Info("gathered nodes", slog.Int("nodes", len(rep.Nodes)))
	return rep, nil
}

func (g *Gatherer) namespaces(ctx context.Context) ([]string, error) {
	names, err := g.client.Namespaces(ctx)
	if err != nil {
		collectorCalls.WithLabelValues("namespaces", "error").Inc()
		return nil, err
	}
	collectorCalls.WithLabelValues("namespaces", "success").Inc()

	filtered := FilterNamespaces(names, g.cfg.ExcludeNamespaces)
	if len(filtered) != len(names) {
		slog.Debug("excluded namespaces",
			slog.Int("total", len(names)),
			slog.Int("kept", len(filtered)),
		)
	}
	return filtered, nil
}

func (g *Gatherer) resourceNames(ctx context.Context, namespace, resource string) []string {
	names, err := g.client.Names(ctx, namespace, resource)
	if err != nil {
		collectorCalls.WithLabelValues("names", "error").Inc()
		slog.Debug("skipping resource listing",
			slog.String("namespace", namespace),
			slog.String("resource", resource),
			slog.String("error", err.Error()),
		)
		return nil
	}
	collectorCalls.WithLabelValues("names", "success").Inc()
	return names
}
