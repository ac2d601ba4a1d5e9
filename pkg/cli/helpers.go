package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clusterscope/resource-gather/pkg/config"
	"github.com/clusterscope/resource-gather/pkg/report"
	"github.com/clusterscope/resource-gather/pkg/serializer"
)

// resolveConfig builds the effective configuration for a command:
// defaults, then the config file, then explicit flags.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("kubeconfig") {
		cfg.Kubeconfig = cmd.String("kubeconfig")
	}
	if cmd.IsSet("source") {
		cfg.Source = cmd.String("source")
	}
	if cmd.IsSet("output-dir") {
		cfg.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
	if cmd.IsSet("exclude-namespace") {
		cfg.ExcludeNamespaces = cmd.StringSlice("exclude-namespace")
	}
	if cmd.IsSet("metrics-listen") {
		cfg.MetricsListen = cmd.String("metrics-listen")
	}
	if cmd.Bool("debug") {
		cfg.Debug = true
	}
	if cmd.Bool("log-json") {
		cfg.LogJSON = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseOutputFormat validates the output format, suggesting the closest
// supported format on a near miss.
func parseOutputFormat(raw string) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(raw))
	if !f.IsUnknown() {
		return f, nil
	}
	if suggestion := closestFormat(raw); suggestion != "" {
		return "", fmt.Errorf("unknown output format: %q (did you mean %q?)", raw, suggestion)
	}
	return "", fmt.Errorf("unknown output format: %q, valid formats are: %v", raw, serializer.Formats)
}

// closestFormat returns the supported format within edit distance 2 of
// raw, or "" when nothing is close enough to suggest.
func closestFormat(raw string) string {
	lower := strings.ToLower(raw)
	best, bestDist := "", 3
	for _, f := range serializer.Formats {
		if d := levenshtein.ComputeDistance(lower, string(f)); d < bestDist {
			best, bestDist = string(f), d
		}
	}
	return best
}

// reportDir resolves and creates the output directory for a run. An
// unset OutputDir yields a timestamped directory under the working dir.
func reportDir(cfg *config.Config) (string, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "resource-gather_" + time.Now().Format("20060102_150405")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return dir, nil
}

// printRunSummary prints a short human-readable summary of a completed
// gather run.
func printRunSummary(rep report.Report, dir string, elapsed time.Duration) {
	p := message.NewPrinter(language.English)
	p.Printf("\nGathered %d rows for the %s report\n", rep.Len(), rep.Kind())
	p.Printf("Output directory: %s\n", dir)
	p.Printf("Elapsed: %.2fs\n", elapsed.Seconds())
}
