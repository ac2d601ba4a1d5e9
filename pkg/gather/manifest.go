package gather

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/clusterscope/resource-gather/pkg/report"
)

const (
	// APIVersion is the manifest schema version.
	APIVersion = "resgather.clusterscope.io/v1alpha1"

	// ManifestKind is the manifest resource kind.
	ManifestKind = "GatherRun"

	// ManifestFileName is written next to each report.
	ManifestFileName = "run.yaml"
)

// Manifest records the provenance of one written report.
type Manifest struct {
	APIVersion  string    `yaml:"apiVersion"`
	Kind        string    `yaml:"kind"`
	RunID       string    `yaml:"runId"`
	Tool        string    `yaml:"tool"`
	Version     string    `yaml:"version"`
	Report      string    `yaml:"report"`
	Rows        int       `yaml:"rows"`
	StartedAt   time.Time `yaml:"startedAt"`
	CompletedAt time.Time `yaml:"completedAt"`
}

// Manifest builds the run manifest for a gathered report.
func (g *Gatherer) Manifest(rep report.Report, started, completed time.Time) Manifest {
	return Manifest{
		APIVersion:  APIVersion,
		Kind:        ManifestKind,
		RunID:       g.runID,
		Tool:        "resgather",
		Version:     g.version,
		Report:      rep.Kind(),
		Rows:        rep.Len(),
		StartedAt:   started.UTC(),
		CompletedAt: completed.UTC(),
	}
}

// WriteManifest persists the manifest as run.yaml in the report
// directory.
func WriteManifest(dir string, m Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialize run manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write run manifest: %w", err)
	}
	return nil
}
