package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/clusterscope/resource-gather/pkg/config"
	"github.com/clusterscope/resource-gather/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    serializer.Format
		wantErr string
	}{
		{
			name: "csv",
			raw:  "csv",
			want: serializer.FormatCSV,
		},
		{
			name: "uppercase is accepted",
			raw:  "JSON",
			want: serializer.FormatJSON,
		},
		{
			name: "yaml",
			raw:  "yaml",
			want: serializer.FormatYAML,
		},
		{
			name:    "near miss suggests the closest format",
			raw:     "jsn",
			wantErr: `did you mean "json"`,
		},
		{
			name:    "typo in yaml",
			raw:     "yamll",
			wantErr: `did you mean "yaml"`,
		},
		{
			name:    "nothing close lists the valid formats",
			raw:     "parquet",
			wantErr: "valid formats are",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOutputFormat(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	var got *config.Config
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			got = cfg
			return nil
		},
	}

	err := cmd.Run(context.Background(), []string{"resgather",
		"--source", "api",
		"--format", "json",
		"--output-dir", "/tmp/reports",
		"--exclude-namespace", "openshift-*",
		"--exclude-namespace", "kube-*",
		"--debug",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, config.SourceAPI, got.Source)
	assert.Equal(t, "json", got.Format)
	assert.Equal(t, "/tmp/reports", got.OutputDir)
	assert.Equal(t, []string{"openshift-*", "kube-*"}, got.ExcludeNamespaces)
	assert.True(t, got.Debug)

	// Untouched fields keep their defaults.
	assert.Equal(t, 4, got.Concurrency)
}

func TestResolveConfigRejectsBadSource(t *testing.T) {
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := resolveConfig(cmd)
			return err
		},
	}

	err := cmd.Run(context.Background(), []string{"resgather", "--source", "ssh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source")
}

func TestReportDir(t *testing.T) {
	t.Run("explicit directory is created", func(t *testing.T) {
		want := filepath.Join(t.TempDir(), "reports")
		dir, err := reportDir(&config.Config{OutputDir: want})
		require.NoError(t, err)
		assert.Equal(t, want, dir)
		assert.DirExists(t, dir)
	})

	t.Run("default is timestamped", func(t *testing.T) {
		t.Chdir(t.TempDir())
		dir, err := reportDir(&config.Config{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(dir, "resource-gather_"), dir)
		assert.DirExists(t, dir)
	})
}

func TestRootCommandWiring(t *testing.T) {
	root := New()

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"workloads", "quotas-limits", "nodes", "publish", "version"}, names)
}
