package collector

import (
	"fmt"

	"github.com/clusterscope/resource-gather/pkg/collector/api"
	clicollector "github.com/clusterscope/resource-gather/pkg/collector/cli"
	"github.com/clusterscope/resource-gather/pkg/config"
)

// New creates the collector backend selected by the configuration.
func New(cfg *config.Config) (Client, error) {
	switch cfg.Source {
	case config.SourceAPI:
		return api.New(cfg)
	case config.SourceCLI, "":
		return clicollector.New(cfg), nil
	default:
		return nil, fmt.Errorf("unknown collector source: %q", cfg.Source)
	}
}
