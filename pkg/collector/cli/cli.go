// Package cli collects cluster data by shelling out to oc or kubectl.
// Invocations are paced with a rate limiter so a gather run over a large
// cluster does not hammer the API server through the CLI.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"
	"k8s.io/utils/exec"

	"github.com/clusterscope/resource-gather/pkg/config"
)

const namesJSONPath = "jsonpath={.items[*].metadata.name}"

// Client shells out to a cluster CLI binary. Fields are exported so tests
// can inject a fake exec implementation.
type Client struct {
	// Binary is the CLI to invoke, e.g. "oc" or "kubectl".
	Binary string

	// NamespaceResource is listed to enumerate namespaces: "projects"
	// under oc, "namespaces" under kubectl.
	NamespaceResource string

	// Exec runs commands.
	Exec exec.Interface

	// Limiter paces invocations. Nil disables pacing.
	Limiter *rate.Limiter
}

// New builds a CLI client from the configuration. When no CLI path is
// configured it prefers oc and falls back to kubectl.
func New(cfg *config.Config) *Client {
	execer := exec.New()

	binary := cfg.CLIPath
	if binary == "" {
		binary = "kubectl"
		if _, err := execer.LookPath("oc"); err == nil {
			binary = "oc"
		}
	}

	nsResource := cfg.NamespaceResource
	if nsResource == "" {
		nsResource = "namespaces"
		if filepath.Base(binary) == "oc" {
			nsResource = "projects"
		}
	}

	slog.Debug("using cluster CLI",
		slog.String("binary", binary),
		slog.String("namespace_resource", nsResource),
	)

	return &Client{
		Binary:            binary,
		NamespaceResource: nsResource,
		Exec:              execer,
		Limiter:           rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
	}
}

// Namespaces lists namespace names via jsonpath.
func (c *Client) Namespaces(ctx context.Context) ([]string, error) {
	return c.names(ctx, "", c.NamespaceResource)
}

// Nodes lists node names via jsonpath.
func (c *Client) Nodes(ctx context.Context) ([]string, error) {
	return c.names(ctx, "", "nodes")
}

// Names lists the names of the given resource in a namespace.
func (c *Client) Names(ctx context.Context, namespace, resource string) ([]string, error) {
	return c.names(ctx, namespace, resource)
}

// Get fetches one object with -o json and parses it into a nested map.
func (c *Client) Get(ctx context.Context, namespace, resource, name string) (map[string]interface{}, error) {
	args := []string{"get", resource, name}
	if namespace != "" {
		args = append(args, "-n", namespace)
	}
	args = append(args, "-o", "json")

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(out, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse %s %s/%s: %w", resource, namespace, name, err)
	}
	return obj, nil
}

// DescribeNode returns the raw describe text for a node.
func (c *Client) DescribeNode(ctx context.Context, name string) (string, error) {
	out, err := c.run(ctx, "describe", "node", name)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *Client) names(ctx context.Context, namespace, resource string) ([]string, error) {
	args := []string{"get", resource}
	if namespace != "" {
		args = append(args, "-n", namespace)
	}
	args = append(args, "-o", namesJSONPath)

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	out, err := c.Exec.CommandContext(ctx, c.Binary, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", c.Binary, strings.Join(args, " "), err)
	}
	return out, nil
}
