// Package api collects cluster data through the Kubernetes API: the typed
// clientset for name listing and the dynamic client for the raw JSON
// documents the report layer consumes.
//
// Describe text is a CLI artifact with no API equivalent, so the backend
// composes the CLI collector for it when a cluster CLI binary is present
// and otherwise yields empty text, which the describe scanner documents
// as a valid input.
package api

import (
	"context"
	"fmt"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/utils/exec"

	clicollector "github.com/clusterscope/resource-gather/pkg/collector/cli"
	"github.com/clusterscope/resource-gather/pkg/config"
	k8sclient "github.com/clusterscope/resource-gather/pkg/k8s/client"
)

// resources maps the gatherer's resource names to their GVRs.
var resources = map[string]schema.GroupVersionResource{
	"deployment":       {Group: "apps", Version: "v1", Resource: "deployments"},
	"deploymentconfig": {Group: "apps.openshift.io", Version: "v1", Resource: "deploymentconfigs"},
	"statefulset":      {Group: "apps", Version: "v1", Resource: "statefulsets"},
	"resourcequota":    {Version: "v1", Resource: "resourcequotas"},
	"limitrange":       {Version: "v1", Resource: "limitranges"},
	"node":             {Version: "v1", Resource: "nodes"},
}

// Describer produces describe text for a node.
type Describer interface {
	DescribeNode(ctx context.Context, name string) (string, error)
}

// Client collects through the Kubernetes API.
type Client struct {
	Clientset kubernetes.Interface
	Dynamic   dynamic.Interface

	// Describer supplies node describe text. Nil means none is available
	// and DescribeNode returns "".
	Describer Describer
}

// New builds an API client from the configuration.
func New(cfg *config.Config) (*Client, error) {
	clients, err := k8sclient.New(cfg.Kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubernetes clients: %w", err)
	}

	c := &Client{
		Clientset: clients.Clientset,
		Dynamic:   clients.Dynamic,
	}

	// Borrow the CLI backend for describe text when a binary exists.
	execer := exec.New()
	for _, binary := range []string{"oc", "kubectl"} {
		if _, err := execer.LookPath(binary); err == nil {
			c.Describer = clicollector.New(cfg)
			break
		}
	}
	if c.Describer == nil {
		slog.Debug("no cluster CLI found, node describe text will be empty")
	}

	return c, nil
}

// Namespaces lists namespace names through the typed clientset.
func (c *Client) Namespaces(ctx context.Context) ([]string, error) {
	list, err := c.Clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		names = append(names, ns.Name)
	}
	return names, nil
}

// Nodes lists node names through the typed clientset.
func (c *Client) Nodes(ctx context.Context) ([]string, error) {
	list, err := c.Clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for _, node := range list.Items {
		names = append(names, node.Name)
	}
	return names, nil
}

// Names lists the names of the given resource in a namespace through the
// dynamic client.
func (c *Client) Names(ctx context.Context, namespace, resource string) ([]string, error) {
	gvr, ok := resources[resource]
	if !ok {
		return nil, fmt.Errorf("unknown resource: %q", resource)
	}

	list, err := c.Dynamic.Resource(gvr).Namespace(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s in %q: %w", resource, namespace, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.GetName())
	}
	return names, nil
}

// Get fetches one object through the dynamic client as a nested map.
func (c *Client) Get(ctx context.Context, namespace, resource, name string) (map[string]interface{}, error) {
	gvr, ok := resources[resource]
	if !ok {
		return nil, fmt.Errorf("unknown resource: %q", resource)
	}

	obj, err := c.Dynamic.Resource(gvr).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %s/%s: %w", resource, namespace, name, err)
	}
	return obj.Object, nil
}

// DescribeNode delegates to the composed CLI describer, or returns empty
// text when none is available.
func (c *Client) DescribeNode(ctx context.Context, name string) (string, error) {
	if c.Describer == nil {
		return "", nil
	}
	return c.Describer.DescribeNode(ctx, name)
}
