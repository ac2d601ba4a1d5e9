// Package collector defines how cluster data reaches the gatherer and
// selects between the CLI and API backends.
//
// A backend only fetches: it returns raw JSON documents as nested maps
// and describe text as plain strings, and leaves all interpretation to
// the report assembly layer.
package collector

import "context"

// Client provides access to the cluster objects the gatherer reads.
// Implementations must be safe for concurrent use; the node gather fans
// out across goroutines.
type Client interface {
	// Namespaces lists namespace (or project) names.
	Namespaces(ctx context.Context) ([]string, error)

	// Nodes lists node names.
	Nodes(ctx context.Context) ([]string, error)

	// Names lists the names of the given resource in a namespace.
	Names(ctx context.Context, namespace, resource string) ([]string, error)

	// Get fetches one object as a nested map. namespace is empty for
	// cluster-scoped resources.
	Get(ctx context.Context, namespace, resource, name string) (map[string]interface{}, error)

	// DescribeNode returns the human-formatted describe text for a node.
	// An empty string is a valid result meaning no text is available.
	DescribeNode(ctx context.Context, name string) (string, error)
}
