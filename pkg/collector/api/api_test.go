package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynfake "k8s.io/client-go/dynamic/fake"
	k8sfake "k8s.io/client-go/kubernetes/fake"
)

func newDynamicFake(t *testing.T, objects ...runtime.Object) *dynfake.FakeDynamicClient {
	t.Helper()

	listKinds := map[schema.GroupVersionResource]string{
		{Group: "apps", Version: "v1", Resource: "deployments"}:  "DeploymentList",
		{Group: "apps", Version: "v1", Resource: "statefulsets"}: "StatefulSetList",
		{Version: "v1", Resource: "resourcequotas"}:              "ResourceQuotaList",
		{Version: "v1", Resource: "limitranges"}:                 "LimitRangeList",
		{Version: "v1", Resource: "nodes"}:                       "NodeList",
	}
	return dynfake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(), listKinds, objects...)
}

func deploymentObj(namespace, name string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "apps/v1",
		"kind":       "Deployment",
		"metadata": map[string]interface{}{
			"namespace": namespace,
			"name":      name,
		},
		"spec": map[string]interface{}{
			"template": map[string]interface{}{
				"spec": map[string]interface{}{
					"containers": []interface{}{
						map[string]interface{}{"name": "web"},
					},
				},
			},
		},
	}}
}

func TestNamespacesAndNodes(t *testing.T) {
	clientset := k8sfake.NewSimpleClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "app-team"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "worker-0"}},
	)
	c := &Client{Clientset: clientset, Dynamic: newDynamicFake(t)}

	namespaces, err := c.Namespaces(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"app-team", "default"}, namespaces)

	nodes, err := c.Nodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"worker-0"}, nodes)
}

func TestNamesAndGet(t *testing.T) {
	c := &Client{
		Clientset: k8sfake.NewSimpleClientset(),
		Dynamic:   newDynamicFake(t, deploymentObj("app-team", "web")),
	}

	names, err := c.Names(context.Background(), "app-team", "deployment")
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, names)

	obj, err := c.Get(context.Background(), "app-team", "deployment", "web")
	require.NoError(t, err)
	containers, _, _ := unstructured.NestedSlice(obj, "spec", "template", "spec", "containers")
	require.Len(t, containers, 1)
}

func TestNamesUnknownResource(t *testing.T) {
	c := &Client{Clientset: k8sfake.NewSimpleClientset(), Dynamic: newDynamicFake(t)}

	_, err := c.Names(context.Background(), "ns", "widget")
	assert.Error(t, err)

	_, err = c.Get(context.Background(), "ns", "widget", "w")
	assert.Error(t, err)
}

func TestGetMissingObject(t *testing.T) {
	c := &Client{Clientset: k8sfake.NewSimpleClientset(), Dynamic: newDynamicFake(t)}

	_, err := c.Get(context.Background(), "app-team", "deployment", "missing")
	assert.Error(t, err)
}

type staticDescriber struct {
	text string
}

func (d staticDescriber) DescribeNode(_ context.Context, _ string) (string, error) {
	return d.text, nil
}

func TestDescribeNode(t *testing.T) {
	c := &Client{Clientset: k8sfake.NewSimpleClientset(), Dynamic: newDynamicFake(t)}

	// Without a describer the backend yields empty text, not an error.
	text, err := c.DescribeNode(context.Background(), "worker-0")
	require.NoError(t, err)
	assert.Empty(t, text)

	c.Describer = staticDescriber{text: "Allocated resources:\n"}
	text, err = c.DescribeNode(context.Background(), "worker-0")
	require.NoError(t, err)
	assert.Contains(t, text, "Allocated resources:")
}
