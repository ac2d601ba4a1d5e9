package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"k8s.io/utils/exec"
	fakeexec "k8s.io/utils/exec/testing"
)

func fakeClient(t *testing.T, outputs ...fakeexec.FakeAction) (*Client, *fakeexec.FakeCmd) {
	t.Helper()

	fcmd := &fakeexec.FakeCmd{OutputScript: outputs}

	actions := make([]fakeexec.FakeCommandAction, len(outputs))
	for i := range actions {
		actions[i] = func(cmd string, args ...string) exec.Cmd {
			return fakeexec.InitFakeCmd(fcmd, cmd, args...)
		}
	}

	return &Client{
		Binary:            "oc",
		NamespaceResource: "projects",
		Exec:              &fakeexec.FakeExec{CommandScript: actions},
		Limiter:           rate.NewLimiter(rate.Inf, 1),
	}, fcmd
}

func TestNamespaces(t *testing.T) {
	c, fcmd := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte("default app-team kube-system"), nil, nil
	})

	got, err := c.Namespaces(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "app-team", "kube-system"}, got)
	require.Len(t, fcmd.OutputLog, 1)
	assert.Equal(t, []string{"oc", "get", "projects", "-o", namesJSONPath}, fcmd.OutputLog[0])
}

func TestNamesScopedToNamespace(t *testing.T) {
	c, fcmd := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte("web worker"), nil, nil
	})

	got, err := c.Names(context.Background(), "app-team", "deployment")
	require.NoError(t, err)

	assert.Equal(t, []string{"web", "worker"}, got)
	assert.Equal(t, []string{"oc", "get", "deployment", "-n", "app-team", "-o", namesJSONPath}, fcmd.OutputLog[0])
}

func TestNamesEmptyOutput(t *testing.T) {
	c, _ := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte(""), nil, nil
	})

	got, err := c.Names(context.Background(), "empty-ns", "statefulset")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGet(t *testing.T) {
	c, fcmd := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte(`{"metadata":{"name":"web"},"spec":{"replicas":3}}`), nil, nil
	})

	obj, err := c.Get(context.Background(), "app-team", "deployment", "web")
	require.NoError(t, err)

	assert.Equal(t, []string{"oc", "get", "deployment", "web", "-n", "app-team", "-o", "json"}, fcmd.OutputLog[0])
	spec, ok := obj["spec"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, spec["replicas"])
}

func TestGetClusterScoped(t *testing.T) {
	c, fcmd := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte(`{"status":{"capacity":{"cpu":"4"}}}`), nil, nil
	})

	_, err := c.Get(context.Background(), "", "node", "worker-0")
	require.NoError(t, err)
	assert.Equal(t, []string{"oc", "get", "node", "worker-0", "-o", "json"}, fcmd.OutputLog[0])
}

func TestGetInvalidJSON(t *testing.T) {
	c, _ := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte("not json"), nil, nil
	})

	_, err := c.Get(context.Background(), "ns", "deployment", "web")
	assert.Error(t, err)
}

func TestDescribeNode(t *testing.T) {
	c, fcmd := fakeClient(t, func() ([]byte, []byte, error) {
		return []byte("Allocated resources:\n  cpu 1 (25%) 2 (50%)\n"), nil, nil
	})

	text, err := c.DescribeNode(context.Background(), "worker-0")
	require.NoError(t, err)

	assert.Contains(t, text, "Allocated resources:")
	assert.Equal(t, []string{"oc", "describe", "node", "worker-0"}, fcmd.OutputLog[0])
}

func TestRunCommandFailure(t *testing.T) {
	c, _ := fakeClient(t, func() ([]byte, []byte, error) {
		return nil, nil, &fakeexec.FakeExitError{Status: 1}
	})

	_, err := c.Namespaces(context.Background())
	assert.Error(t, err)
}
