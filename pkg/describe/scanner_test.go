package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const describeFixture = `Name:               worker-0
Roles:              worker
Labels:             kubernetes.io/hostname=worker-0
Taints:             <none>
Unschedulable:      false
Non-terminated Pods:          (3 in total)
  Namespace                   Name                                CPU Requests  CPU Limits  Memory Requests  Memory Limits  Age
  ---------                   ----                                ------------  ----------  ---------------  -------------  ---
  kube-system                 coredns-787d4945fb-9pfgf            100m (2%)     0 (0%)      70Mi (0%)        170Mi (2%)     12d
  kube-system                 kube-proxy-x7x2b                    0 (0%)        0 (0%)      0 (0%)           0 (0%)         12d
  app-team                    web-6d4b75cb6d-hsmzl                250m (6%)     500m (12%)  256Mi (3%)       512Mi (6%)     4d
Allocated resources:
  (Total limits may exceed allocatable resources.)
  Resource           Requests         Limits
  --------           -------          ------
  cpu                1550m (38%)      2 (50%)
  memory             1498Mi (19%)     2138Mi (27%)
  ephemeral-storage  0 (0%)           0 (0%)
Events:              <none>
`

func TestScan(t *testing.T) {
	res := Scan(describeFixture)

	assert.Equal(t, "1550m", res.CPURequest)
	assert.Equal(t, "2", res.CPULimit)
	assert.Equal(t, "1498Mi", res.MemoryRequest)
	assert.Equal(t, "2138Mi", res.MemoryLimit)
	assert.Equal(t, "3", res.PodCount)

	require.Len(t, res.Pods, 3)
	assert.Equal(t, PodResources{
		Namespace:     "kube-system",
		Name:          "coredns-787d4945fb-9pfgf",
		CPURequest:    "100m",
		CPULimit:      "0",
		MemoryRequest: "70Mi",
		MemoryLimit:   "170Mi",
	}, res.Pods[0])
	assert.Equal(t, "web-6d4b75cb6d-hsmzl", res.Pods[2].Name)
	assert.Equal(t, "500m", res.Pods[2].CPULimit)
}

func TestScanEmptyInput(t *testing.T) {
	res := Scan("")

	assert.Empty(t, res.CPURequest)
	assert.Empty(t, res.CPULimit)
	assert.Empty(t, res.MemoryRequest)
	assert.Empty(t, res.MemoryLimit)
	assert.Equal(t, "0", res.PodCount)
	assert.Empty(t, res.Pods)
}

func TestScanPodCountOnly(t *testing.T) {
	res := Scan("Non-terminated Pods: (7 in total)\n")

	assert.Equal(t, "7", res.PodCount)
	assert.Empty(t, res.CPURequest)
	assert.Empty(t, res.MemoryRequest)
	assert.Empty(t, res.Pods)
}

func TestScanSkipsShortPodRows(t *testing.T) {
	text := `Non-terminated Pods:          (2 in total)
  Namespace  Name  CPU Requests  CPU Limits  Memory Requests  Memory Limits  Age
  ---------  ----  ------------  ----------  ---------------  -------------  ---
  broken-ns  short-row  100m (2%)  0 (0%)
  app-team   good-pod   250m (6%)  500m (12%)  256Mi (3%)  512Mi (6%)  4d
`
	res := Scan(text)

	require.Len(t, res.Pods, 1)
	assert.Equal(t, "good-pod", res.Pods[0].Name)
}

func TestScanMissingAllocatedSection(t *testing.T) {
	text := `Non-terminated Pods:          (1 in total)
  Namespace  Name  CPU Requests  CPU Limits  Memory Requests  Memory Limits  Age
  ---------  ----  ------------  ----------  ---------------  -------------  ---
  app-team   web-0  250m (6%)  500m (12%)  256Mi (3%)  512Mi (6%)  4d
`
	res := Scan(text)

	assert.Empty(t, res.CPURequest)
	assert.Empty(t, res.MemoryLimit)
	assert.Equal(t, "1", res.PodCount)
	require.Len(t, res.Pods, 1)
}

func TestScanExcludesDisclaimerAndHeaderLines(t *testing.T) {
	// The disclaimer contains no cpu/memory token, but the exclusion must
	// hold even when the column header line falls inside the section.
	text := `Allocated resources:
  (Total limits may exceed allocatable resources.)
  Resource           Requests         Limits
  cpu                500m (12%)       1 (25%)
Events:
`
	res := Scan(text)

	assert.Equal(t, "500m", res.CPURequest)
	assert.Equal(t, "1", res.CPULimit)
}

func TestScanRepeatedHeadersLastWins(t *testing.T) {
	text := `Non-terminated Pods:          (1 in total)
  Namespace  Name  CPU Requests  CPU Limits  Memory Requests  Memory Limits  Age
  ---------  ----  ------------  ----------  ---------------  -------------  ---
  old-ns     old-pod  100m (2%)  0 (0%)  64Mi (1%)  64Mi (1%)  1d
Non-terminated Pods:          (1 in total)
  Namespace  Name  CPU Requests  CPU Limits  Memory Requests  Memory Limits  Age
  ---------  ----  ------------  ----------  ---------------  -------------  ---
  new-ns     new-pod  200m (5%)  0 (0%)  96Mi (1%)  96Mi (1%)  1d
Allocated resources:
  Resource  Requests  Limits
  --------  -------   ------
  cpu       100m (2%) 1 (25%)
Allocated resources:
  Resource  Requests  Limits
  --------  -------   ------
  cpu       300m (7%) 2 (50%)
Events:
`
	res := Scan(text)

	require.Len(t, res.Pods, 1)
	assert.Equal(t, "new-pod", res.Pods[0].Name)
	assert.Equal(t, "300m", res.CPURequest)
	assert.Equal(t, "2", res.CPULimit)
}

func TestScanEventsClosesAllocatedSection(t *testing.T) {
	text := `Allocated resources:
  Resource  Requests  Limits
  --------  -------   ------
  cpu       500m (12%) 1 (25%)
Events:
  cpu  999m (99%)  9 (99%)
`
	res := Scan(text)

	assert.Equal(t, "500m", res.CPURequest)
	assert.Equal(t, "1", res.CPULimit)
}

func TestScanIdempotent(t *testing.T) {
	first := Scan(describeFixture)
	second := Scan(describeFixture)

	assert.Equal(t, first, second)
}
