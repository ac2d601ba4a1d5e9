package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloadReportMarshalCSV(t *testing.T) {
	rep := &WorkloadReport{Rows: []WorkloadRow{
		{Namespace: "ns", WorkloadType: "deployment", WorkloadName: "web",
			ContainerName: "web", CPURequest: "500m", MemoryRequest: "256Mi",
			CPULimit: "1000m", MemoryLimit: "1024Mi"},
	}}

	records := rep.MarshalCSV()

	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"Namespace", "WorkloadType", "WorkloadName", "ContainerName",
		"CpuRequest (m)", "MemoryRequest (Mi)", "CpuLimit (m)", "MemoryLimit (Mi)",
	}, records[0])
	assert.Equal(t, []string{"ns", "deployment", "web", "web", "500m", "256Mi", "1000m", "1024Mi"}, records[1])
	assert.Equal(t, 1, rep.Len())
}

func TestQuotaLimitsReportMarshalCSV(t *testing.T) {
	rep := &QuotaLimitsReport{
		Quotas:      []QuotaRow{{Namespace: "ns", QuotaName: "q"}},
		LimitRanges: []LimitRangeRow{{Namespace: "ns", LimitRangeName: "lr"}},
	}

	records := rep.MarshalCSV()

	require.Len(t, records, 6)
	assert.Equal(t, []string{"# --- Resource Quotas ---"}, records[0])
	assert.Len(t, records[1], 22)
	assert.Equal(t, "RequestsCpuHard (cores)", records[1][4])
	assert.Equal(t, "ServicesUsed", records[1][21])
	assert.Equal(t, "q", records[2][1])
	assert.Equal(t, []string{"# --- Limit Ranges ---"}, records[3])
	assert.Len(t, records[4], 20)
	assert.Equal(t, "ContainerDefaultCpuRequest (m)", records[4][2])
	assert.Equal(t, "PvcMaxStorage (Mi)", records[4][19])
	assert.Equal(t, "lr", records[5][1])
	assert.Equal(t, 2, rep.Len())
}

func TestNodesReportMarshalCSV(t *testing.T) {
	rep := &NodesReport{Nodes: []NodeReport{
		{
			Name: "worker-0",
			Summary: NodeSummaryRow{
				CPURequest: "1.55cores", CPULimit: "2.00cores",
				MemoryRequest: "1.46Gi", MemoryLimit: "2.09Gi",
				CPUCapacity: "4.00cores", MemoryCapacity: "16.00Gi",
				PodsCount: "3",
			},
			Pods: []PodDetailRow{
				{Namespace: "ns", PodName: "web-0", CPURequest: "250m"},
			},
		},
	}}

	records := rep.MarshalCSV()

	// marker, summary header, summary, pods marker, pods header, 1 pod,
	// 3 blank rows
	require.Len(t, records, 9)
	assert.Equal(t, []string{"# --- worker-0 ---"}, records[0])
	assert.Equal(t, []string{
		"CpuRequest (cores)", "CpuLimit (cores)", "MemoryRequest (Gi)",
		"MemoryLimit (Gi)", "CpuCapacity (cores)", "MemoryCapacity (Gi)", "PodsCount",
	}, records[1])
	assert.Equal(t, "3", records[2][6])
	assert.Equal(t, []string{"# --- Pods ---"}, records[3])
	assert.Equal(t, []string{
		"Namespace", "PodName", "CpuRequest (m)", "CpuLimit (m)",
		"MemRequest (Mi)", "MemLimit (Mi)",
	}, records[4])
	assert.Equal(t, "web-0", records[5][1])
	assert.Empty(t, records[6])
	assert.Empty(t, records[8])
	assert.Equal(t, 2, rep.Len())
}
