// Package report assembles the flat output records written by the
// resource gatherer and defines their exact CSV layouts.
//
// Assembly is pure: structured API documents arrive as already-parsed
// nested maps, describe text arrives as one string, and every missing key
// or malformed quantity degrades to an empty field rather than an error.
// Field order, column names, and the units in parentheses are the output
// contract and must not be reordered.
package report

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/clusterscope/resource-gather/pkg/describe"
	"github.com/clusterscope/resource-gather/pkg/quantity"
)

// WorkloadRow is one container of one workload with its requests and
// limits in millicore / MiB notation.
type WorkloadRow struct {
	Namespace     string `json:"namespace" yaml:"namespace"`
	WorkloadType  string `json:"workloadType" yaml:"workloadType"`
	WorkloadName  string `json:"workloadName" yaml:"workloadName"`
	ContainerName string `json:"containerName" yaml:"containerName"`
	CPURequest    string `json:"cpuRequest" yaml:"cpuRequest"`
	MemoryRequest string `json:"memoryRequest" yaml:"memoryRequest"`
	CPULimit      string `json:"cpuLimit" yaml:"cpuLimit"`
	MemoryLimit   string `json:"memoryLimit" yaml:"memoryLimit"`
}

var workloadHeader = []string{
	"Namespace", "WorkloadType", "WorkloadName", "ContainerName",
	"CpuRequest (m)", "MemoryRequest (Mi)", "CpuLimit (m)", "MemoryLimit (Mi)",
}

func (r WorkloadRow) record() []string {
	return []string{
		r.Namespace, r.WorkloadType, r.WorkloadName, r.ContainerName,
		r.CPURequest, r.MemoryRequest, r.CPULimit, r.MemoryLimit,
	}
}

// QuotaRow is one resource quota with hard and used values per tracked
// resource. CPU renders in cores, memory and storage in GiB; plain object
// counts pass through raw.
type QuotaRow struct {
	Namespace          string `json:"namespace" yaml:"namespace"`
	QuotaName          string `json:"quotaName" yaml:"quotaName"`
	PodsHard           string `json:"podsHard" yaml:"podsHard"`
	PodsUsed           string `json:"podsUsed" yaml:"podsUsed"`
	RequestsCPUHard    string `json:"requestsCpuHard" yaml:"requestsCpuHard"`
	RequestsCPUUsed    string `json:"requestsCpuUsed" yaml:"requestsCpuUsed"`
	RequestsMemoryHard string `json:"requestsMemoryHard" yaml:"requestsMemoryHard"`
	RequestsMemoryUsed string `json:"requestsMemoryUsed" yaml:"requestsMemoryUsed"`
	LimitsCPUHard      string `json:"limitsCpuHard" yaml:"limitsCpuHard"`
	LimitsCPUUsed      string `json:"limitsCpuUsed" yaml:"limitsCpuUsed"`
	LimitsMemoryHard   string `json:"limitsMemoryHard" yaml:"limitsMemoryHard"`
	LimitsMemoryUsed   string `json:"limitsMemoryUsed" yaml:"limitsMemoryUsed"`
	PvcsHard           string `json:"pvcsHard" yaml:"pvcsHard"`
	PvcsUsed           string `json:"pvcsUsed" yaml:"pvcsUsed"`
	StorageHard        string `json:"requestsStorageHard" yaml:"requestsStorageHard"`
	StorageUsed        string `json:"requestsStorageUsed" yaml:"requestsStorageUsed"`
	ConfigMapsHard     string `json:"configMapsHard" yaml:"configMapsHard"`
	ConfigMapsUsed     string `json:"configMapsUsed" yaml:"configMapsUsed"`
	SecretsHard        string `json:"secretsHard" yaml:"secretsHard"`
	SecretsUsed        string `json:"secretsUsed" yaml:"secretsUsed"`
	ServicesHard       string `json:"servicesHard" yaml:"servicesHard"`
	ServicesUsed       string `json:"servicesUsed" yaml:"servicesUsed"`
}

var quotaHeader = []string{
	"Namespace", "QuotaName", "PodsHard", "PodsUsed",
	"RequestsCpuHard (cores)", "RequestsCpuUsed (cores)",
	"RequestsMemoryHard (Gi)", "RequestsMemoryUsed (Gi)",
	"LimitsCpuHard (cores)", "LimitsCpuUsed (cores)",
	"LimitsMemoryHard (Gi)", "LimitsMemoryUsed (Gi)",
	"PvcsHard", "PvcsUsed", "RequestsStorageHard (Gi)",
	"RequestsStorageUsed (Gi)", "ConfigMapsHard", "ConfigMapsUsed",
	"SecretsHard", "SecretsUsed", "ServicesHard", "ServicesUsed",
}

func (r QuotaRow) record() []string {
	return []string{
		r.Namespace, r.QuotaName, r.PodsHard, r.PodsUsed,
		r.RequestsCPUHard, r.RequestsCPUUsed,
		r.RequestsMemoryHard, r.RequestsMemoryUsed,
		r.LimitsCPUHard, r.LimitsCPUUsed,
		r.LimitsMemoryHard, r.LimitsMemoryUsed,
		r.PvcsHard, r.PvcsUsed, r.StorageHard, r.StorageUsed,
		r.ConfigMapsHard, r.ConfigMapsUsed,
		r.SecretsHard, r.SecretsUsed,
		r.ServicesHard, r.ServicesUsed,
	}
}

// LimitRangeRow is one limit range flattened across its Container, Pod,
// and PersistentVolumeClaim entries. The pod columns intentionally run
// max/min before defaultRequest/default; the asymmetry with the container
// columns is part of the contract.
type LimitRangeRow struct {
	Namespace                     string `json:"namespace" yaml:"namespace"`
	LimitRangeName                string `json:"limitRangeName" yaml:"limitRangeName"`
	ContainerDefaultCPURequest    string `json:"containerDefaultCpuRequest" yaml:"containerDefaultCpuRequest"`
	ContainerDefaultMemoryRequest string `json:"containerDefaultMemoryRequest" yaml:"containerDefaultMemoryRequest"`
	ContainerDefaultCPULimit      string `json:"containerDefaultCpuLimit" yaml:"containerDefaultCpuLimit"`
	ContainerDefaultMemoryLimit   string `json:"containerDefaultMemoryLimit" yaml:"containerDefaultMemoryLimit"`
	ContainerMaxCPU               string `json:"containerMaxCpu" yaml:"containerMaxCpu"`
	ContainerMaxMemory            string `json:"containerMaxMemory" yaml:"containerMaxMemory"`
	ContainerMinCPU               string `json:"containerMinCpu" yaml:"containerMinCpu"`
	ContainerMinMemory            string `json:"containerMinMemory" yaml:"containerMinMemory"`
	PodMaxCPU                     string `json:"podMaxCpu" yaml:"podMaxCpu"`
	PodMaxMemory                  string `json:"podMaxMemory" yaml:"podMaxMemory"`
	PodMinCPU                     string `json:"podMinCpu" yaml:"podMinCpu"`
	PodMinMemory                  string `json:"podMinMemory" yaml:"podMinMemory"`
	PodDefaultCPURequest          string `json:"podDefaultCpuRequest" yaml:"podDefaultCpuRequest"`
	PodDefaultMemoryRequest       string `json:"podDefaultMemoryRequest" yaml:"podDefaultMemoryRequest"`
	PodDefaultCPULimit            string `json:"podDefaultCpuLimit" yaml:"podDefaultCpuLimit"`
	PodDefaultMemoryLimit         string `json:"podDefaultMemoryLimit" yaml:"podDefaultMemoryLimit"`
	PvcDefaultStorage             string `json:"pvcDefaultStorage" yaml:"pvcDefaultStorage"`
	PvcMaxStorage                 string `json:"pvcMaxStorage" yaml:"pvcMaxStorage"`
}

var limitRangeHeader = []string{
	"Namespace", "LimitRangeName",
	"ContainerDefaultCpuRequest (m)", "ContainerDefaultMemoryRequest (Mi)",
	"ContainerDefaultCpuLimit (m)", "ContainerDefaultMemoryLimit (Mi)",
	"ContainerMaxCpu (m)", "ContainerMaxMemory (Mi)",
	"ContainerMinCpu (m)", "ContainerMinMemory (Mi)",
	"PodMaxCpu (m)", "PodMaxMemory (Mi)",
	"PodMinCpu (m)", "PodMinMemory (Mi)",
	"PodDefaultCpuRequest (m)", "PodDefaultMemoryRequest (Mi)",
	"PodDefaultCpuLimit (m)", "PodDefaultMemoryLimit (Mi)",
	"PvcDefaultStorage (Mi)", "PvcMaxStorage (Mi)",
}

func (r LimitRangeRow) record() []string {
	return []string{
		r.Namespace, r.LimitRangeName,
		r.ContainerDefaultCPURequest, r.ContainerDefaultMemoryRequest,
		r.ContainerDefaultCPULimit, r.ContainerDefaultMemoryLimit,
		r.ContainerMaxCPU, r.ContainerMaxMemory,
		r.ContainerMinCPU, r.ContainerMinMemory,
		r.PodMaxCPU, r.PodMaxMemory,
		r.PodMinCPU, r.PodMinMemory,
		r.PodDefaultCPURequest, r.PodDefaultMemoryRequest,
		r.PodDefaultCPULimit, r.PodDefaultMemoryLimit,
		r.PvcDefaultStorage, r.PvcMaxStorage,
	}
}

// NodeSummaryRow aggregates one node: allocated requests/limits, capacity,
// and pod count. Summary rows render CPU in cores and memory in GiB,
// whereas the per-pod detail rows use millicores and MiB; the two levels
// intentionally use different display granularity.
type NodeSummaryRow struct {
	CPURequest     string `json:"cpuRequest" yaml:"cpuRequest"`
	CPULimit       string `json:"cpuLimit" yaml:"cpuLimit"`
	MemoryRequest  string `json:"memoryRequest" yaml:"memoryRequest"`
	MemoryLimit    string `json:"memoryLimit" yaml:"memoryLimit"`
	CPUCapacity    string `json:"cpuCapacity" yaml:"cpuCapacity"`
	MemoryCapacity string `json:"memoryCapacity" yaml:"memoryCapacity"`
	PodsCount      string `json:"podsCount" yaml:"podsCount"`
}

var nodeSummaryHeader = []string{
	"CpuRequest (cores)", "CpuLimit (cores)",
	"MemoryRequest (Gi)", "MemoryLimit (Gi)",
	"CpuCapacity (cores)", "MemoryCapacity (Gi)", "PodsCount",
}

func (r NodeSummaryRow) record() []string {
	return []string{
		r.CPURequest, r.CPULimit,
		r.MemoryRequest, r.MemoryLimit,
		r.CPUCapacity, r.MemoryCapacity, r.PodsCount,
	}
}

// PodDetailRow is one non-terminated pod on a node, in millicore / MiB
// notation.
type PodDetailRow struct {
	Namespace     string `json:"namespace" yaml:"namespace"`
	PodName       string `json:"podName" yaml:"podName"`
	CPURequest    string `json:"cpuRequest" yaml:"cpuRequest"`
	CPULimit      string `json:"cpuLimit" yaml:"cpuLimit"`
	MemoryRequest string `json:"memRequest" yaml:"memRequest"`
	MemoryLimit   string `json:"memLimit" yaml:"memLimit"`
}

var podDetailHeader = []string{
	"Namespace", "PodName", "CpuRequest (m)", "CpuLimit (m)",
	"MemRequest (Mi)", "MemLimit (Mi)",
}

func (r PodDetailRow) record() []string {
	return []string{
		r.Namespace, r.PodName, r.CPURequest, r.CPULimit,
		r.MemoryRequest, r.MemoryLimit,
	}
}

// nestedString walks the given path of map keys and returns the string
// leaf, or "" when any key along the path is absent or the leaf is not a
// string.
func nestedString(obj map[string]interface{}, path ...string) string {
	s, _, _ := unstructured.NestedString(obj, path...)
	return s
}

// WorkloadRows extracts one row per container from a workload document,
// walking spec.template.spec.containers[].resources.{requests,limits}.
// A document without containers yields no rows.
func WorkloadRows(namespace, workloadType, workloadName string, obj map[string]interface{}) []WorkloadRow {
	containers, _, _ := unstructured.NestedSlice(obj, "spec", "template", "spec", "containers")

	rows := make([]WorkloadRow, 0, len(containers))
	for _, c := range containers {
		container, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		rows = append(rows, WorkloadRow{
			Namespace:     namespace,
			WorkloadType:  workloadType,
			WorkloadName:  workloadName,
			ContainerName: nestedString(container, "name"),
			CPURequest:    quantity.CPUToMillicores(nestedString(container, "resources", "requests", "cpu")),
			MemoryRequest: quantity.ToMiB(nestedString(container, "resources", "requests", "memory")),
			CPULimit:      quantity.CPUToMillicores(nestedString(container, "resources", "limits", "cpu")),
			MemoryLimit:   quantity.ToMiB(nestedString(container, "resources", "limits", "memory")),
		})
	}
	return rows
}

// QuotaRowFrom builds one quota row from a resource quota document,
// reading spec.hard and status.used.
func QuotaRowFrom(namespace, quotaName string, obj map[string]interface{}) QuotaRow {
	hard := func(key string) string { return nestedString(obj, "spec", "hard", key) }
	used := func(key string) string { return nestedString(obj, "status", "used", key) }

	return QuotaRow{
		Namespace:          namespace,
		QuotaName:          quotaName,
		PodsHard:           hard("pods"),
		PodsUsed:           used("pods"),
		RequestsCPUHard:    quantity.CPUToCores(hard("requests.cpu")),
		RequestsCPUUsed:    quantity.CPUToCores(used("requests.cpu")),
		RequestsMemoryHard: quantity.ToGiB(hard("requests.memory")),
		RequestsMemoryUsed: quantity.ToGiB(used("requests.memory")),
		LimitsCPUHard:      quantity.CPUToCores(hard("limits.cpu")),
		LimitsCPUUsed:      quantity.CPUToCores(used("limits.cpu")),
		LimitsMemoryHard:   quantity.ToGiB(hard("limits.memory")),
		LimitsMemoryUsed:   quantity.ToGiB(used("limits.memory")),
		PvcsHard:           hard("persistentvolumeclaims"),
		PvcsUsed:           used("persistentvolumeclaims"),
		StorageHard:        quantity.ToGiB(hard("requests.storage")),
		StorageUsed:        quantity.ToGiB(used("requests.storage")),
		ConfigMapsHard:     hard("configmaps"),
		ConfigMapsUsed:     used("configmaps"),
		SecretsHard:        hard("secrets"),
		SecretsUsed:        used("secrets"),
		ServicesHard:       hard("services"),
		ServicesUsed:       used("services"),
	}
}

// LimitRangeRowFrom builds one limit range row from a limit range
// document, keying spec.limits[] entries by their type.
func LimitRangeRowFrom(namespace, limitRangeName string, obj map[string]interface{}) LimitRangeRow {
	byType := map[string]map[string]interface{}{}
	limits, _, _ := unstructured.NestedSlice(obj, "spec", "limits")
	for _, l := range limits {
		entry, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		byType[nestedString(entry, "type")] = entry
	}

	container := byType["Container"]
	pod := byType["Pod"]
	pvc := byType["PersistentVolumeClaim"]

	return LimitRangeRow{
		Namespace:                     namespace,
		LimitRangeName:                limitRangeName,
		ContainerDefaultCPURequest:    quantity.CPUToMillicores(nestedString(container, "defaultRequest", "cpu")),
		ContainerDefaultMemoryRequest: quantity.ToMiB(nestedString(container, "defaultRequest", "memory")),
		ContainerDefaultCPULimit:      quantity.CPUToMillicores(nestedString(container, "default", "cpu")),
		ContainerDefaultMemoryLimit:   quantity.ToMiB(nestedString(container, "default", "memory")),
		ContainerMaxCPU:               quantity.CPUToMillicores(nestedString(container, "max", "cpu")),
		ContainerMaxMemory:            quantity.ToMiB(nestedString(container, "max", "memory")),
		ContainerMinCPU:               quantity.CPUToMillicores(nestedString(container, "min", "cpu")),
		ContainerMinMemory:            quantity.ToMiB(nestedString(container, "min", "memory")),
		PodMaxCPU:                     quantity.CPUToMillicores(nestedString(pod, "max", "cpu")),
		PodMaxMemory:                  quantity.ToMiB(nestedString(pod, "max", "memory")),
		PodMinCPU:                     quantity.CPUToMillicores(nestedString(pod, "min", "cpu")),
		PodMinMemory:                  quantity.ToMiB(nestedString(pod, "min", "memory")),
		PodDefaultCPURequest:          quantity.CPUToMillicores(nestedString(pod, "defaultRequest", "cpu")),
		PodDefaultMemoryRequest:       quantity.ToMiB(nestedString(pod, "defaultRequest", "memory")),
		PodDefaultCPULimit:            quantity.CPUToMillicores(nestedString(pod, "default", "cpu")),
		PodDefaultMemoryLimit:         quantity.ToMiB(nestedString(pod, "default", "memory")),
		PvcDefaultStorage:             quantity.ToMiB(nestedString(pvc, "default", "storage")),
		PvcMaxStorage:                 quantity.ToMiB(nestedString(pvc, "max", "storage")),
	}
}

// NodeReportFrom combines a node document's capacity with one describe
// scan into the per-node summary and pod detail rows.
func NodeReportFrom(name string, obj map[string]interface{}, describeText string) NodeReport {
	scanned := describe.Scan(describeText)

	pods := make([]PodDetailRow, 0, len(scanned.Pods))
	for _, p := range scanned.Pods {
		pods = append(pods, PodDetailRow{
			Namespace:     p.Namespace,
			PodName:       p.Name,
			CPURequest:    quantity.CPUToMillicores(p.CPURequest),
			CPULimit:      quantity.CPUToMillicores(p.CPULimit),
			MemoryRequest: quantity.ToMiB(p.MemoryRequest),
			MemoryLimit:   quantity.ToMiB(p.MemoryLimit),
		})
	}

	return NodeReport{
		Name: name,
		Summary: NodeSummaryRow{
			CPURequest:     quantity.CPUToCores(scanned.CPURequest),
			CPULimit:       quantity.CPUToCores(scanned.CPULimit),
			MemoryRequest:  quantity.ToGiB(scanned.MemoryRequest),
			MemoryLimit:    quantity.ToGiB(scanned.MemoryLimit),
			CPUCapacity:    quantity.CPUToCores(nestedString(obj, "status", "capacity", "cpu")),
			MemoryCapacity: quantity.ToGiB(nestedString(obj, "status", "capacity", "memory")),
			PodsCount:      scanned.PodCount,
		},
		Pods: pods,
	}
}
