package report

// Report is implemented by every report document. Records returns the
// full CSV layout of the document, comment and header rows included, in
// the order it is written to disk.
type Report interface {
	// Kind names the report for filenames, metrics, and run manifests.
	Kind() string
	// Len is the number of data rows in the document.
	Len() int
	// MarshalCSV renders the document's CSV layout.
	MarshalCSV() [][]string
}

// WorkloadReport holds the per-container rows of one gather run.
type WorkloadReport struct {
	Rows []WorkloadRow `json:"rows" yaml:"rows"`
}

func (r *WorkloadReport) Kind() string { return "workloads" }

func (r *WorkloadReport) Len() int { return len(r.Rows) }

func (r *WorkloadReport) MarshalCSV() [][]string {
	records := make([][]string, 0, len(r.Rows)+1)
	records = append(records, workloadHeader)
	for _, row := range r.Rows {
		records = append(records, row.record())
	}
	return records
}

// QuotaLimitsReport holds the resource quota rows followed by the limit
// range rows; the CSV layout keeps the two sections in that order under
// their comment markers.
type QuotaLimitsReport struct {
	Quotas      []QuotaRow      `json:"quotas" yaml:"quotas"`
	LimitRanges []LimitRangeRow `json:"limitRanges" yaml:"limitRanges"`
}

func (r *QuotaLimitsReport) Kind() string { return "quotas-limits" }

func (r *QuotaLimitsReport) Len() int { return len(r.Quotas) + len(r.LimitRanges) }

func (r *QuotaLimitsReport) MarshalCSV() [][]string {
	records := make([][]string, 0, r.Len()+4)

	records = append(records, []string{"# --- Resource Quotas ---"})
	records = append(records, quotaHeader)
	for _, row := range r.Quotas {
		records = append(records, row.record())
	}

	records = append(records, []string{"# --- Limit Ranges ---"})
	records = append(records, limitRangeHeader)
	for _, row := range r.LimitRanges {
		records = append(records, row.record())
	}

	return records
}

// NodeReport is one node's summary row plus its pod detail rows.
type NodeReport struct {
	Name    string         `json:"name" yaml:"name"`
	Summary NodeSummaryRow `json:"summary" yaml:"summary"`
	Pods    []PodDetailRow `json:"pods" yaml:"pods"`
}

// NodesReport holds one block per node. Each block renders as a node
// marker, the summary, a pods marker, the pod rows, and three blank rows.
type NodesReport struct {
	Nodes []NodeReport `json:"nodes" yaml:"nodes"`
}

func (r *NodesReport) Kind() string { return "nodes" }

func (r *NodesReport) Len() int {
	n := 0
	for _, node := range r.Nodes {
		n += 1 + len(node.Pods)
	}
	return n
}

func (r *NodesReport) MarshalCSV() [][]string {
	var records [][]string
	for _, node := range r.Nodes {
		records = append(records, []string{"# --- " + node.Name + " ---"})
		records = append(records, nodeSummaryHeader)
		records = append(records, node.Summary.record())
		records = append(records, []string{"# --- Pods ---"})
		records = append(records, podDetailHeader)
		for _, pod := range node.Pods {
			records = append(records, pod.record())
		}
		records = append(records, []string{}, []string{}, []string{})
	}
	return records
}
