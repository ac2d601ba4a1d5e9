// Package cli implements the command-line interface for the resgather tool.
//
// # Commands
//
// workloads - per-container resource requests and limits:
//
//	resgather workloads [--output-dir DIR] [--format csv|json|yaml]
//
// quotas-limits - resource quotas and limit ranges:
//
//	resgather quotas-limits [--output-dir DIR] [--format csv|json|yaml]
//
// nodes - per-node capacity, allocation, and running pods:
//
//	resgather nodes [--output-dir DIR] [--format csv|json|yaml]
//
// publish - push a gathered report directory to an OCI registry:
//
//	resgather publish --dir DIR --registry HOST --repository PATH [--tag TAG]
//
// # Global Flags
//
//	--config            Path to a YAML configuration file
//	--kubeconfig        Kubeconfig path for the api source
//	--source            Collection source: cli (oc/kubectl) or api (client-go)
//	--output-dir, -o    Report output directory (default: timestamped)
//	--format, -t        Output format: csv, json, yaml (default: csv)
//	--exclude-namespace Namespace pattern to skip (repeatable)
//	--metrics-listen    Prometheus listener address for the run
//	--debug             Debug logging plus stdout echo of reports
//	--log-json          JSON log output
//
// # Environment Variables
//
//	LOG_LEVEL              Logging verbosity (debug, info, warn, error)
//	KUBECONFIG             Kubeconfig path for the api source
//	RESGATHER_SOURCE       Default collection source
//	RESGATHER_CLI_PATH     Cluster CLI binary override
//	RESGATHER_OUTPUT_DIR   Default report directory
//	RESGATHER_FORMAT       Default output format
//	RESGATHER_CONCURRENCY  Node gather fan-out bound
//
// Precedence: built-in defaults, then environment, then the config file,
// then flags.
//
// # Report Directory
//
// Each gather run writes the report file (workload, quotas-limits, or
// nodes plus the format extension) and a run.yaml manifest describing the
// run. Without --output-dir, reports land in a fresh
// resource-gather_YYYYMMDD_HHMMSS directory.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/clusterscope/resource-gather/pkg/version.Version=1.0.0'"
package cli
