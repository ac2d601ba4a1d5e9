// Package describe recovers structured resource data from the free-form
// text produced by `oc describe node` / `kubectl describe node`.
//
// The text has no machine-readable structure, so the scanner makes a single
// forward pass over its lines with an explicit state machine keyed on the
// recognized section headers. It tolerates formatting variance, absent
// sections, and malformed rows; it never returns an error. Unit conversion
// is deliberately left to the caller so the scanner can hand back the raw
// tokens exactly as they appeared.
package describe

import (
	"regexp"
	"strings"
)

// Section headers recognized in describe output. Matching is by substring
// so leading indentation and trailing annotations do not matter.
const (
	allocatedHeader = "Allocated resources:"
	podsHeader      = "Non-terminated Pods:"
	eventsHeader    = "Events:"
)

// Lines inside the allocated-resources section that are prose or column
// headers rather than data, and therefore must not be tokenized.
var allocatedExclusions = []string{
	"Total limits may exceed allocatable resources",
	"Resource           Requests         Limits",
}

// podCountPattern extracts the pod count annotation from the whole text,
// independent of section state.
var podCountPattern = regexp.MustCompile(`Non-terminated Pods:\s*\(([0-9]+)\s*in\s*total\)`)

// podHeaderSkip is the number of lines (column header plus separator)
// discarded at the top of the non-terminated pods section.
const podHeaderSkip = 2

// state identifies which recognized section the scanner is currently in.
type state int

const (
	stateOutside state = iota
	stateAllocated
	statePods
)

// PodResources is one row of the non-terminated pods table, with the
// quantity tokens exactly as they appeared in the text.
type PodResources struct {
	Namespace     string
	Name          string
	CPURequest    string
	CPULimit      string
	MemoryRequest string
	MemoryLimit   string
}

// Result holds everything recovered from one describe document. The four
// aggregate fields come from the allocated-resources section and stay
// empty when that section is absent. PodCount defaults to "0".
type Result struct {
	CPURequest    string
	CPULimit      string
	MemoryRequest string
	MemoryLimit   string
	PodCount      string
	Pods          []PodResources
}

// transition returns the state a header line moves the scanner into, or
// ok=false when the line is not a header. An Events: line closes only the
// allocated-resources section; the pods section ends at the next
// Allocated resources: header, matching the layout of describe output.
func transition(cur state, line string) (next state, ok bool) {
	switch {
	case strings.Contains(line, allocatedHeader):
		return stateAllocated, true
	case strings.Contains(line, podsHeader):
		return statePods, true
	case strings.Contains(line, eventsHeader) && cur == stateAllocated:
		return stateOutside, true
	}
	return cur, false
}

// Scan extracts the allocated-resources aggregates, the pod count, and the
// per-pod rows from describe output. Empty input yields an empty result
// with pod count "0". Scanning holds no state between calls.
//
// A repeated section header restarts that section's interpretation: the
// most recently opened instance wins rather than being concatenated onto
// the earlier one.
func Scan(text string) Result {
	res := Result{PodCount: "0"}

	if m := podCountPattern.FindStringSubmatch(text); m != nil {
		res.PodCount = m[1]
	}

	cur := stateOutside
	skip := 0

	for _, line := range strings.Split(text, "\n") {
		if next, ok := transition(cur, line); ok {
			cur = next
			switch cur {
			case stateAllocated:
				res.CPURequest, res.CPULimit = "", ""
				res.MemoryRequest, res.MemoryLimit = "", ""
			case statePods:
				skip = podHeaderSkip
				res.Pods = nil
			}
			// Header lines are consumed by the transition, never tokenized.
			continue
		}

		switch cur {
		case stateAllocated:
			if excludedAllocatedLine(line) {
				continue
			}
			fields := strings.Fields(line)
			switch {
			case containsToken(fields, "cpu"):
				res.CPURequest = tokenAt(fields, 1)
				res.CPULimit = tokenAt(fields, 3)
			case containsToken(fields, "memory"):
				res.MemoryRequest = tokenAt(fields, 1)
				res.MemoryLimit = tokenAt(fields, 3)
			}

		case statePods:
			if skip > 0 {
				skip--
				continue
			}
			fields := strings.Fields(line)
			// Rows carry percentage annotations at the odd indexes between
			// the quantity tokens; anything shorter than 9 tokens is a
			// trailing blank or malformed line and is skipped.
			if len(fields) < 9 {
				continue
			}
			res.Pods = append(res.Pods, PodResources{
				Namespace:     fields[0],
				Name:          fields[1],
				CPURequest:    fields[2],
				CPULimit:      fields[4],
				MemoryRequest: fields[6],
				MemoryLimit:   fields[8],
			})
		}
	}

	return res
}

func excludedAllocatedLine(line string) bool {
	for _, excl := range allocatedExclusions {
		if strings.Contains(line, excl) {
			return true
		}
	}
	return false
}

func containsToken(fields []string, token string) bool {
	for _, f := range fields {
		if f == token {
			return true
		}
	}
	return false
}

func tokenAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
