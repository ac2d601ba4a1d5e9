// Package quantity converts Kubernetes-style resource quantity strings
// between unit notations.
//
// Memory quantities normalize to an integer byte count and format back out
// as GiB or MiB. CPU quantities move between core and millicore notation.
// All conversions are lenient: empty or unparseable input degrades to a
// zero or pass-through value so that one malformed field never aborts
// assembly of a whole record.
//
// Known limitation: ToGiB and ToMiB return "" for a zero byte count, so
// downstream consumers cannot distinguish an explicit 0 from an absent
// field.
package quantity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// memoryPattern matches an optional decimal value followed by an optional
// unit suffix. The i-suffixed forms and their bare counterparts are the
// same binary multiplier: a bare K/M/G/T is 1024-based, not decimal.
var memoryPattern = regexp.MustCompile(`(?i)^([0-9.]+)([KMGTPEZY]I?B?)?$`)

// ToBytes parses a memory quantity string into a byte count.
// No unit or an unrecognized unit means the value is already in bytes.
// Empty or unparseable input yields 0; it never fails.
func ToBytes(s string) int64 {
	if s == "" {
		return 0
	}

	m := memoryPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	switch strings.ToLower(m[2]) {
	case "ki", "k", "kib":
		return int64(num * (1 << 10))
	case "mi", "m", "mib":
		return int64(num * (1 << 20))
	case "gi", "g", "gib":
		return int64(num * (1 << 30))
	case "ti", "t", "tib":
		return int64(num * (1 << 40))
	default:
		return int64(num)
	}
}

// ToGiB formats a memory quantity as gibibytes with two decimal places,
// e.g. "1.50Gi". A zero or unparseable quantity formats as "".
func ToGiB(s string) string {
	b := ToBytes(s)
	if b <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2fGi", float64(b)/(1<<30))
}

// ToMiB formats a memory quantity as whole mebibytes, e.g. "512Mi".
// A zero or unparseable quantity formats as "".
func ToMiB(s string) string {
	b := ToBytes(s)
	if b <= 0 {
		return ""
	}
	return fmt.Sprintf("%.0fMi", float64(b)/(1<<20))
}

// CPUToCores formats a CPU quantity in cores with two decimal places,
// e.g. "0.50cores". An m-suffixed value is divided by 1000; a bare number
// is taken as already being cores. Empty input yields "" and non-numeric
// input passes through unchanged.
func CPUToCores(s string) string {
	if s == "" {
		return ""
	}

	if strings.HasSuffix(s, "m") {
		milli, err := strconv.ParseFloat(strings.TrimSuffix(s, "m"), 64)
		if err != nil {
			return s
		}
		return fmt.Sprintf("%.2fcores", milli/1000)
	}

	cores, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%.2fcores", cores)
}

// CPUToMillicores formats a CPU quantity in millicores, e.g. "500m".
// An already m-suffixed value passes through unchanged; a bare core count
// is multiplied by 1000 and rounded to the nearest integer. Empty input
// yields "" and non-numeric input passes through unchanged.
func CPUToMillicores(s string) string {
	if s == "" {
		return ""
	}

	if strings.HasSuffix(s, "m") {
		return s
	}

	cores, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatInt(int64(math.Round(cores*1000)), 10) + "m"
}
