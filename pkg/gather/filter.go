package gather

import "strings"

// FilterNamespaces returns the names that match none of the exclude
// patterns, preserving order. Supported patterns:
//   - "prefix*" matches names starting with "prefix"
//   - "*suffix" matches names ending with "suffix"
//   - "*contains*" matches names containing "contains"
//   - "exact" matches names exactly
func FilterNamespaces(names, patterns []string) []string {
	result := make([]string, 0, len(names))

	for _, name := range names {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(name, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result = append(result, name)
		}
	}

	return result
}

// matchesPattern checks if a name matches a wildcard pattern.
func matchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(name, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		suffix := strings.TrimPrefix(pattern, "*")
		return strings.HasSuffix(name, suffix)
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		return strings.HasPrefix(name, prefix)
	}

	return false
}
