package gather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNamespaces(t *testing.T) {
	names := []string{"default", "kube-system", "kube-public", "openshift-monitoring", "app-team", "team-app"}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns keeps everything",
			patterns: nil,
			want:     names,
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"kube-*"},
			want:     []string{"default", "openshift-monitoring", "app-team", "team-app"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*-app"},
			want:     []string{"default", "kube-system", "kube-public", "openshift-monitoring", "app-team"},
		},
		{
			name:     "contains wildcard",
			patterns: []string{"*app*"},
			want:     []string{"default", "kube-system", "kube-public", "openshift-monitoring"},
		},
		{
			name:     "exact match",
			patterns: []string{"default"},
			want:     []string{"kube-system", "kube-public", "openshift-monitoring", "app-team", "team-app"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"kube-*", "openshift-*"},
			want:     []string{"default", "app-team", "team-app"},
		},
		{
			name:     "non-matching pattern",
			patterns: []string{"nonexistent*"},
			want:     names,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterNamespaces(names, tt.patterns))
		})
	}
}

func TestMatchesPattern(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		pattern string
		want    bool
	}{
		{"exact match", "default", "default", true},
		{"exact mismatch", "default", "kube-system", false},
		{"prefix matches", "kube-system", "kube-*", true},
		{"prefix mismatch", "system-kube", "kube-*", false},
		{"suffix matches", "system-kube", "*kube", true},
		{"suffix mismatch", "kube-system", "*kube", false},
		{"contains matches", "my-kube-ns", "*kube*", true},
		{"bare star matches anything", "anything", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesPattern(tt.key, tt.pattern))
		})
	}
}
