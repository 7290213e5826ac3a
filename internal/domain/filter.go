package domain

import (
	"path"
	"strings"
)

// Filter narrows catalog case identifiers by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters case identifiers by matching their case label
// against a wildcard pattern. Supports patterns like "parse_*" or
// "*timeout*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(ids []string, pattern string) []string {
	if pattern == "" {
		return ids
	}

	var filtered []string

	for _, id := range ids {
		_, name := SplitID(id)
		if name == "" {
			name = id
		}

		// Try to match using path.Match (supports * and ? wildcards)
		matched, err := path.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, id)
			continue
		}

		// If pattern contains wildcards but path.Match didn't match,
		// fall back to a substring match on the non-wildcard parts
		// so patterns like "*timeout*" behave intuitively.
		if strings.Contains(pattern, "*") {
			if allPartsContained(name, strings.Split(pattern, "*")) {
				filtered = append(filtered, id)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, id)
		}
	}

	return filtered
}

func allPartsContained(name string, parts []string) bool {
	any := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		any = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return any
}
