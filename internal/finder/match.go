// Package finder locates semantically named regions of the chat UI
// inside an unlabeled, deeply nested, constantly mutating remote tree.
// Each region finder is a layered cascade: cache lookup, then a targeted
// landmark search, then a full bounded walk as a last resort.
package finder

import "strings"

// Matches reports whether name contains any pattern as a
// case-insensitive substring. An empty name never matches.
func Matches(name string, patterns []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, pat := range patterns {
		if strings.Contains(lower, strings.ToLower(pat)) {
			return true
		}
	}
	return false
}

// MatchesWithExclusion is Matches with an exclusion list checked first:
// if any exclusion substring is present the result is false regardless
// of positive matches.
func MatchesWithExclusion(name string, patterns, exclusions []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, excl := range exclusions {
		if strings.Contains(lower, strings.ToLower(excl)) {
			return false
		}
	}
	for _, pat := range patterns {
		if strings.Contains(lower, strings.ToLower(pat)) {
			return true
		}
	}
	return false
}

// containsAny reports whether the already-lowered string contains any of
// the lowered needles.
func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
