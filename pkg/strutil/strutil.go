// Package strutil provides small string slice helpers shared across layers.
package strutil

import "strings"

// NormalizeTags trims, lowercases and deduplicates a tag list. Empty
// entries are dropped and the first-seen order is preserved.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return tags
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToLower(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; !ok {
			seen[normalized] = struct{}{}
			result = append(result, normalized)
		}
	}
	return result
}
