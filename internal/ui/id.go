package ui

import "strings"

// HighlightID returns an ID with its unique prefix highlighted.
func HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}

	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}

	if !ansiEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return ansiBold + ansiCyan + prefix + ansiReset + suffix
}

// PrefixLength returns the unique prefix length for an ID, or 0 if unknown.
func PrefixLength(lengths map[string]int, id string) int {
	if id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

// UniqueIDPrefixLengths returns the shortest unique prefix length for each ID.
func UniqueIDPrefixLengths(ids []string) map[string]int {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		uniqueIDs = append(uniqueIDs, idLower)
	}

	lengths := make(map[string]int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		lengths[id] = uniquePrefixLength(id, uniqueIDs)
	}

	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
