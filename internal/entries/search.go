package entries

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatchIndex returns the row best matching the query, preferring exact
// label matches, then prefixes, then the top fuzzy rank. Returns -1 when
// nothing matches.
func BestMatchIndex(rows []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1
	}
	for i, row := range rows {
		if strings.EqualFold(row.Label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	best := -1
	bestDistance := 0
	for _, rank := range ranks {
		if best < 0 || rank.Distance < bestDistance {
			best = rank.OriginalIndex
			bestDistance = rank.Distance
		}
	}
	return best
}

// FilterEntries returns the rows whose labels fuzzy-match the query, keeping
// list order. An empty query returns a copy of the full list.
func FilterEntries(rows []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneEntries(rows)
	}
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return nil
	}
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]Entry, 0, len(matches))
	for idx, row := range rows {
		if _, ok := matches[idx]; ok {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
