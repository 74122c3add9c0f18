package outline

import (
	"fmt"
	"sort"
	"strings"
)

// AssignLevels post-processes the full candidate set into outline entries.
// Candidates dedupe case-insensitively (first occurrence wins) and drop
// when their text equals the title or a recorded cover-page element. The
// distinct font sizes among the survivors map onto H1..HN in descending
// order; sizes below the top N bucket into HN. Document order is
// preserved: level assignment never reorders entries.
func AssignLevels(cands []Candidate, title string, cover map[string]struct{}, cfg Config) []Entry {
	seen := make(map[string]struct{})
	for _, part := range strings.Split(title, "\n") {
		if part = strings.TrimSpace(part); part != "" {
			seen[lowerASCII(part)] = struct{}{}
		}
	}
	for text := range cover {
		seen[text] = struct{}{}
	}

	var kept []Candidate
	for _, c := range cands {
		key := lowerASCII(c.Text)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil
	}

	sizeSet := make(map[float64]struct{})
	for _, c := range kept {
		sizeSet[c.Size] = struct{}{}
	}
	sizes := make([]float64, 0, len(sizeSet))
	for s := range sizeSet {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	maxLevels := cfg.MaxLevels
	if maxLevels < 1 {
		maxLevels = 1
	}
	levels := make(map[float64]string)
	assigned := 0
	for _, s := range sizes {
		if assigned >= maxLevels {
			break
		}
		assigned++
		levels[s] = fmt.Sprintf("H%d", assigned)
	}
	lowest := fmt.Sprintf("H%d", assigned)

	entries := make([]Entry, 0, len(kept))
	for _, c := range kept {
		level, ok := levels[c.Size]
		if !ok {
			level = lowest
		}
		entries = append(entries, Entry{Level: level, Text: c.Text, Page: c.Page})
	}
	return entries
}
