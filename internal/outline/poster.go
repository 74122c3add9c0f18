package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// buildPoster handles the single sparse page. The largest font size is the
// title, the second largest a lone H1; a poster carries at most one
// structural statement below its title, so there is no scoring and no
// deeper hierarchy.
func buildPoster(p pagesource.Page, norm *Normalizer) Result {
	words := p.Words()
	if len(words) == 0 {
		return Result{Outline: []Entry{}}
	}

	bySize := make(map[float64][]pagesource.Word)
	for _, w := range words {
		bySize[roundSize(w.Size)] = append(bySize[roundSize(w.Size)], w)
	}
	sizes := make([]float64, 0, len(bySize))
	for s := range bySize {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	res := Result{
		Title:   joinReadingOrder(bySize[sizes[0]], norm),
		Outline: []Entry{},
	}
	if len(sizes) > 1 {
		if text := joinReadingOrder(bySize[sizes[1]], norm); text != "" {
			res.Outline = append(res.Outline, Entry{Level: "H1", Text: text, Page: 1})
		}
	}
	return res
}

func joinReadingOrder(words []pagesource.Word, norm *Normalizer) string {
	sorted := make([]pagesource.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = w.Text
	}
	return norm.Normalize(strings.Join(parts, " "))
}
