package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// ExtractTitle finds the document title on the first content page: the
// words whose size clusters near the page maximum and clearly exceeds body
// text, rejoined in reading order. It also returns the cover set: the
// normalized text of every oversized first-page line (subtitles, author
// lines, dates in display type), which must not resurface as headings.
func ExtractTitle(p pagesource.Page, profile StyleProfile, cfg Config, norm *Normalizer) (string, map[string]struct{}) {
	cover := make(map[string]struct{})
	words := p.Words()
	if len(words) == 0 {
		return "", cover
	}

	maxSize := words[0].Size
	for _, w := range words {
		if w.Size > maxSize {
			maxSize = w.Size
		}
	}

	var titleWords []pagesource.Word
	for _, w := range words {
		if w.Size > profile.BodySize*cfg.TitleBodyMultiple && w.Size >= maxSize*cfg.TitleMaxRatio {
			titleWords = append(titleWords, w)
		}
	}

	title := ""
	if len(titleWords) > 0 {
		sort.SliceStable(titleWords, func(i, j int) bool {
			if titleWords[i].Top != titleWords[j].Top {
				return titleWords[i].Top < titleWords[j].Top
			}
			return titleWords[i].X0 < titleWords[j].X0
		})
		parts := make([]string, len(titleWords))
		for i, w := range titleWords {
			parts[i] = w.Text
		}
		title = norm.Normalize(strings.Join(parts, " "))
	}

	// Anything in display type on the cover page is excluded from heading
	// candidacy, whether or not it made it into the title.
	for _, line := range ReconstructLines(p, cfg) {
		if line.Size > profile.BodySize*cfg.CoverSizeMultiple {
			if text := norm.Normalize(line.Text); text != "" {
				cover[lowerASCII(text)] = struct{}{}
			}
		}
	}

	return title, cover
}
