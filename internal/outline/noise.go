package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// tocLine matches "Introduction ..... 4": text, dot/space/underscore fill,
// trailing page number.
var tocLine = regexp.MustCompile(`^.+[\s._]+\s*\d+$`)

// NoiseInfo is the noise-filtering result: line texts recurring across a
// majority of pages (headers/footers), and the pages that survive
// table-of-contents filtering.
type NoiseInfo struct {
	Noise        map[string]struct{}
	ContentPages []int
}

// IsNoise reports whether a normalized line text is header/footer noise.
func (ni NoiseInfo) IsNoise(text string) bool {
	_, ok := ni.Noise[text]
	return ok
}

// DetectNoise scans the whole page stream once. Header/footer candidates
// come from configurable top and bottom bands of each page; a line becomes
// noise when it appears on a strict majority of all pages. A page counts
// as table-of-contents filler when enough of its lines have the
// leader-dots-then-number shape. ContentPages is never empty: if every
// page looks like a table of contents, all pages are kept.
func DetectNoise(doc pagesource.Document, cfg Config, norm *Normalizer) NoiseInfo {
	n := doc.PageCount()
	lineCounts := make(map[string]int)
	toc := make(map[int]bool)

	for i := 0; i < n; i++ {
		p := doc.Page(i)
		w, h := p.Width(), p.Height()

		top := pagesource.Rect{X0: 0, Top: 0, X1: w, Bottom: h * cfg.HeaderBand}
		bottom := pagesource.Rect{X0: 0, Top: h * (1 - cfg.FooterBand), X1: w, Bottom: h}
		for _, region := range []pagesource.Rect{top, bottom} {
			for _, line := range strings.Split(p.TextInRegion(region), "\n") {
				line = norm.Normalize(line)
				if line != "" {
					lineCounts[line]++
				}
			}
		}

		full := pagesource.Rect{X0: 0, Top: 0, X1: w, Bottom: h}
		lines := strings.Split(p.TextInRegion(full), "\n")
		matching := 0
		for _, line := range lines {
			if len(line) < cfg.TOCMaxLineLen && tocLine.MatchString(line) {
				matching++
			}
		}
		if float64(matching) > float64(len(lines))*cfg.TOCLineFraction && matching > cfg.TOCMinLines {
			toc[i] = true
		}
	}

	noise := make(map[string]struct{})
	for text, count := range lineCounts {
		if float64(count) > float64(n)/2 {
			noise[text] = struct{}{}
		}
	}

	var content []int
	for i := 0; i < n; i++ {
		if !toc[i] {
			content = append(content, i)
		}
	}
	if len(content) == 0 {
		for i := 0; i < n; i++ {
			content = append(content, i)
		}
	}

	return NoiseInfo{Noise: noise, ContentPages: content}
}
