package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// Line is a reconstructed visual line: words sharing a vertical band, with
// the leading word's style as the line's representative style.
type Line struct {
	Words     []pagesource.Word
	Text      string
	Size      float64
	Font      string
	X0        float64
	X1        float64
	Top       float64
	PageWidth float64
}

// WordCount returns the number of words on the line.
func (l Line) WordCount() int { return len(l.Words) }

// ReconstructLines groups a page's words into visual lines. Words cluster
// by rounded top coordinate; within a cluster they sort left to right and
// split into separate lines whenever the horizontal gap between neighbors
// exceeds cfg.ColumnGap, so two columns sharing a vertical band do not
// merge into one nonsense line. Clusters emit top to bottom, column splits
// left to right.
func ReconstructLines(p pagesource.Page, cfg Config) []Line {
	byTop := make(map[int][]pagesource.Word)
	var keys []int
	for _, w := range p.Words() {
		k := int(math.Round(w.Top))
		if _, seen := byTop[k]; !seen {
			keys = append(keys, k)
		}
		byTop[k] = append(byTop[k], w)
	}
	sort.Ints(keys)

	var lines []Line
	for _, k := range keys {
		cluster := byTop[k]
		sort.Slice(cluster, func(i, j int) bool { return cluster[i].X0 < cluster[j].X0 })

		start := 0
		for i := 1; i <= len(cluster); i++ {
			if i == len(cluster) || cluster[i].X0-cluster[i-1].X1 > cfg.ColumnGap {
				lines = append(lines, buildLine(cluster[start:i], p.Width()))
				start = i
			}
		}
	}
	return lines
}

func buildLine(words []pagesource.Word, pageWidth float64) Line {
	texts := make([]string, len(words))
	x0, x1 := words[0].X0, words[0].X1
	for i, w := range words {
		texts[i] = w.Text
		if w.X0 < x0 {
			x0 = w.X0
		}
		if w.X1 > x1 {
			x1 = w.X1
		}
	}
	return Line{
		Words:     words,
		Text:      strings.Join(texts, " "),
		Size:      words[0].Size,
		Font:      words[0].Font,
		X0:        x0,
		X1:        x1,
		Top:       words[0].Top,
		PageWidth: pageWidth,
	}
}
