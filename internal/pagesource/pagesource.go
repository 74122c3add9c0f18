// Package pagesource defines the page-level view of a parsed document that
// the outline engine consumes: positioned glyphs and words with font
// metadata, plus region-restricted text extraction. Concrete documents
// (see internal/pdfpage) adapt a parsing library to these interfaces; the
// engine itself never touches files.
package pagesource

import (
	"math"
	"sort"
	"strings"
)

// Rect is an axis-aligned region in page coordinates. Top < Bottom, with
// the origin at the top-left of the page.
type Rect struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// Glyph is a single positioned character (or minimal text run) with its
// font name and size. Glyphs are owned by the page they came from.
type Glyph struct {
	S      string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
	Font   string
	Size   float64
}

// Word is an ordered run of glyphs forming one token. Font and Size are
// taken from the word's first glyph.
type Word struct {
	Text   string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
	Font   string
	Size   float64
}

// Page exposes the per-page capabilities the engine needs.
type Page interface {
	Width() float64
	Height() float64
	Words() []Word
	Glyphs() []Glyph
	// TextInRegion returns the text whose glyphs fall inside r, as
	// newline-separated lines in top-to-bottom order.
	TextInRegion(r Rect) string
}

// Document is an ordered sequence of pages.
type Document interface {
	PageCount() int
	// Page returns the i-th page, 0-based.
	Page(i int) Page
}

// Contains reports whether the center of the box (x0,top)-(x1,bottom) lies
// inside r.
func (r Rect) Contains(x0, top, x1, bottom float64) bool {
	cx := (x0 + x1) / 2
	cy := (top + bottom) / 2
	return cx >= r.X0 && cx < r.X1 && cy >= r.Top && cy < r.Bottom
}

// AssembleWords groups a page's glyphs into words. Glyphs are bucketed into
// horizontal bands by rounded top coordinate, sorted left to right, and
// split into words at whitespace glyphs or when the horizontal gap between
// neighbors exceeds a fraction of the font size.
func AssembleWords(glyphs []Glyph) []Word {
	bands := bandGlyphs(glyphs)

	var words []Word
	for _, band := range bands {
		var cur []Glyph
		flush := func() {
			if w, ok := joinGlyphs(cur); ok {
				words = append(words, w)
			}
			cur = cur[:0]
		}
		for _, g := range band {
			if strings.TrimSpace(g.S) == "" {
				flush()
				continue
			}
			if len(cur) > 0 {
				prev := cur[len(cur)-1]
				maxGap := prev.Size * 0.3
				if maxGap < 1 {
					maxGap = 1
				}
				if g.X0-prev.X1 > maxGap {
					flush()
				}
			}
			cur = append(cur, g)
		}
		flush()
	}
	return words
}

// joinGlyphs merges a left-to-right glyph run into one Word. The word box
// is the union of the glyph boxes; font and size come from the first glyph.
func joinGlyphs(glyphs []Glyph) (Word, bool) {
	if len(glyphs) == 0 {
		return Word{}, false
	}
	var sb strings.Builder
	w := Word{
		X0:     glyphs[0].X0,
		X1:     glyphs[0].X1,
		Top:    glyphs[0].Top,
		Bottom: glyphs[0].Bottom,
		Font:   glyphs[0].Font,
		Size:   glyphs[0].Size,
	}
	for _, g := range glyphs {
		sb.WriteString(g.S)
		if g.X0 < w.X0 {
			w.X0 = g.X0
		}
		if g.X1 > w.X1 {
			w.X1 = g.X1
		}
		if g.Top < w.Top {
			w.Top = g.Top
		}
		if g.Bottom > w.Bottom {
			w.Bottom = g.Bottom
		}
	}
	w.Text = strings.TrimSpace(sb.String())
	if w.Text == "" {
		return Word{}, false
	}
	return w, true
}

// RegionText implements TextInRegion over a glyph slice. Shared by the PDF
// adapter and the in-memory test document.
func RegionText(glyphs []Glyph, r Rect) string {
	var inside []Glyph
	for _, g := range glyphs {
		if r.Contains(g.X0, g.Top, g.X1, g.Bottom) {
			inside = append(inside, g)
		}
	}
	bands := bandGlyphs(inside)

	var lines []string
	for _, band := range bands {
		var sb strings.Builder
		for i, g := range band {
			if i > 0 {
				prev := band[i-1]
				maxGap := prev.Size * 0.3
				if maxGap < 1 {
					maxGap = 1
				}
				if g.X0-prev.X1 > maxGap {
					sb.WriteString(" ")
				}
			}
			sb.WriteString(g.S)
		}
		line := strings.TrimSpace(sb.String())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// bandGlyphs groups glyphs by rounded top coordinate and returns the bands
// in top-to-bottom order, each band sorted left to right.
func bandGlyphs(glyphs []Glyph) [][]Glyph {
	byTop := make(map[int][]Glyph)
	var keys []int
	for _, g := range glyphs {
		k := int(math.Round(g.Top))
		if _, seen := byTop[k]; !seen {
			keys = append(keys, k)
		}
		byTop[k] = append(byTop[k], g)
	}
	sort.Ints(keys)

	bands := make([][]Glyph, 0, len(keys))
	for _, k := range keys {
		band := byTop[k]
		sort.Slice(band, func(i, j int) bool { return band[i].X0 < band[j].X0 })
		bands = append(bands, band)
	}
	return bands
}
