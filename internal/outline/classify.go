package outline

import "github.com/dgallion1/outliner/internal/pagesource"

// Classify decides the parsing strategy. Documents with more than one page
// are always reports. A single page is a poster when its glyph coverage is
// sparse: a one-page flyer in large type has a different visual grammar
// than a dense structured document.
func Classify(doc pagesource.Document, cfg Config) DocKind {
	if doc.PageCount() != 1 {
		return KindReport
	}
	if glyphDensity(doc.Page(0)) < cfg.PosterDensity {
		return KindPoster
	}
	return KindReport
}

// glyphDensity is the summed glyph bounding-box area over the page area.
func glyphDensity(p pagesource.Page) float64 {
	area := p.Width() * p.Height()
	if area <= 0 {
		return 0
	}
	var covered float64
	for _, g := range p.Glyphs() {
		covered += (g.X1 - g.X0) * (g.Bottom - g.Top)
	}
	return covered / area
}
