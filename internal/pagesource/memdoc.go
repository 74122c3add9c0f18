package pagesource

// MemPage is an in-memory Page built from words. Adapters that materialize
// their content up front (and tests) use it directly.
type MemPage struct {
	W      float64
	H      float64
	Word   []Word
	glyphs []Glyph
}

func (p *MemPage) Width() float64  { return p.W }
func (p *MemPage) Height() float64 { return p.H }
func (p *MemPage) Words() []Word   { return p.Word }

// Glyphs returns per-character glyphs synthesized from the page's words by
// dividing each word box evenly across its runes.
func (p *MemPage) Glyphs() []Glyph {
	if p.glyphs != nil {
		return p.glyphs
	}
	for _, w := range p.Word {
		runes := []rune(w.Text)
		if len(runes) == 0 {
			continue
		}
		step := (w.X1 - w.X0) / float64(len(runes))
		for i, r := range runes {
			p.glyphs = append(p.glyphs, Glyph{
				S:      string(r),
				X0:     w.X0 + float64(i)*step,
				X1:     w.X0 + float64(i+1)*step,
				Top:    w.Top,
				Bottom: w.Bottom,
				Font:   w.Font,
				Size:   w.Size,
			})
		}
	}
	return p.glyphs
}

func (p *MemPage) TextInRegion(r Rect) string {
	return RegionText(p.Glyphs(), r)
}

// MemDocument is an in-memory Document.
type MemDocument struct {
	Pages []*MemPage
}

func (d *MemDocument) PageCount() int { return len(d.Pages) }
func (d *MemDocument) Page(i int) Page {
	return d.Pages[i]
}
