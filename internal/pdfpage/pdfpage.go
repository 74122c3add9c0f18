// Package pdfpage adapts github.com/ledongthuc/pdf to the pagesource
// interfaces. All page content is materialized at load time so the
// underlying file can be closed before the engine runs.
package pdfpage

import (
	"fmt"
	"io"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// Letter-size fallback when a page carries no resolvable MediaBox.
const (
	defaultWidth  = 612.0
	defaultHeight = 792.0
)

// Document is an in-memory pagesource.Document extracted from a PDF.
type Document struct {
	pages []*page
}

func (d *Document) PageCount() int             { return len(d.pages) }
func (d *Document) Page(i int) pagesource.Page { return d.pages[i] }

type page struct {
	width  float64
	height float64
	glyphs []pagesource.Glyph
	words  []pagesource.Word
}

func (p *page) Width() float64             { return p.width }
func (p *page) Height() float64            { return p.height }
func (p *page) Glyphs() []pagesource.Glyph { return p.glyphs }

func (p *page) Words() []pagesource.Word {
	if p.words == nil {
		p.words = pagesource.AssembleWords(p.glyphs)
	}
	return p.words
}

func (p *page) TextInRegion(r pagesource.Rect) string {
	return pagesource.RegionText(p.glyphs, r)
}

// Load reads a whole PDF from r into a Document. The library needs a
// ReadSeeker with a known size, so the stream goes through a temp file
// first, the same way the docx path handles its archives.
func Load(r io.Reader) (*Document, error) {
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &Document{}
	for i := 1; i <= reader.NumPage(); i++ {
		src := reader.Page(i)
		if src.V.IsNull() {
			doc.pages = append(doc.pages, &page{width: defaultWidth, height: defaultHeight})
			continue
		}
		doc.pages = append(doc.pages, extractPage(src))
	}
	return doc, nil
}

func extractPage(src pdflib.Page) (p *page) {
	w, h := mediaBox(src)
	p = &page{width: w, height: h}

	// Recover from parse panics in the content-stream walker; a bad page
	// becomes an empty page, not a failed document.
	defer func() { _ = recover() }()

	for _, t := range src.Content().Text {
		if t.S == "" {
			continue
		}
		// Library Y is the baseline measured from the page bottom; the
		// engine wants top-down coordinates.
		top := h - t.Y - t.FontSize
		p.glyphs = append(p.glyphs, pagesource.Glyph{
			S:      t.S,
			X0:     t.X,
			X1:     t.X + t.W,
			Top:    top,
			Bottom: top + t.FontSize,
			Font:   t.Font,
			Size:   t.FontSize,
		})
	}
	return p
}

// mediaBox resolves the page dimensions, walking up the page tree for
// inherited MediaBox entries.
func mediaBox(src pdflib.Page) (float64, float64) {
	v := src.V
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h
			}
		}
		v = v.Key("Parent")
	}
	return defaultWidth, defaultHeight
}
