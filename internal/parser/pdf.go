package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/pdfpage"
)

// PDFParser runs the heading-detection engine over a PDF's positioned
// text. This is the only front-end that has to infer structure; the
// others read it off the markup.
type PDFParser struct {
	Config outline.Config
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*outline.Result, error) {
	doc, err := pdfpage.Load(r)
	if err != nil {
		return nil, fmt.Errorf("load pdf: %w", err)
	}
	res := outline.NewBuilder(p.Config, nil).Build(doc)
	return &res, nil
}
