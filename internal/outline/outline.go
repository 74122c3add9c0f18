// Package outline turns a positioned page stream into a document outline:
// a title plus an ordered H1..Hn heading hierarchy. The engine profiles the
// document's running-text style, strips recurring header/footer noise and
// table-of-contents pages, reconstructs visual lines, scores each line
// against a weighted heading model, and finally buckets accepted headings
// into levels by font size.
package outline

// Entry is one outline item. Level is "H1".."Hn", Page is 1-based.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the per-document output artifact.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Candidate is a line that survived the hard filters and scored at or
// above the heading threshold. Size is the rounded font size used for
// level bucketing.
type Candidate struct {
	Text  string
	Size  float64
	Page  int
	Score float64
}

// StyleProfile captures the document's running-text style: the modal body
// font size and the set of font names judged bold.
type StyleProfile struct {
	BodySize  float64
	BoldFonts map[string]struct{}

	indicators []string
}

// IsBold reports whether fontName is a bold face, by profile membership or
// by indicator substring for fonts outside the sampled pages.
func (p StyleProfile) IsBold(fontName string) bool {
	name := lowerASCII(fontName)
	if _, ok := p.BoldFonts[name]; ok {
		return true
	}
	return containsAny(name, p.indicators)
}

// DocKind selects the parsing strategy for a document.
type DocKind int

const (
	// KindReport is a multi-page (or dense single-page) structured document.
	KindReport DocKind = iota
	// KindPoster is a single sparse page: one title, at most one headline.
	KindPoster
)

func (k DocKind) String() string {
	if k == KindPoster {
		return "poster"
	}
	return "report"
}
