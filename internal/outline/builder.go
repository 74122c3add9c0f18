package outline

import (
	"log/slog"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// Builder runs the full pipeline for one document. Builders hold no
// per-document state, so one Builder may serve any number of documents,
// concurrently or not.
type Builder struct {
	cfg Config
	log *slog.Logger
}

func NewBuilder(cfg Config, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{cfg: cfg, log: log}
}

// Build produces the outline for doc. Noise detection and style profiling
// complete before any line is scored; the scorer depends on both. An empty
// document yields an empty result, never an error.
func (b *Builder) Build(doc pagesource.Document) Result {
	if doc == nil || doc.PageCount() == 0 {
		return Result{Outline: []Entry{}}
	}

	norm := NewNormalizer(b.cfg.Replacements)

	if Classify(doc, b.cfg) == KindPoster {
		b.log.Debug("classified document", "kind", KindPoster.String())
		return buildPoster(doc.Page(0), norm)
	}

	noise := DetectNoise(doc, b.cfg, norm)
	profile := Profile(doc, noise.ContentPages, b.cfg)
	b.log.Debug("profiled document",
		"body_size", profile.BodySize,
		"noise_lines", len(noise.Noise),
		"content_pages", len(noise.ContentPages),
	)

	first := doc.Page(noise.ContentPages[0])
	title, cover := ExtractTitle(first, profile, b.cfg, norm)

	scorer := NewScorer(b.cfg, profile, noise, cover, norm)
	var cands []Candidate
	for _, pi := range noise.ContentPages {
		page := doc.Page(pi)
		for _, line := range ReconstructLines(page, b.cfg) {
			if c, ok := scorer.Score(line, pi+1); ok {
				cands = append(cands, c)
			}
		}
	}

	entries := AssignLevels(cands, title, cover, b.cfg)
	if entries == nil {
		entries = []Entry{}
	}
	return Result{Title: title, Outline: entries}
}
