package outline

import (
	"math"

	"github.com/dgallion1/outliner/internal/pagesource"
)

// Profile derives the document's style from the first few content pages:
// the modal rounded font size becomes the body size and any font whose
// name carries a bold indicator joins the bold set. Deterministic for a
// given page stream; frequency ties resolve first-seen.
func Profile(doc pagesource.Document, contentPages []int, cfg Config) StyleProfile {
	counts := make(map[float64]int)
	var order []float64
	bold := make(map[string]struct{})

	sample := contentPages
	if len(sample) > cfg.SamplePages {
		sample = sample[:cfg.SamplePages]
	}
	for _, pi := range sample {
		for _, w := range doc.Page(pi).Words() {
			size := roundSize(w.Size)
			if counts[size] == 0 {
				order = append(order, size)
			}
			counts[size]++

			name := lowerASCII(w.Font)
			if containsAny(name, cfg.BoldIndicators) {
				bold[name] = struct{}{}
			}
		}
	}

	body := cfg.FallbackBodySize
	best := 0
	for _, size := range order {
		if counts[size] > best {
			best = counts[size]
			body = size
		}
	}

	return StyleProfile{
		BodySize:   body,
		BoldFonts:  bold,
		indicators: cfg.BoldIndicators,
	}
}

// roundSize rounds a font size to one decimal, the granularity at which
// sizes are compared throughout the engine.
func roundSize(s float64) float64 {
	return math.Round(s*10) / 10
}
