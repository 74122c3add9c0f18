package outline

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Outline numbering: "3", "4.2.1", roman numerals, "Appendix B".
	numberedPrefix = regexp.MustCompile(`^(\d+(\.\d+)*|[IVX]+\.|Appendix\s+[A-Z])`)
	// Two-level numeric prefix, the shape of numbered prose paragraphs.
	listItemPrefix = regexp.MustCompile(`^\d+\.\d+`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}$`),
		regexp.MustCompile(`^(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}$`),
		regexp.MustCompile(`^\d{1,2}\s+(January|February|March|April|May|June|July|August|September|October|November|December),?\s+\d{4}$`),
	}
)

// Features is the per-line feature vector the scorer weighs.
type Features struct {
	SizeRatio    float64
	Bold         bool
	AllCaps      bool
	Numbered     bool
	ShortLine    bool
	Colon        bool
	Period       bool
	LongListItem bool
	Centered     bool
	WordCount    int
}

// Scorer turns reconstructed lines into heading candidates. It applies
// hard filters first (noise, bare page numbers, dates, long sentences),
// then computes a weighted feature score against the style profile.
type Scorer struct {
	cfg     Config
	profile StyleProfile
	noise   NoiseInfo
	cover   map[string]struct{}
	norm    *Normalizer
}

func NewScorer(cfg Config, profile StyleProfile, noise NoiseInfo, cover map[string]struct{}, norm *Normalizer) *Scorer {
	return &Scorer{cfg: cfg, profile: profile, noise: noise, cover: cover, norm: norm}
}

// Score evaluates one line. page is 1-based. The second return is false
// when the line is rejected or scores below threshold.
func (s *Scorer) Score(line Line, page int) (Candidate, bool) {
	text := s.norm.Normalize(line.Text)
	if s.rejected(text) {
		return Candidate{}, false
	}

	f := s.extract(line, text)
	score := s.weigh(f)
	if score < s.cfg.Threshold {
		return Candidate{}, false
	}
	return Candidate{
		Text:  text,
		Size:  roundSize(line.Size),
		Page:  page,
		Score: score,
	}, true
}

// rejected applies the hard filters that run before any scoring.
func (s *Scorer) rejected(text string) bool {
	if text == "" {
		return true
	}
	if s.noise.IsNoise(text) {
		return true
	}
	if _, ok := s.cover[lowerASCII(text)]; ok {
		return true
	}
	if isDigits(text) {
		return true
	}
	if len(strings.Fields(text)) > s.cfg.SentenceWordCap && strings.HasSuffix(text, ".") {
		return true
	}
	for _, p := range datePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func (s *Scorer) extract(line Line, text string) Features {
	wordCount := len(strings.Fields(text))
	body := s.profile.BodySize
	if body <= 0 {
		body = s.cfg.FallbackBodySize
	}

	mid := (line.X0 + line.X1) / 2
	centered := line.PageWidth > 0 &&
		math.Abs(mid-line.PageWidth/2) <= line.PageWidth*s.cfg.CenterTolerance

	return Features{
		SizeRatio:    line.Size / body,
		Bold:         s.profile.IsBold(line.Font),
		AllCaps:      isAllCapsHeading(text),
		Numbered:     numberedPrefix.MatchString(text),
		ShortLine:    wordCount < s.cfg.ShortLineWords,
		Colon:        strings.HasSuffix(text, ":"),
		Period:       strings.HasSuffix(text, "."),
		LongListItem: listItemPrefix.MatchString(text) && wordCount > s.cfg.LongListWords,
		Centered:     centered,
		WordCount:    wordCount,
	}
}

func (s *Scorer) weigh(f Features) float64 {
	w := s.cfg.Weights
	var score float64
	if f.SizeRatio > s.cfg.MinSizeRatio {
		score += f.SizeRatio * w.SizeRatio
	}
	if f.Bold {
		score += w.Bold
	}
	if f.AllCaps {
		score += w.AllCaps
	}
	if f.Numbered {
		score += w.Numbered
	}
	if f.ShortLine {
		score += w.ShortLine
	}
	if f.Colon {
		score += w.Colon
	}
	if f.Period {
		score += w.Period
	}
	if f.LongListItem {
		score += w.LongListItem
	}
	if f.Centered {
		score += w.Centered
	}
	score += float64(f.WordCount) * w.PerWord
	return score
}

// isAllCapsHeading reports an upper-cased, multi-word line with no digits.
func isAllCapsHeading(text string) bool {
	if len(text) <= 1 || !strings.Contains(text, " ") {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.ToUpper(r) != r {
				return false
			}
		}
	}
	return hasLetter
}

func isDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
