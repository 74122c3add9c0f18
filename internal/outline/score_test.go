package outline

import (
	"strings"
	"testing"
)

func newTestScorer(cfg Config) *Scorer {
	profile := StyleProfile{
		BodySize:   10,
		BoldFonts:  map[string]struct{}{"helvetica-bold": {}},
		indicators: cfg.BoldIndicators,
	}
	noise := NoiseInfo{Noise: map[string]struct{}{"Confidential Draft v2": {}}}
	return NewScorer(cfg, profile, noise, nil, NewNormalizer(nil))
}

func scoreLine(t *testing.T, s *Scorer, text, font string, size float64) (Candidate, bool) {
	t.Helper()
	words := strings.Fields(text)
	line := Line{Text: text, Size: size, Font: font, PageWidth: 612}
	for range words {
		line.Words = append(line.Words, word("w", 0, 0, 0, size))
	}
	return s.Score(line, 1)
}

func TestScorer_NumberedSubsectionHeadingAccepted(t *testing.T) {
	s := newTestScorer(DefaultConfig())

	c, ok := scoreLine(t, s, "4.2.1 Some Subsection Heading", "Helvetica", 12)
	if !ok {
		t.Fatal("expected heading to score above threshold")
	}
	if c.Text != "4.2.1 Some Subsection Heading" {
		t.Errorf("unexpected candidate text %q", c.Text)
	}
	if c.Size != 12 {
		t.Errorf("expected size 12, got %v", c.Size)
	}
}

func TestScorer_NumberedProseParagraphRejected(t *testing.T) {
	s := newTestScorer(DefaultConfig())

	line := "4.2 This paragraph explains the methodology used throughout the extensive study of various factors."
	if _, ok := scoreLine(t, s, line, "Helvetica", 12); ok {
		t.Error("expected long numbered sentence to be rejected")
	}
}

func TestScorer_BoldShortLineAccepted(t *testing.T) {
	s := newTestScorer(DefaultConfig())

	// Body-sized but bold and numbered: 2.5 + 2.0 + 1.5 over the 4.5 bar.
	if _, ok := scoreLine(t, s, "3. Evaluation Criteria", "Helvetica-Bold", 10); !ok {
		t.Error("expected bold numbered line to be accepted")
	}
}

func TestScorer_HardFilters(t *testing.T) {
	s := newTestScorer(DefaultConfig())

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"noise line", "Confidential Draft v2"},
		{"bare page number", "42"},
		{"slash date", "12/03/2024"},
		{"month date", "March 12, 2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := scoreLine(t, s, tc.text, "Helvetica-Bold", 18); ok {
				t.Errorf("expected %q to be filtered", tc.text)
			}
		})
	}
}

func TestScorer_SentenceEndingPeriodSuppressed(t *testing.T) {
	s := newTestScorer(DefaultConfig())

	// Identical shape, one with a terminal period. The period penalty must
	// flip the outcome for an otherwise borderline line.
	if _, ok := scoreLine(t, s, "Summary of Findings", "Helvetica", 12); !ok {
		t.Error("expected plain short large line to be accepted")
	}
	if _, ok := scoreLine(t, s, "This summarizes the findings.", "Helvetica", 12); ok {
		t.Error("expected period-terminated line to be rejected")
	}
}

func TestScorer_AllCapsFeature(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"TABLE OF CONTENTS", true},
		{"INTRODUCTION", false}, // single word
		{"SECTION 2", false},    // digits
		{"Table of Contents", false},
	}
	for _, tc := range tests {
		if got := isAllCapsHeading(tc.text); got != tc.want {
			t.Errorf("isAllCapsHeading(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
