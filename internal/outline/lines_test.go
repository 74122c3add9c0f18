package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/pagesource"
)

func word(text string, x0, x1, top, size float64) pagesource.Word {
	return pagesource.Word{
		Text: text, X0: x0, X1: x1,
		Top: top, Bottom: top + size,
		Font: "Helvetica", Size: size,
	}
}

func TestReconstructLines_GroupsByVerticalBand(t *testing.T) {
	p := &pagesource.MemPage{
		W: 612, H: 792,
		Word: []pagesource.Word{
			word("world", 110, 150, 100, 10),
			word("hello", 72, 105, 100, 10),
			word("below", 72, 110, 120, 10),
		},
	}
	lines := ReconstructLines(p, DefaultConfig())

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "hello world" {
		t.Errorf("line 0: expected %q, got %q", "hello world", lines[0].Text)
	}
	if lines[1].Text != "below" {
		t.Errorf("line 1: expected %q, got %q", "below", lines[1].Text)
	}
}

func TestReconstructLines_SplitsColumnsOnLargeGap(t *testing.T) {
	// Two columns share a vertical band, separated well past the gap
	// threshold.
	p := &pagesource.MemPage{
		W: 612, H: 792,
		Word: []pagesource.Word{
			word("left", 72, 100, 200, 10),
			word("column", 104, 140, 200, 10),
			word("right", 350, 380, 200, 10),
			word("column", 384, 420, 200, 10),
		},
	}
	lines := ReconstructLines(p, DefaultConfig())

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after column split, got %d", len(lines))
	}
	if lines[0].Text != "left column" {
		t.Errorf("left column: got %q", lines[0].Text)
	}
	if lines[1].Text != "right column" {
		t.Errorf("right column: got %q", lines[1].Text)
	}
	if lines[0].X0 != 72 || lines[0].X1 != 140 {
		t.Errorf("left column bounds: got [%v, %v]", lines[0].X0, lines[0].X1)
	}
}

func TestReconstructLines_KeepsSmallGapsTogether(t *testing.T) {
	p := &pagesource.MemPage{
		W: 612, H: 792,
		Word: []pagesource.Word{
			word("one", 72, 100, 50, 12),
			word("line", 115, 140, 50, 12), // 15-unit gap, below threshold
		},
	}
	lines := ReconstructLines(p, DefaultConfig())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "one line" {
		t.Errorf("got %q", lines[0].Text)
	}
}
