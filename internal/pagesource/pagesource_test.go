package pagesource

import (
	"reflect"
	"testing"
)

func glyph(s string, x0, x1, top float64) Glyph {
	return Glyph{S: s, X0: x0, X1: x1, Top: top, Bottom: top + 10, Font: "Helvetica", Size: 10}
}

func TestAssembleWordsSplitsOnGap(t *testing.T) {
	// "Hi" then a 10pt gap (threshold is 3 at size 10) then "ok".
	glyphs := []Glyph{
		glyph("H", 0, 5, 100),
		glyph("i", 5, 10, 100),
		glyph("o", 20, 25, 100),
		glyph("k", 25, 30, 100),
	}
	words := AssembleWords(glyphs)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2: %+v", len(words), words)
	}
	if words[0].Text != "Hi" || words[1].Text != "ok" {
		t.Errorf("got %q, %q; want Hi, ok", words[0].Text, words[1].Text)
	}
	if words[0].X0 != 0 || words[0].X1 != 10 {
		t.Errorf("word box = [%v,%v], want [0,10]", words[0].X0, words[0].X1)
	}
}

func TestAssembleWordsSplitsOnWhitespaceGlyph(t *testing.T) {
	glyphs := []Glyph{
		glyph("a", 0, 5, 100),
		glyph(" ", 5, 7, 100),
		glyph("b", 7, 12, 100),
	}
	words := AssembleWords(glyphs)
	got := []string{}
	for _, w := range words {
		got = append(got, w.Text)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestAssembleWordsSeparatesBands(t *testing.T) {
	glyphs := []Glyph{
		glyph("x", 0, 5, 200),
		glyph("y", 0, 5, 100),
	}
	words := AssembleWords(glyphs)
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Text != "y" || words[1].Text != "x" {
		t.Errorf("bands out of order: %+v", words)
	}
}

func TestRegionTextFiltersAndJoins(t *testing.T) {
	glyphs := []Glyph{
		glyph("t", 10, 15, 20),
		glyph("o", 15, 20, 20),
		glyph("p", 20, 25, 20),
		glyph("l", 10, 15, 40),
		glyph("o", 15, 20, 40),
		glyph("w", 20, 25, 40),
		// Outside the region entirely.
		glyph("z", 10, 15, 500),
	}
	got := RegionText(glyphs, Rect{X0: 0, Top: 0, X1: 100, Bottom: 60})
	if got != "top\nlow" {
		t.Errorf("got %q, want %q", got, "top\nlow")
	}
}

func TestRegionTextUsesBoxCenter(t *testing.T) {
	// Box straddles the boundary; its center (top 58, bottom 70 -> cy 64)
	// is outside a region ending at 60.
	g := glyph("q", 10, 15, 58)
	g.Bottom = 70
	if got := RegionText([]Glyph{g}, Rect{X0: 0, Top: 0, X1: 100, Bottom: 60}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := RegionText([]Glyph{g}, Rect{X0: 0, Top: 0, X1: 100, Bottom: 80}); got != "q" {
		t.Errorf("got %q, want q", got)
	}
}

func TestMemPageGlyphSynthesis(t *testing.T) {
	p := &MemPage{W: 612, H: 792, Word: []Word{
		{Text: "Intro", X0: 100, X1: 150, Top: 50, Bottom: 62, Font: "Helvetica-Bold", Size: 12},
	}}
	glyphs := p.Glyphs()
	if len(glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(glyphs))
	}
	if glyphs[0].S != "I" || glyphs[4].S != "o" {
		t.Errorf("glyph runes wrong: %+v", glyphs)
	}
	if glyphs[0].X0 != 100 || glyphs[4].X1 != 150 {
		t.Errorf("glyph boxes do not span the word: %+v", glyphs)
	}
	if got := p.TextInRegion(Rect{X0: 0, Top: 0, X1: 612, Bottom: 100}); got != "Intro" {
		t.Errorf("TextInRegion = %q, want Intro", got)
	}
}
