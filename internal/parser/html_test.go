package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_TitleTagAndHeadings(t *testing.T) {
	input := `<html><head><title>Service Manual</title></head>
<body>
<h1>Installation</h1><p>steps</p>
<h2>Requirements</h2><p>list</p>
<h1>Operation</h1>
</body></html>`

	p := &HTMLParser{}
	res, err := p.Parse(strings.NewReader(input), "manual.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Title != "Service Manual" {
		t.Errorf("expected title from <title>, got %q", res.Title)
	}
	want := []struct{ level, text string }{
		{"H1", "Installation"},
		{"H2", "Requirements"},
		{"H1", "Operation"},
	}
	if len(res.Outline) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), res.Outline)
	}
	for i, w := range want {
		if res.Outline[i].Level != w.level || res.Outline[i].Text != w.text {
			t.Errorf("entry %d: got %s %q", i, res.Outline[i].Level, res.Outline[i].Text)
		}
	}
}

func TestHTMLParser_HeadingMatchingTitleDropped(t *testing.T) {
	input := `<html><head><title>My Page</title></head>
<body><h1>My Page</h1><h2>Section</h2></body></html>`

	p := &HTMLParser{}
	res, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "My Page" {
		t.Errorf("got title %q", res.Title)
	}
	if len(res.Outline) != 1 || res.Outline[0].Text != "Section" || res.Outline[0].Level != "H1" {
		t.Errorf("expected single H1 %q, got %v", "Section", res.Outline)
	}
}

func TestHTMLParser_IgnoresNavAndFooterHeadings(t *testing.T) {
	input := `<html><body>
<nav><h1>Menu</h1></nav>
<h1>Content</h1>
<footer><h2>Links</h2></footer>
</body></html>`

	p := &HTMLParser{}
	res, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The lone content h1 is promoted to the document title.
	if res.Title != "Content" {
		t.Errorf("got title %q", res.Title)
	}
	if len(res.Outline) != 0 {
		t.Errorf("nav/footer headings must not appear: %v", res.Outline)
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename  string
		supported bool
	}{
		{"report.pdf", true},
		{"notes.md", true},
		{"page.HTML", true},
		{"memo.docx", true},
		{"data.csv", false},
		{"image.png", false},
	}
	for _, tc := range tests {
		if got := IsSupportedExtension(tc.filename); got != tc.supported {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tc.filename, got, tc.supported)
		}
	}
}
