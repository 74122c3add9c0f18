// Package parser maps document formats to outline front-ends. The PDF
// path runs the full heading-detection engine; markup formats with
// explicit heading levels (Markdown, HTML, DOCX) translate directly.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Parser converts raw document bytes into an outline.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.Result, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename. cfg only affects
// the PDF path; markup formats carry their structure explicitly.
func ForFile(filename string, cfg outline.Config) (Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		return &PDFParser{Config: cfg}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// heading is an explicit-level heading from a markup front-end, before
// level compaction.
type heading struct {
	level int
	text  string
}

// buildResult turns explicit-level headings into the shared output
// contract: the document's leading top-ranked heading becomes the title,
// and the remaining levels compact onto a dense H1..Hn range so the
// outline never has level gaps.
func buildResult(headings []heading, fallbackTitle string) *outline.Result {
	res := &outline.Result{Title: fallbackTitle, Outline: []outline.Entry{}}
	if len(headings) == 0 {
		return res
	}

	if headings[0].level == minLevel(headings) {
		res.Title = headings[0].text
		headings = headings[1:]
	}
	res.Outline = rankEntries(headings)
	return res
}

// rankEntries compacts explicit source levels onto a dense H1..Hn range;
// entry order is untouched.
func rankEntries(headings []heading) []outline.Entry {
	entries := []outline.Entry{}
	if len(headings) == 0 {
		return entries
	}
	present := make(map[int]bool)
	for _, h := range headings {
		present[h.level] = true
	}
	rank := make(map[int]int)
	next := 1
	for lvl := 1; lvl <= 9; lvl++ {
		if present[lvl] {
			rank[lvl] = next
			next++
		}
	}
	for _, h := range headings {
		entries = append(entries, outline.Entry{
			Level: fmt.Sprintf("H%d", rank[h.level]),
			Text:  h.text,
			Page:  1,
		})
	}
	return entries
}

func minLevel(headings []heading) int {
	min := headings[0].level
	for _, h := range headings {
		if h.level < min {
			min = h.level
		}
	}
	return min
}

// stem strips the extension from a filename for use as a fallback title.
func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
