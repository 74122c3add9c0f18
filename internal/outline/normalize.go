package outline

import (
	"regexp"
	"strings"
)

var colonSpacing = regexp.MustCompile(`\s+:\s*|:\s+`)

// Normalizer cleans raw extracted text: repeated-character artifacts like
// "RRRReeeeqqq" collapse to single characters, whitespace collapses to
// single spaces, and an optional replacement dictionary fixes known
// garbled substrings. Normalize is idempotent.
type Normalizer struct {
	replacements map[string]string
}

func NewNormalizer(replacements map[string]string) *Normalizer {
	return &Normalizer{replacements: replacements}
}

// Normalize returns the cleaned form of raw.
func (n *Normalizer) Normalize(raw string) string {
	s := collapseRuns(raw, 3)
	s = collapseAlphaTriples(s)
	for from, to := range n.replacements {
		s = strings.ReplaceAll(s, from, to)
	}
	s = colonSpacing.ReplaceAllString(s, ": ")
	return strings.Join(strings.Fields(s), " ")
}

// collapseRuns reduces any run of minRun or more identical runes to a
// single occurrence.
func collapseRuns(s string, minRun int) string {
	var sb strings.Builder
	sb.Grow(len(s))
	var runs []rune
	flush := func() {
		if len(runs) == 0 {
			return
		}
		if len(runs) >= minRun {
			sb.WriteRune(runs[0])
		} else {
			for _, r := range runs {
				sb.WriteRune(r)
			}
		}
		runs = runs[:0]
	}
	for _, r := range s {
		if len(runs) > 0 && runs[len(runs)-1] != r {
			flush()
		}
		runs = append(runs, r)
	}
	flush()
	return sb.String()
}

// collapseAlphaTriples is the gentler second pass: exactly three identical
// ASCII letters in a row become one, leaving legitimate double letters
// alone.
func collapseAlphaTriples(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		if isASCIILetter(r) && i+2 < len(rs) && rs[i+1] == r && rs[i+2] == r &&
			(i+3 >= len(rs) || rs[i+3] != r) {
			sb.WriteRune(r)
			i += 3
			continue
		}
		sb.WriteRune(r)
		i++
	}
	return sb.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func lowerASCII(s string) string {
	return strings.ToLower(s)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
