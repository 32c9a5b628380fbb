// ABOUTME: Match highlighting as structured segments with a **bold** renderer
// ABOUTME: Segments avoid delimiter collisions with genuine user content

package search

import (
	"regexp"
	"strings"
)

// Segment is one run of text, either highlighted or plain. Renderers
// decide how to display highlighted runs; Render gives the markdown-like
// transport string for callers that want one.
type Segment struct {
	Text        string
	Highlighted bool
}

// Highlight splits text into plain and highlighted segments around
// query-word matches. Whole-word mode anchors each token at word
// boundaries; substring mode marks every query-word occurrence,
// case-insensitive unless configured otherwise.
func Highlight(text, query string, cfg Config) []Segment {
	if text == "" {
		return nil
	}

	words := strings.Fields(strings.TrimSpace(query))
	if cfg.WholeWordsOnly {
		kept := words[:0]
		for _, w := range words {
			if len([]rune(w)) >= minTokenLength {
				kept = append(kept, w)
			}
		}
		words = kept
	}
	if len(words) == 0 {
		return []Segment{{Text: text}}
	}

	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	pattern := "(?:" + strings.Join(quoted, "|") + ")"
	if cfg.WholeWordsOnly {
		pattern = `\b` + pattern + `\b`
	}
	if !cfg.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Highlighted: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// Render produces the **…** transport string from segments.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Highlighted {
			b.WriteString("**")
			b.WriteString(seg.Text)
			b.WriteString("**")
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Strip removes the ** delimiters from a rendered highlight string.
func Strip(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
