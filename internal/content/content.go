// ABOUTME: Content processing utilities for imported journal text
// ABOUTME: Detects HTML and converts to Markdown so imports read cleanly

package content

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote)[^>]*>`)

// blankRunPattern matches runs of three or more newlines
var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// IsHTML checks if content appears to be HTML
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts HTML content to Markdown for storage as a journal
// entry. Plain text passes through untouched apart from whitespace
// normalization; a failed conversion falls back to the original content.
func ToMarkdown(content string) string {
	if content == "" {
		return content
	}

	if IsHTML(content) {
		if markdown, err := htmltomarkdown.ConvertString(content); err == nil {
			content = markdown
		}
	}

	return Normalize(content)
}

// Normalize trims surrounding whitespace and collapses runs of blank
// lines down to a single blank line.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = blankRunPattern.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
