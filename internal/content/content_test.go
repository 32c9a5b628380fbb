// ABOUTME: Tests for content processing utilities
// ABOUTME: Covers HTML detection, conversion, and whitespace normalization

package content

import (
	"strings"
	"testing"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"doctype", "<!DOCTYPE html><body>hi</body>", true},
		{"html tag", "<html><head></head></html>", true},
		{"paragraph", "<p>Some text</p>", true},
		{"heading", "<h1>Title</h1>", true},
		{"link", `<a href="https://example.com">link</a>`, true},
		{"plain text", "Just a normal journal entry.", false},
		{"markdown", "# Heading\n\nSome **bold** text", false},
		{"less-than in prose", "temperature < 20 degrees today", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTML(tt.content); got != tt.want {
				t.Errorf("IsHTML(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestToMarkdownConvertsHTML(t *testing.T) {
	html := "<h1>Monday</h1><p>Went for a <strong>long</strong> walk.</p>"
	got := ToMarkdown(html)

	if strings.Contains(got, "<p>") || strings.Contains(got, "<strong>") {
		t.Errorf("expected HTML tags removed, got %q", got)
	}
	if !strings.Contains(got, "Monday") || !strings.Contains(got, "walk") {
		t.Errorf("expected text preserved, got %q", got)
	}
	if !strings.Contains(got, "**long**") {
		t.Errorf("expected bold converted to markdown, got %q", got)
	}
}

func TestToMarkdownPassesPlainTextThrough(t *testing.T) {
	plain := "A quiet day. Nothing much happened."
	if got := ToMarkdown(plain); got != plain {
		t.Errorf("ToMarkdown(%q) = %q, expected unchanged", plain, got)
	}
}

func TestToMarkdownEmpty(t *testing.T) {
	if got := ToMarkdown(""); got != "" {
		t.Errorf("ToMarkdown(\"\") = %q, expected empty", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  hello  \n", "hello"},
		{"collapses blank runs", "one\n\n\n\ntwo", "one\n\ntwo"},
		{"keeps single blank line", "one\n\ntwo", "one\n\ntwo"},
		{"crlf converted", "one\r\ntwo", "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
