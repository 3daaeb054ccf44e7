package main

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/taskdeck/taskdeck/internal/markdown"
	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
)

func renderMarkdownOrDash(value string, width int) string {
	if width < 1 {
		width = 1
	}
	formatted := markdown.SafeRender(width, 0, []byte(value))
	if strings.TrimSpace(string(formatted)) == "" {
		return "-"
	}
	return string(formatted)
}

// reflowParagraphs wraps and normalizes paragraph text.
func reflowParagraphs(value string, width int) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}

	paragraphs := splitParagraphs(value)
	wrapped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, width))
	}
	return strings.Join(wrapped, "\n\n")
}

func splitParagraphs(value string) []string {
	lines := strings.Split(value, "\n")
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, strings.Join(current, " "))
		current = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}
