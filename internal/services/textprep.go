package services

import (
	"strings"
)

// NormalizeText trims each line and drops blank ones so extracted
// document text compares cleanly regardless of source formatting.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// CountWords reports the number of whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
