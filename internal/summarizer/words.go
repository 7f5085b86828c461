package summarizer

import "strings"

// CountWords counts whitespace-delimited words. It is the only word count
// definition used across the application.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
