package parser

import "strings"

// splitWords collapses runs of whitespace and splits on it, the
// tokenization every entry point normalizes its input through before
// handing it to the chart strategy.
func splitWords(s string) []string {
	return strings.Fields(s)
}
