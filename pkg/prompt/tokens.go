package prompt

import "strings"

// CountTokens returns the number of maximal runs of non-whitespace characters
// in s. Markup counts too: the figure describes the rendered document, not
// the input files.
func CountTokens(s string) int {
	return len(strings.Fields(s))
}
