// README: Entity normalization (destination cleanup).
package nlu

import (
	"regexp"
	"strings"
)

// Connective words that leak out of the destination patterns
// ("flüge nach paris suchen" extracts "paris suchen").
var destinationStopWords = regexp.MustCompile(`(?i)\b(suchen|finden|reisen|nach|zu)\b`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeDestination strips connective words and collapses whitespace.
// Total: empty input comes back unchanged, there are no error cases.
func NormalizeDestination(raw string) string {
	if raw == "" {
		return raw
	}
	cleaned := destinationStopWords.ReplaceAllString(raw, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
