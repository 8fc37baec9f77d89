package chunker

import (
	"regexp"
	"strings"
)

// Defaults chosen for roughly paragraph-sized windows with enough overlap
// to keep sentences that straddle a boundary retrievable from both sides.
const (
	DefaultMaxChars = 1200
	DefaultOverlap  = 200
)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (newlines included) into a
// single space and trims the ends. Original line structure is lost, which is
// fine: downstream consumers are semantic, not layout-sensitive.
func Normalize(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// Split cuts the normalized text into overlapping windows of at most
// maxChars characters. Each window starts overlap characters before the end
// of the previous one. The result never contains empty strings and is fully
// materialized; callers batch the whole set for insertion.
func Split(text string, maxChars, overlap int) []string {
	runes := []rune(Normalize(text))
	length := len(runes)

	var chunks []string
	start := 0

	for start < length {
		end := start + maxChars
		stop := end
		if stop > length {
			stop = length
		}

		chunk := strings.TrimSpace(string(runes[start:stop]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		// Advance by maxChars-overlap. When overlap >= maxChars the step is
		// non-positive and the loop must stop after one window; without this
		// guard it would never terminate.
		start = end - overlap
		if start <= 0 || start >= length {
			break
		}
	}

	return chunks
}
