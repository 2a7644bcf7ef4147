package detect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxTitleChars  = 60
	truncationMark = "..."
)

// ExtractTitle turns a sentence that matched a rule into a short
// human-readable title: the first matching trigger prefix is stripped, the
// remainder is capitalized, trailing sentence punctuation is removed, and
// the result is truncated at a word boundary to at most 60 characters plus
// the truncation marker.
func ExtractTitle(sentence string) string {
	title := strings.TrimSpace(sentence)
	lower := strings.ToLower(title)

	for _, prefix := range removablePrefixes {
		if strings.HasPrefix(lower, prefix) {
			title = strings.TrimSpace(title[len(prefix):])
			break
		}
	}

	title = strings.TrimRight(title, ".!? ")
	title = capitalizeFirst(title)

	if utf8.RuneCountInString(title) > maxTitleChars {
		title = truncateAtWord(title, maxTitleChars) + truncationMark
	}

	return strings.TrimSpace(title)
}

// capitalizeFirst upper-cases the first letter, leaving the rest untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncateAtWord cuts s to at most limit runes, backing up to the nearest
// preceding word boundary so no word is split.
func truncateAtWord(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:")
}
