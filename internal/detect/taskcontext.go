package detect

import (
	"regexp"
	"strings"
)

// Numeric time references: "3pm", "10 am", "14:30".
var (
	clockTimeRegex  = regexp.MustCompile(`\b\d{1,2}\s*(am|pm)\b`)
	hourMinuteRegex = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
)

// hasTaskContext reports whether a lowercased sentence carries independent
// evidence of a concrete task: a task verb, a task noun, a time-indicator
// phrase, or a numeric time reference. Generic commitment openers ("i'll",
// "we should") are only accepted when one of these is present, which is what
// keeps them from matching narration and smalltalk.
func hasTaskContext(lower string) bool {
	for _, verb := range taskVerbs {
		if containsWord(lower, verb) {
			return true
		}
	}
	for _, noun := range taskNouns {
		if containsWord(lower, noun) {
			return true
		}
	}
	for _, indicator := range timeIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return clockTimeRegex.MatchString(lower) || hourMinuteRegex.MatchString(lower)
}

// containsWord matches single words on word boundaries and phrasal entries
// (anything with a space) as plain substrings.
func containsWord(lower, entry string) bool {
	if strings.Contains(entry, " ") {
		return strings.Contains(lower, entry)
	}
	idx := strings.Index(lower, entry)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(lower[idx-1])
		afterIdx := idx + len(entry)
		after := afterIdx >= len(lower) || !isWordChar(lower[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(lower[idx+1:], entry)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
