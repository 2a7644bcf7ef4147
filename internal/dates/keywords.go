package dates

import (
	"regexp"
	"strings"
	"time"
)

// relativeKeyword maps a spoken phrase to a day offset from the reference
// date. Entries are tried in order so longer phrases shadow their substrings
// ("day after tomorrow" before "tomorrow").
type relativeKeyword struct {
	phrase string
	days   int
}

var relativeKeywords = []relativeKeyword{
	{phrase: "day after tomorrow", days: 2},
	{phrase: "tomorrow", days: 1},
	{phrase: "tonight", days: 0},
	{phrase: "today", days: 0},
	{phrase: "next week", days: 7},
}

// weekdays is ordered so resolution is stable when a sentence names more
// than one day: the first mention in the sentence wins.
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

var numericRelativeRegex = regexp.MustCompile(`\bin\s+(\d+)\s+(day|week|month)s?\b`)

// resolveKeywordDate resolves relative-date phrases against the reference
// time: the keyword table, named weekdays, and "next month". Returns nil
// when nothing matches.
func resolveKeywordDate(lower string, now time.Time) *time.Time {
	for _, kw := range relativeKeywords {
		if strings.Contains(lower, kw.phrase) {
			d := midnight(now).AddDate(0, 0, kw.days)
			return &d
		}
	}

	if strings.Contains(lower, "next month") {
		d := midnight(now).AddDate(0, 1, 0)
		return &d
	}
	if strings.Contains(lower, "end of week") {
		d := nextWeekday(now, time.Friday)
		return &d
	}

	// Named weekdays resolve to the nearest future occurrence, never today,
	// whether spoken as "next friday", "on friday", "by friday", or bare.
	// The earliest mention in the sentence wins.
	first := -1
	var firstDay time.Weekday
	for _, wd := range weekdays {
		idx := strings.Index(lower, wd.name)
		if idx < 0 || !containsWholeWord(lower, wd.name) {
			continue
		}
		if first < 0 || idx < first {
			first = idx
			firstDay = wd.day
		}
	}
	if first >= 0 {
		d := nextWeekday(now, firstDay)
		return &d
	}

	return nil
}

// nextWeekday returns the nearest occurrence of wd strictly after now's date.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight(now).AddDate(0, 0, days)
}

// endOfMonth returns the last calendar day of now's month.
func endOfMonth(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsWholeWord(lower, word string) bool {
	idx := strings.Index(lower, word)
	for idx >= 0 {
		before := idx == 0 || !isLetter(lower[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(lower) || !isLetter(lower[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(lower[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
