// Package dates infers due dates and times from natural-language sentences.
// Every parse failure is silent: absence of a date is a normal outcome, not
// an error.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Extractor resolves an optional due date and time from a sentence. The
// reference time is injected so results are deterministic under test.
type Extractor struct {
	parser *when.Parser
	now    func() time.Time
}

// NewExtractor creates an extractor. A nil now falls back to time.Now.
func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Extractor{parser: w, now: now}
}

// Extract returns the due date+time inferred from the sentence, or nil when
// the sentence carries no usable date or time reference.
//
// Resolution order: explicit calendar dates, the relative-keyword table,
// "in N days/weeks/months", special phrases, and finally the general
// date-phrase detector. A resolved date is then enriched with a parsed
// time of day; a standalone time of day anchors to the reference date.
func (e *Extractor) Extract(sentence string) *time.Time {
	now := e.now()
	lower := strings.ToLower(sentence)
	normalized := normalizeSpelledNumbers(lower)

	date := e.resolveDate(lower, normalized, now)

	tod := parseTimeOfDay(normalized)
	if date == nil {
		if tod == nil {
			return nil
		}
		d := time.Date(now.Year(), now.Month(), now.Day(), tod.hour, tod.minute, 0, 0, now.Location())
		return &d
	}
	if tod != nil {
		d := time.Date(date.Year(), date.Month(), date.Day(), tod.hour, tod.minute, 0, 0, now.Location())
		return &d
	}
	return date
}

func (e *Extractor) resolveDate(lower, normalized string, now time.Time) *time.Time {
	if d := parseAbsoluteDate(lower, now); d != nil {
		return d
	}
	if d := resolveKeywordDate(lower, now); d != nil {
		return d
	}
	if d := parseNumericRelative(lower, now); d != nil {
		return d
	}
	if d := parseSpecialPhrase(lower, now); d != nil {
		return d
	}

	// General detector runs last, on the digit-normalized copy first and
	// the original as fallback.
	for _, text := range []string{normalized, lower} {
		result, err := e.parser.Parse(text, now)
		if err == nil && result != nil {
			d := result.Time
			return &d
		}
	}
	return nil
}

// Absolute calendar dates: "March 5, 2030", "5 March 2030", "2030-03-05",
// "3/5/2030". A missing year means the current year.
var (
	monthNames = "january|february|march|april|may|june|july|august|september|october|november|december"

	monthDayRegex = regexp.MustCompile(`\b(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthRegex = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)(?:,?\s+(\d{4}))?\b`)
	isoDateRegex  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashRegex    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)

	monthIndex = func() map[string]time.Month {
		m := make(map[string]time.Month, 12)
		for i, name := range strings.Split(monthNames, "|") {
			m[name] = time.Month(i + 1)
		}
		return m
	}()
)

func parseAbsoluteDate(lower string, now time.Time) *time.Time {
	if m := monthDayRegex.FindStringSubmatch(lower); m != nil {
		return buildDate(m[3], monthIndex[m[1]], m[2], now)
	}
	if m := dayMonthRegex.FindStringSubmatch(lower); m != nil {
		return buildDate(m[3], monthIndex[m[2]], m[1], now)
	}
	if m := isoDateRegex.FindStringSubmatch(lower); m != nil {
		return buildDate(m[1], time.Month(atoi(m[2])), m[3], now)
	}
	if m := slashRegex.FindStringSubmatch(lower); m != nil {
		return buildDate(m[3], time.Month(atoi(m[1])), m[2], now)
	}
	return nil
}

func buildDate(yearStr string, month time.Month, dayStr string, now time.Time) *time.Time {
	year := now.Year()
	if yearStr != "" {
		year = atoi(yearStr)
	}
	day := atoi(dayStr)
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return nil
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return &d
}

func parseNumericRelative(lower string, now time.Time) *time.Time {
	m := numericRelativeRegex.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n := atoi(m[1])
	var d time.Time
	switch m[2] {
	case "day":
		d = midnight(now).AddDate(0, 0, n)
	case "week":
		d = midnight(now).AddDate(0, 0, n*7)
	case "month":
		d = midnight(now).AddDate(0, n, 0)
	default:
		return nil
	}
	return &d
}

func parseSpecialPhrase(lower string, now time.Time) *time.Time {
	switch {
	case strings.Contains(lower, "as soon as possible"), containsWholeWord(lower, "asap"):
		d := midnight(now).AddDate(0, 0, 1)
		return &d
	case strings.Contains(lower, "end of month"), strings.Contains(lower, "end of the month"):
		d := endOfMonth(now)
		return &d
	case strings.Contains(lower, "within a week"):
		d := midnight(now).AddDate(0, 0, 7)
		return &d
	case strings.Contains(lower, "within a month"):
		d := midnight(now).AddDate(0, 1, 0)
		return &d
	}
	return nil
}

// Time of day.

type clockTime struct {
	hour   int
	minute int
}

// timeOfDayRegex wants either minutes or an am/pm marker next to the hour;
// a bare "by 2030" would otherwise read as a clock time.
var timeOfDayRegex = regexp.MustCompile(`\b(?:by|at|before)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

func parseTimeOfDay(lower string) *clockTime {
	if strings.Contains(lower, "end of day") || containsWholeWord(lower, "eod") {
		return &clockTime{hour: 17}
	}

	// "before noon" arrives here as "before 12pm": normalization has already
	// rewritten noon and midnight to their digit forms.
	m := timeOfDayRegex.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	if m[2] == "" && m[3] == "" {
		return nil
	}

	hour := atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute = atoi(m[2])
	}
	switch m[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}
	return &clockTime{hour: hour, minute: minute}
}

// Spelled-out small numbers next to time markers are rewritten to digits so
// the general detector can pick them up ("at nine" -> "at 9").
var (
	spelledNumbers = map[string]string{
		"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
		"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
		"eleven": "11", "twelve": "12",
	}

	spelledWords = `one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve`

	afterAtRegex    = regexp.MustCompile(`\b(at\s+)(` + spelledWords + `)\b`)
	beforeMarkRegex = regexp.MustCompile(`\b(` + spelledWords + `)(\s*(?:am|pm|o'clock))\b`)

	// Whole words only: "afternoon" must not become "after12pm".
	noonRegex     = regexp.MustCompile(`\bnoon\b`)
	midnightRegex = regexp.MustCompile(`\bmidnight\b`)
)

func normalizeSpelledNumbers(lower string) string {
	s := midnightRegex.ReplaceAllString(lower, "12am")
	s = noonRegex.ReplaceAllString(s, "12pm")
	s = afterAtRegex.ReplaceAllStringFunc(s, func(match string) string {
		m := afterAtRegex.FindStringSubmatch(match)
		return m[1] + spelledNumbers[m[2]]
	})
	s = beforeMarkRegex.ReplaceAllStringFunc(s, func(match string) string {
		m := beforeMarkRegex.FindStringSubmatch(match)
		return spelledNumbers[m[1]] + m[2]
	})
	return s
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
