package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-03-02 10:00 UTC keeps every relative phrase deterministic.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string // "2006-01-02 15:04", empty means no date expected
	}{
		{
			name:     "absolute month day year",
			sentence: "We need to finalize the deck by March 5, 2030",
			want:     "2030-03-05 00:00",
		},
		{
			name:     "absolute day month year",
			sentence: "Submit the budget by 5 March 2030",
			want:     "2030-03-05 00:00",
		},
		{
			name:     "absolute with ordinal suffix",
			sentence: "Email John by April 1st, 2030",
			want:     "2030-04-01 00:00",
		},
		{
			name:     "iso date",
			sentence: "The migration is scheduled for 2030-04-01",
			want:     "2030-04-01 00:00",
		},
		{
			name:     "slash date",
			sentence: "Invoice is due 3/5/2030",
			want:     "2030-03-05 00:00",
		},
		{
			name:     "month day without year uses current year",
			sentence: "Review the contract by March 20",
			want:     "2026-03-20 00:00",
		},
		{
			name:     "tomorrow",
			sentence: "Send the proposal tomorrow",
			want:     "2026-03-03 00:00",
		},
		{
			name:     "day after tomorrow shadows tomorrow",
			sentence: "Circle back the day after tomorrow",
			want:     "2026-03-04 00:00",
		},
		{
			name:     "today",
			sentence: "Finish the draft today",
			want:     "2026-03-02 00:00",
		},
		{
			name:     "next week",
			sentence: "Let's sync next week",
			want:     "2026-03-09 00:00",
		},
		{
			name:     "next month",
			sentence: "Renew the contract next month",
			want:     "2026-04-02 00:00",
		},
		{
			name:     "weekday resolves forward",
			sentence: "Send the report by Friday",
			want:     "2026-03-06 00:00",
		},
		{
			name:     "next weekday",
			sentence: "Review the contract next Friday",
			want:     "2026-03-06 00:00",
		},
		{
			name:     "same weekday never resolves to today",
			sentence: "Submit the form by Monday",
			want:     "2026-03-09 00:00",
		},
		{
			name:     "earliest weekday mention wins",
			sentence: "Move the Thursday review to Tuesday",
			want:     "2026-03-05 00:00",
		},
		{
			name:     "in N days",
			sentence: "Follow up in 3 days",
			want:     "2026-03-05 00:00",
		},
		{
			name:     "in N weeks",
			sentence: "Check back in 2 weeks",
			want:     "2026-03-16 00:00",
		},
		{
			name:     "in N months",
			sentence: "Revisit the pricing in 1 month",
			want:     "2026-04-02 00:00",
		},
		{
			name:     "asap",
			sentence: "Fix the login bug asap",
			want:     "2026-03-03 00:00",
		},
		{
			name:     "as soon as possible",
			sentence: "Deploy the patch as soon as possible",
			want:     "2026-03-03 00:00",
		},
		{
			name:     "end of month",
			sentence: "Close the books by end of month",
			want:     "2026-03-31 00:00",
		},
		{
			name:     "end of the month",
			sentence: "Pay the invoice by the end of the month",
			want:     "2026-03-31 00:00",
		},
		{
			name:     "within a week",
			sentence: "Resolve the ticket within a week",
			want:     "2026-03-09 00:00",
		},
		{
			name:     "within a month",
			sentence: "Finish the audit within a month",
			want:     "2026-04-02 00:00",
		},
		{
			name:     "end of week",
			sentence: "Share the slides by end of week",
			want:     "2026-03-06 00:00",
		},
		{
			name:     "date plus clock time",
			sentence: "Submit the form by 3pm tomorrow",
			want:     "2026-03-03 15:00",
		},
		{
			name:     "date plus hour and minutes",
			sentence: "Book the room for Friday at 9:30",
			want:     "2026-03-06 09:30",
		},
		{
			name:     "end of day anchors to reference date",
			sentence: "Send the summary by end of day",
			want:     "2026-03-02 17:00",
		},
		{
			name:     "eod shorthand",
			sentence: "Upload the recording by eod",
			want:     "2026-03-02 17:00",
		},
		{
			name:     "before noon",
			sentence: "Confirm the booking before noon tomorrow",
			want:     "2026-03-03 12:00",
		},
		{
			name:     "pm conversion",
			sentence: "Call the vendor tomorrow at 4pm",
			want:     "2026-03-03 16:00",
		},
		{
			name:     "twelve pm stays noon",
			sentence: "Order lunch tomorrow by 12pm",
			want:     "2026-03-03 12:00",
		},
		{
			name:     "twelve am is midnight",
			sentence: "The job runs tomorrow at 12am",
			want:     "2026-03-03 00:00",
		},
		{
			name:     "spelled hour after at",
			sentence: "Ping me tomorrow at nine am",
			want:     "2026-03-03 09:00",
		},
		{
			name:     "afternoon does not read as a clock time",
			sentence: "Draft the agenda tomorrow afternoon",
			want:     "2026-03-03 00:00",
		},
		{
			name:     "no date reference",
			sentence: "Send the report to the whole team",
			want:     "",
		},
		{
			name:     "empty sentence",
			sentence: "",
			want:     "",
		},
	}

	e := NewExtractor(fixedNow)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.sentence)

			if tt.want == "" {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Format("2006-01-02 15:04"))
		})
	}
}

func TestExtractDefaultsToWallClock(t *testing.T) {
	e := NewExtractor(nil)
	got := e.Extract("Handle it tomorrow")
	require.NotNil(t, got)
	assert.True(t, got.After(time.Now()))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantHour int
		wantMin  int
		wantNil  bool
	}{
		{name: "by pm hour", text: "by 3pm", wantHour: 15},
		{name: "at am hour", text: "at 8am", wantHour: 8},
		{name: "before with minutes", text: "before 10:45", wantHour: 10, wantMin: 45},
		{name: "pm with minutes", text: "at 6:15 pm", wantHour: 18, wantMin: 15},
		{name: "bare hour without marker skipped", text: "by 5", wantNil: true},
		{name: "year not mistaken for time", text: "wrap up by 2030", wantNil: true},
		{name: "invalid minutes rejected", text: "at 9:75am", wantNil: true},
		{name: "no time at all", text: "sometime soon", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimeOfDay(tt.text)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantHour, got.hour)
			assert.Equal(t, tt.wantMin, got.minute)
		})
	}
}

func TestNormalizeSpelledNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "noon becomes digits", in: "by noon sharp", want: "by 12pm sharp"},
		{name: "midnight becomes digits", in: "at midnight tonight", want: "at 12am tonight"},
		{name: "afternoon untouched", in: "tomorrow afternoon works", want: "tomorrow afternoon works"},
		{name: "spelled hour after at", in: "meet at nine", want: "meet at 9"},
		{name: "spelled hour before marker", in: "done by eleven pm", want: "done by 11 pm"},
		{name: "plain words untouched", in: "none of the nineteen options", want: "none of the nineteen options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSpelledNumbers(tt.in))
		})
	}
}

func TestNextWeekday(t *testing.T) {
	// testNow is a Monday.
	assert.Equal(t, "2026-03-03", nextWeekday(testNow, time.Tuesday).Format("2006-01-02"))
	assert.Equal(t, "2026-03-06", nextWeekday(testNow, time.Friday).Format("2006-01-02"))
	assert.Equal(t, "2026-03-08", nextWeekday(testNow, time.Sunday).Format("2006-01-02"))
	assert.Equal(t, "2026-03-09", nextWeekday(testNow, time.Monday).Format("2006-01-02"))
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), "2026-03-31"},
		{time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), "2026-02-28"},
		{time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC), "2028-02-29"},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "2026-12-31"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, endOfMonth(tt.now).Format("2006-01-02"))
	}
}
