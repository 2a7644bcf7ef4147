package detect

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{
			name:     "strips commitment prefix",
			sentence: "I'll send the proposal to the client.",
			want:     "Send the proposal to the client",
		},
		{
			name:     "strips dont forget prefix",
			sentence: "Don't forget to email John by April 1, 2030.",
			want:     "Email John by April 1, 2030",
		},
		{
			name:     "strips request prefix and question mark",
			sentence: "Can you send the report by Friday?",
			want:     "Send the report by Friday",
		},
		{
			name:     "strips please prefix",
			sentence: "Please send the proposal.",
			want:     "Send the proposal",
		},
		{
			name:     "longest prefix wins",
			sentence: "Can you please review the contract?",
			want:     "Review the contract",
		},
		{
			name:     "no prefix keeps sentence",
			sentence: "Submit the form by 3pm tomorrow",
			want:     "Submit the form by 3pm tomorrow",
		},
		{
			name:     "capitalizes first letter",
			sentence: "we need to finalize the deck by March 5, 2030.",
			want:     "Finalize the deck by March 5, 2030",
		},
		{
			name:     "strips exclamation",
			sentence: "Let's ship the release!",
			want:     "Ship the release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.sentence))
		})
	}
}

func TestExtractTitleTruncation(t *testing.T) {
	sentence := "I'll coordinate the quarterly planning review with the regional leadership team before the offsite"
	title := ExtractTitle(sentence)

	assert.LessOrEqual(t, utf8.RuneCountInString(title), maxTitleChars+len(truncationMark))
	assert.True(t, strings.HasSuffix(title, truncationMark), "long titles end with the truncation mark: %q", title)
	// Truncation lands on a word boundary, never mid-word
	trimmed := strings.TrimSuffix(title, truncationMark)
	assert.False(t, strings.HasSuffix(trimmed, " "))
	assert.True(t, strings.HasPrefix(sentence[5:], strings.ToLower(trimmed[:1])+trimmed[1:]))
}

func TestExtractTitleFormatting(t *testing.T) {
	sentences := []string{
		"I'll send it to everyone on the team.",
		"we should book the venue for friday!",
		"Can you check the deployment status?",
		"Don't forget to submit the expense report today.",
	}

	for _, sentence := range sentences {
		title := ExtractTitle(sentence)
		assert.NotEmpty(t, title)
		first, _ := utf8.DecodeRuneInString(title)
		assert.False(t, first >= 'a' && first <= 'z', "title starts uppercase: %q", title)
		for _, suffix := range []string{".", "!", "?"} {
			if !strings.HasSuffix(title, truncationMark) {
				assert.False(t, strings.HasSuffix(title, suffix), "title %q ends with %q", title, suffix)
			}
		}
	}
}
