package detect

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// SplitSentences splits a transcript into an ordered sequence of trimmed,
// non-empty sentences using Unicode (UAX #29) sentence boundaries, so
// abbreviations and mid-clause punctuation do not cause spurious splits.
// Empty input yields an empty sequence.
func SplitSentences(transcript string) []string {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	var result []string
	tokens := sentences.FromString(transcript)
	for tokens.Next() {
		s := strings.TrimSpace(tokens.Value())
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
