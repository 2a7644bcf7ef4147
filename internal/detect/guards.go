package detect

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// minSentenceWords rejects fragments; commitments are at least a verb,
	// an object, and usually a qualifier.
	minSentenceWords = 3
	// maxSentenceChars rejects prose paragraphs that happen to contain a
	// trigger phrase.
	maxSentenceChars = 200
)

// negationRegex captures a leading negation marker and the verb it negates.
// Missing apostrophes ("dont") are common in transcription output.
var negationRegex = regexp.MustCompile(`^(?:don'?t|do not)\s+([a-z']+)`)

// requestIdioms mark questions that are really commands ("Can you send the
// report by Friday?") and must survive the question guard.
var requestIdioms = []string{"can you", "could you", "will you", "would you", "please"}

// passesLengthGuard rejects sentences too short to be a directive or too
// long to be a single one.
func passesLengthGuard(sentence string) bool {
	if len(strings.Fields(sentence)) < minSentenceWords {
		return false
	}
	return utf8.RuneCountInString(sentence) <= maxSentenceChars
}

// passesNegationGuard rejects sentences that open by negating a verb.
// "Don't forget ..." is the exception: it asserts an action.
func passesNegationGuard(lower string) bool {
	m := negationRegex.FindStringSubmatch(lower)
	if m == nil {
		return true
	}
	return m[1] == "forget"
}

// passesQuestionGuard rejects genuine questions but keeps requests that are
// merely phrased as questions.
func passesQuestionGuard(sentence, lower string) bool {
	if !strings.HasSuffix(strings.TrimSpace(sentence), "?") {
		return true
	}
	for _, idiom := range requestIdioms {
		if strings.Contains(lower, idiom) {
			return true
		}
	}
	return false
}

// passesTitleGuard rejects titles that are empty or a single stop word,
// which happens when prefix stripping leaves a meaningless residue.
func passesTitleGuard(title string) bool {
	if title == "" {
		return false
	}
	if strings.ContainsRune(title, ' ') {
		return true
	}
	_, stop := titleStopWords[strings.ToLower(title)]
	return !stop
}
