package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jpcostan/pulse/internal/model"
)

// Rule is one entry of the commitment/request rule table.
type Rule struct {
	Name            string
	Regex           string
	Confidence      float64 // Fixed confidence recorded on a match (0.0-1.0)
	RequiresContext bool    // Generic rules need task-context validation
}

// compiledRule holds a compiled regex rule.
type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

// Classifier decides whether a sentence is a concrete action item. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	rules []compiledRule
}

// NewClassifier compiles the given rule table, preserving its order.
func NewClassifier(rules []Rule) (*Classifier, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			return nil, fmt.Errorf("rule %s: confidence must be between 0 and 1", r.Name)
		}

		compiled = append(compiled, compiledRule{
			Rule:  r,
			regex: regex,
		})
	}

	return &Classifier{rules: compiled}, nil
}

// RuleCount returns the number of loaded rules.
func (c *Classifier) RuleCount() int {
	return len(c.rules)
}

// Classify runs the guard filters and the rule table against one sentence.
// It returns nil when the sentence produces no action, which is the normal
// outcome for most sentences.
//
// Rules are tried in declared order and the first satisfied rule wins: a
// match on a generic rule that fails context validation moves on to the next
// rule rather than rejecting the sentence, so a later specific rule can
// still accept it.
func (c *Classifier) Classify(sentence string) *model.DetectedAction {
	sentence = strings.TrimSpace(sentence)
	lower := strings.ToLower(sentence)

	if !passesLengthGuard(sentence) {
		return nil
	}
	if !passesNegationGuard(lower) {
		return nil
	}
	if !passesQuestionGuard(sentence, lower) {
		return nil
	}

	for _, rule := range c.rules {
		if !rule.regex.MatchString(sentence) {
			continue
		}
		if rule.RequiresContext && !hasTaskContext(lower) {
			continue
		}

		title := ExtractTitle(sentence)
		if !passesTitleGuard(title) {
			return nil
		}

		return &model.DetectedAction{
			Title:          title,
			SourceSentence: sentence,
			Confidence:     rule.Confidence,
		}
	}

	return nil
}
