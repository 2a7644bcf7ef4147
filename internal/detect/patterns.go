package detect

// DefaultRules returns the built-in commitment/request rule table.
//
// Order matters: rules are tried top to bottom and the first satisfied rule
// wins. Specific rules carry enough evidence on their own; generic rules are
// common in ordinary narration and only accept a sentence when the
// task-context validator agrees. A generic rule that matches without context
// does not reject the sentence, later rules still get a chance.
func DefaultRules() []Rule {
	return []Rule{
		// Markers that stand alone as action evidence.
		{
			Name:       "dont-forget",
			Regex:      `don'?t\s+forget`,
			Confidence: 0.90,
		},
		{
			Name:       "action-item",
			Regex:      `\baction\s+item\b`,
			Confidence: 0.95,
		},
		{
			Name:       "todo-marker",
			Regex:      `^todo[:\s]`,
			Confidence: 0.90,
		},
		{
			Name:       "deadline-is",
			Regex:      `\bdeadline\s+is\b`,
			Confidence: 0.90,
		},
		{
			Name:       "due-by",
			Regex:      `\bdue\s+(?:by|on)\b`,
			Confidence: 0.85,
		},

		// Requests. Common in smalltalk ("can you believe it"), so they
		// need corroborating task context.
		{
			Name:            "please",
			Regex:           `\bplease\b`,
			Confidence:      0.80,
			RequiresContext: true,
		},
		{
			Name:            "can-you",
			Regex:           `\b(?:can|could|will|would)\s+you\b`,
			Confidence:      0.80,
			RequiresContext: true,
		},

		// First-person and collective commitments.
		{
			Name:            "we-need-to",
			Regex:           `\bwe\s+need\s+to\b`,
			Confidence:      0.80,
			RequiresContext: true,
		},
		{
			Name:            "i-need-to",
			Regex:           `\bi\s+need\s+to\b`,
			Confidence:      0.80,
			RequiresContext: true,
		},
		{
			Name:            "i-will",
			Regex:           `\bi(?:'ll|\s+will)\b`,
			Confidence:      0.75,
			RequiresContext: true,
		},
		{
			Name:            "we-will",
			Regex:           `\bwe(?:'ll|\s+will)\b`,
			Confidence:      0.70,
			RequiresContext: true,
		},
		{
			Name:            "we-must",
			Regex:           `\bwe\s+must\b`,
			Confidence:      0.75,
			RequiresContext: true,
		},
		{
			Name:            "we-should",
			Regex:           `\bwe\s+should\b`,
			Confidence:      0.70,
			RequiresContext: true,
		},
		{
			Name:            "lets",
			Regex:           `\blet'?s\b`,
			Confidence:      0.70,
			RequiresContext: true,
		},
		{
			Name:            "make-sure",
			Regex:           `\bmake\s+sure\b`,
			Confidence:      0.75,
			RequiresContext: true,
		},
		{
			Name:            "remember-to",
			Regex:           `\bremember\s+to\b`,
			Confidence:      0.80,
			RequiresContext: true,
		},
		{
			Name:            "going-to",
			Regex:           `\b(?:going\s+to|gonna)\b`,
			Confidence:      0.65,
			RequiresContext: true,
		},
		{
			Name:            "have-to",
			Regex:           `\bhave\s+to\b`,
			Confidence:      0.65,
			RequiresContext: true,
		},
		{
			Name:            "someone-should",
			Regex:           `\bsomeone\s+(?:should|needs\s+to)\b`,
			Confidence:      0.70,
			RequiresContext: true,
		},

		// Bare imperatives anchored at the start of the sentence. These sit
		// last so they can rescue sentences whose generic opener failed the
		// context check.
		{
			Name:       "imperative-verb",
			Regex:      `^(?:send|email|call|schedule|review|submit|prepare|draft|update|check|book|finish|finalize|follow\s+up|reach\s+out|contact|share|confirm)\b`,
			Confidence: 0.85,
		},
	}
}
