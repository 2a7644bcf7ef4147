package detect

// Fixed vocabularies used by the task-context validator and the guard
// filters. These are read-only configuration: the classifier itself never
// branches on individual words, it only consults these sets.

// taskVerbs are verbs that indicate concrete work. Single-word entries are
// matched on word boundaries; entries containing a space are phrasal and
// matched as substrings.
var taskVerbs = []string{
	"send", "email", "call", "phone", "text", "message",
	"schedule", "reschedule", "book", "reserve", "arrange", "organize", "plan",
	"review", "submit", "finish", "complete", "finalize", "deliver",
	"prepare", "write", "draft", "update", "revise", "edit",
	"check", "confirm", "verify", "test", "validate",
	"order", "buy", "purchase", "pay", "invoice",
	"follow up", "reach out", "circle back", "get back",
	"share", "upload", "post", "publish", "print", "scan",
	"sign", "approve", "cancel", "renew",
	"fix", "deploy", "install", "migrate", "back up",
	"research", "investigate", "analyze", "summarize", "document",
	"contact", "remind", "notify", "ping", "sync", "coordinate",
	"assign", "delegate", "escalate", "resolve", "pick up", "drop off",
}

// taskNouns are objects that usually mean a task is being discussed.
var taskNouns = []string{
	"email", "report", "meeting", "deadline", "proposal", "presentation",
	"deck", "slides", "document", "doc", "contract", "invoice", "budget",
	"agenda", "summary", "draft", "spec", "ticket", "task", "follow-up",
	"demo", "prototype", "release", "launch", "milestone", "deliverable",
	"form", "survey", "appointment", "reservation", "quote",
}

// timeIndicators are phrases that anchor a sentence to a point in time.
// Matched as substrings against the lowercased sentence.
var timeIndicators = []string{
	"today", "tonight", "tomorrow", "asap", "as soon as possible",
	"end of day", "end of week", "end of month", "eod",
	"this week", "next week", "this month", "next month",
	"monday", "tuesday", "wednesday", "thursday", "friday",
	"saturday", "sunday", "noon", "midnight", "morning", "afternoon",
}

// titleStopWords are tokens that cannot stand alone as a title. When prefix
// stripping leaves only one of these, the sentence produces no action.
var titleStopWords = map[string]struct{}{
	"see": {}, "that": {}, "this": {}, "it": {}, "them": {}, "there": {},
	"here": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"do": {}, "did": {}, "go": {}, "get": {}, "got": {},
	"so": {}, "well": {}, "okay": {}, "ok": {}, "yeah": {}, "yes": {}, "no": {},
	"right": {}, "just": {}, "like": {}, "really": {}, "actually": {},
	"basically": {}, "anyway": {}, "then": {},
	"um": {}, "uh": {}, "hmm": {},
	"i": {}, "you": {}, "we": {}, "they": {}, "he": {}, "she": {},
	"me": {}, "him": {}, "her": {}, "us": {},
	"know": {}, "think": {}, "mean": {}, "say": {}, "said": {}, "sure": {},
	"thing": {}, "stuff": {},
}

// removablePrefixes mirror the trigger phrases of the rule table. The title
// extractor strips the first one found at the start of a matched sentence.
// Longer variants come before their shorter forms so the longest wins.
var removablePrefixes = []string{
	"don't forget that we need to ",
	"don't forget to ",
	"dont forget to ",
	"don't forget ",
	"dont forget ",
	"can you please ",
	"could you please ",
	"will you please ",
	"would you please ",
	"can you ",
	"could you ",
	"will you ",
	"would you ",
	"please ",
	"we need to ",
	"i need to ",
	"you need to ",
	"we should ",
	"i should ",
	"we must ",
	"we have to ",
	"i have to ",
	"i'm going to ",
	"im going to ",
	"we're going to ",
	"we are going to ",
	"i am going to ",
	"going to ",
	"gonna ",
	"i'll ",
	"i will ",
	"we'll ",
	"we will ",
	"let's ",
	"lets ",
	"make sure to ",
	"make sure we ",
	"make sure ",
	"remember to ",
	"someone needs to ",
	"someone should ",
	"the deadline is ",
	"deadline is ",
	"action item: ",
	"todo: ",
}
