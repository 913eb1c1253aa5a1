// Package classify holds the keyword matchers that gate questions
// before any retrieval happens. All functions here are pure and operate
// on fixed, exported keyword lists so tests can enumerate boundaries.
package classify

import "strings"

// Intent is the coarse classification of an incoming question.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentUnclear         Intent = "unclear"
	IntentDharmicQuestion Intent = "dharmic_question"
)

// Greetings are matched against the whole trimmed, lowercased question.
var Greetings = []string{
	"hi", "hello", "hey", "namaste", "good morning", "good evening",
}

// DetectIntent classifies a question as a greeting, too short to
// answer, or an actual question. Word count is a cheap proxy for
// specificity: anything under three words is treated as unclear.
func DetectIntent(question string) Intent {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, g := range Greetings {
		if q == g {
			return IntentGreeting
		}
	}
	if len(strings.Fields(q)) < 3 {
		return IntentUnclear
	}
	return IntentDharmicQuestion
}
