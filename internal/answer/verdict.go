package answer

import "strings"

// verdictRule pairs a predicate over the lowercased question with the
// fixed opinion sentence it produces.
type verdictRule struct {
	match   func(q string) bool
	verdict string
}

// verdictRules is evaluated in order with first-match-wins semantics.
// The order is significant: the Mahabharata war rule must precede the
// bare "violence" rule, and the final rule matches everything.
var verdictRules = []verdictRule{
	{
		match: func(q string) bool {
			return strings.Contains(q, "mahabharata") && strings.Contains(q, "war")
		},
		verdict: "The Mahabharata does not glorify war, but presents it as a tragic necessity " +
			"that arose only after all peaceful efforts failed and injustice became unavoidable.",
	},
	{
		match: func(q string) bool { return strings.Contains(q, "violence") },
		verdict: "Dharma does not approve violence for desire or gain, " +
			"but permits it only as a last resort to prevent greater injustice.",
	},
	{
		match:   func(q string) bool { return strings.Contains(q, "silence") },
		verdict: "In Dharmic teaching, silence is not virtuous when it allows injustice to continue.",
	},
	{
		match: func(q string) bool { return true },
		verdict: "From a Dharmic perspective, decisions are judged by intention, " +
			"context, and responsibility, not rigid rules.",
	},
}

// BuildVerdict returns the fixed opinion sentence for a
// judgement-seeking question. It always returns a non-empty string.
func BuildVerdict(question string) string {
	q := strings.ToLower(question)
	for _, rule := range verdictRules {
		if rule.match(q) {
			return rule.verdict
		}
	}
	// Unreachable: the last rule matches everything.
	return verdictRules[len(verdictRules)-1].verdict
}
