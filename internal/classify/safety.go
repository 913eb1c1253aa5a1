package classify

import "strings"

// SafetyLevel is the result of the content blocklist check.
type SafetyLevel string

const (
	SafetySafe    SafetyLevel = "safe"
	SafetyBlocked SafetyLevel = "blocked"
)

// BlockedTopics rejects questions regardless of domain keywords. The
// safety filter runs strictly after the domain gate, so a blocked topic
// with no domain keyword is rejected earlier with a different message.
var BlockedTopics = []string{
	"porn", "nude", "nudity",
	"rape", "molest", "incest", "child abuse",
	"explicit", "sexual video",
	"kill all", "bomb", "terror",
}

// DetectSafetyLevel returns SafetyBlocked when the question contains
// any blocklisted substring.
func DetectSafetyLevel(question string) SafetyLevel {
	q := strings.ToLower(question)
	for _, w := range BlockedTopics {
		if strings.Contains(q, w) {
			return SafetyBlocked
		}
	}
	return SafetySafe
}
