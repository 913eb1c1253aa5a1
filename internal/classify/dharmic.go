package classify

import "strings"

// DharmicKeywords is the domain gate vocabulary. Matching is plain
// substring containment, so a keyword inside a longer word still
// matches; false positives are acceptable here.
var DharmicKeywords = []string{
	// Core concepts
	"dharma", "karma", "moksha", "yoga", "adharma",

	// Scriptures
	"mahabharata", "gita", "ramayana", "veda", "vedas",
	"upanishad", "purana", "smriti",

	// Characters
	"krishna", "arjuna", "bhishma", "vidura",
	"yudhishthira", "draupadi", "karna", "duryodhana",

	// Ethics & morality
	"truth", "justice", "duty", "righteous", "ethics",
	"moral", "responsibility", "silence", "violence", "war",

	// Human weaknesses
	"lust", "desire", "anger", "greed", "ego", "attachment",

	// Governance & life conduct
	"king", "rule", "governance", "leadership",
}

// IsDharmicQuestion reports whether the question touches the supported
// subject matter at all.
func IsDharmicQuestion(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range DharmicKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
