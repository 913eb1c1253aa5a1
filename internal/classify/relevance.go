package classify

import "strings"

// RelevanceKeywords is the small lexicon used to re-rank retrieval
// candidates and to aggregate answer confidence.
var RelevanceKeywords = []string{
	"truth", "duty", "action", "attachment", "karma",
	"self", "knowledge", "desire", "lust", "war", "justice",
}

// RelevanceScore counts how many relevance keywords occur as substrings
// of the lowercased text. Each keyword counts at most once; there is no
// word-boundary check, so "war" inside "warranty" still counts. Empty
// text scores zero.
func RelevanceScore(text string) int {
	if text == "" {
		return 0
	}
	t := strings.ToLower(text)
	score := 0
	for _, k := range RelevanceKeywords {
		if strings.Contains(t, k) {
			score++
		}
	}
	return score
}
