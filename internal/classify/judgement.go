package classify

import "strings"

// JudgementPhrases detect questions asking for a moral opinion rather
// than an explanation. "was" is a bare substring and will also match
// inside unrelated words; a coarse but intentional trade-off.
var JudgementPhrases = []string{
	"was", "is it right", "is it wrong", "should",
	"justified", "necessary", "correct or not",
}

// IsJudgementQuestion reports whether the question seeks a verdict.
func IsJudgementQuestion(question string) bool {
	q := strings.ToLower(question)
	for _, p := range JudgementPhrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
