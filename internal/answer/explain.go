package answer

import "fmt"

// Starters rotate across explanation sentences by record position.
var Starters = []string{
	"According to the scriptures,",
	"In Dharmic thought,",
	"From a scriptural perspective,",
	"Ancient wisdom explains that",
}

const (
	explanationSuffix = "This helps one understand the moral reasoning behind such actions."

	closingSentence = "Together, these teachings emphasize awareness, responsibility, " +
		"and acting with conscience rather than impulse."
)

// ComposeExplanation turns the selected records into human-readable
// sentences, one per record in ranking order, followed by one fixed
// closing sentence. The output always has len(selected)+1 entries.
func ComposeExplanation(selected []ScoredRecord) []string {
	explanation := make([]string, 0, len(selected)+1)
	for i, s := range selected {
		starter := Starters[i%len(Starters)]
		explanation = append(explanation, fmt.Sprintf("%s %s. %s", starter, s.Record.DisplayText(), explanationSuffix))
	}
	return append(explanation, closingSentence)
}
