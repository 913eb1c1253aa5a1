package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDharmicQuestion(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"What does the Gita teach about karma", true},
		{"Why did Krishna advise Arjuna", true},
		{"What is the weather today", false},
		{"Tell me about DHARMA please", true},
		// Substring matching fires inside longer words too.
		{"is my warranty still valid", true},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDharmicQuestion(tt.question), "question %q", tt.question)
	}
}

func TestDetectSafetyLevel(t *testing.T) {
	assert.Equal(t, SafetySafe, DetectSafetyLevel("What is dharma"))
	for _, w := range BlockedTopics {
		assert.Equal(t, SafetyBlocked, DetectSafetyLevel("question about "+w), "topic %q", w)
	}
	assert.Equal(t, SafetyBlocked, DetectSafetyLevel("Explain PORN in karma"))
}

func TestIsJudgementQuestion(t *testing.T) {
	assert.True(t, IsJudgementQuestion("Was the Mahabharata war justified"))
	assert.True(t, IsJudgementQuestion("Should a king punish his own son"))
	assert.True(t, IsJudgementQuestion("is it right to stay silent"))
	assert.False(t, IsJudgementQuestion("Explain the meaning of karma yoga"))
	// "was" matches as a bare substring inside unrelated words.
	assert.True(t, IsJudgementQuestion("he waswhere at the time"))
}

func TestRelevanceScore(t *testing.T) {
	assert.Equal(t, 0, RelevanceScore(""))
	assert.Equal(t, 0, RelevanceScore("completely unrelated sentence"))
	assert.Equal(t, 1, RelevanceScore("perform your duty"))
	assert.Equal(t, 3, RelevanceScore("Duty, action and karma"))
	// A keyword present several times still counts once.
	assert.Equal(t, 1, RelevanceScore("war war war"))
	// Substring matches count: "war" inside "warranty".
	assert.Equal(t, 1, RelevanceScore("the warranty expired"))
	assert.Equal(t, len(RelevanceKeywords), RelevanceScore(
		"truth duty action attachment karma self knowledge desire lust war justice"))
}
