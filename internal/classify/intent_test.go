package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent_Greetings(t *testing.T) {
	for _, g := range Greetings {
		assert.Equal(t, IntentGreeting, DetectIntent(g), "greeting %q", g)
	}
	// Case and surrounding whitespace must not matter.
	assert.Equal(t, IntentGreeting, DetectIntent("Hello"))
	assert.Equal(t, IntentGreeting, DetectIntent("  NAMASTE  "))
	assert.Equal(t, IntentGreeting, DetectIntent("Good Morning"))
}

func TestDetectIntent_ShortQuestions(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"karma", IntentUnclear},
		{"explain karma", IntentUnclear},
		{"what is karma", IntentDharmicQuestion},
		{"", IntentUnclear},
		{"   ", IntentUnclear},
		{"hello there friend", IntentDharmicQuestion},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectIntent(tt.question), "question %q", tt.question)
	}
}
