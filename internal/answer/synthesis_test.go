package answer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dharmaqa/internal/domain"
)

func scored(scores ...int) []ScoredRecord {
	out := make([]ScoredRecord, len(scores))
	for i, s := range scores {
		out[i] = ScoredRecord{Record: domain.Record{Meaning: "m"}, Score: s}
	}
	return out
}

func TestComputeConfidence(t *testing.T) {
	tests := []struct {
		name     string
		selected []ScoredRecord
		want     domain.Confidence
	}{
		{"empty is low", nil, domain.ConfidenceLow},
		{"below medium", scored(1, 1), domain.ConfidenceLow},
		{"medium lower bound", scored(1, 2), domain.ConfidenceMedium},
		{"just below high", scored(2, 3), domain.ConfidenceMedium},
		{"high lower bound", scored(3, 3), domain.ConfidenceHigh},
		{"high", scored(4, 4, 4), domain.ConfidenceHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeConfidence(tt.selected))
		})
	}
}

func TestComputeConfidence_Monotonic(t *testing.T) {
	rank := map[domain.Confidence]int{
		domain.ConfidenceLow:    0,
		domain.ConfidenceMedium: 1,
		domain.ConfidenceHigh:   2,
	}
	prev := ComputeConfidence(scored(0))
	for total := 1; total <= 12; total++ {
		cur := ComputeConfidence(scored(total))
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "total %d", total)
		prev = cur
	}
}

func TestBuildVerdict_PriorityOrder(t *testing.T) {
	tests := []struct {
		question string
		contains string
	}{
		// Mahabharata+war outranks the violence rule even when both match.
		{"was the mahabharata war an act of violence", "tragic necessity"},
		{"is violence ever justified", "last resort"},
		{"was silence at the dice game right", "silence is not virtuous"},
		{"should a king forgive his enemies", "intention"},
	}
	for _, tt := range tests {
		got := BuildVerdict(tt.question)
		assert.NotEmpty(t, got)
		assert.Contains(t, got, tt.contains, "question %q", tt.question)
	}
}

func TestBuildVerdict_MahabharataNeedsBothWords(t *testing.T) {
	// "mahabharata" alone falls through to later rules.
	got := BuildVerdict("was the mahabharata silence justified")
	assert.Contains(t, got, "silence is not virtuous")
}

func TestComposeExplanation(t *testing.T) {
	selected := []ScoredRecord{
		{Record: domain.Record{Meaning: "first teaching"}},
		{Record: domain.Record{Meaning: "second teaching"}},
		{Record: domain.Record{Text: "third teaching from raw text"}},
	}
	got := ComposeExplanation(selected)
	require.Len(t, got, len(selected)+1)

	for i := range selected {
		assert.True(t, strings.HasPrefix(got[i], Starters[i%len(Starters)]), "sentence %d: %q", i, got[i])
		assert.Contains(t, got[i], selected[i].Record.DisplayText())
		assert.True(t, strings.HasSuffix(got[i], explanationSuffix))
	}
	assert.Equal(t, closingSentence, got[len(got)-1])
}

func TestComposeExplanation_StartersRotate(t *testing.T) {
	selected := make([]ScoredRecord, 5)
	for i := range selected {
		selected[i] = ScoredRecord{Record: domain.Record{Meaning: "m"}}
	}
	got := ComposeExplanation(selected)
	// Position 4 wraps around to the first starter.
	assert.True(t, strings.HasPrefix(got[4], Starters[0]))
}

func TestComposeExplanation_Empty(t *testing.T) {
	got := ComposeExplanation(nil)
	require.Len(t, got, 1)
	assert.Equal(t, closingSentence, got[0])
}
