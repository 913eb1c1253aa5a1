package answer

import (
	"context"
	"sort"
	"strings"

	"dharmaqa/internal/classify"
	"dharmaqa/internal/domain"
)

// User-visible messages for the terminal states.
const (
	GreetingMessage = "Namaste. I am Dharmic AI. You can ask me questions related to Dharma."

	UnclearMessage = "Please ask your question clearly in a Dharmic context."

	DomainRestrictedMessage = "This assistant is strictly limited to Dharmic questions only.\n\n" +
		"You may ask about Dharma, Karma, scriptures, ethical conduct, and spiritual wisdom."

	SafetyBlockedMessage = "This question is not appropriate for Dharmic discussion."

	answerSummary = "Here is a Dharmic perspective based on scriptures."

	answerDisclaimer = "This response is based on Dharmic scriptures " +
		"and represents one interpretive perspective."
)

// Answerer is the top-level pipeline. Questions pass through the gates
// in a fixed order (greeting, unclear, domain, safety); the first
// failing gate is terminal and no I/O happens for rejected questions.
type Answerer struct {
	retriever *Retriever
}

// NewAnswerer creates the pipeline around a configured retriever.
func NewAnswerer(retriever *Retriever) *Answerer {
	return &Answerer{retriever: retriever}
}

// Answer runs the full pipeline for one question. Exactly one answer
// shape is produced per call; an error is returned only when retrieval
// itself fails.
func (a *Answerer) Answer(ctx context.Context, question string) (*domain.Answer, error) {
	switch classify.DetectIntent(question) {
	case classify.IntentGreeting:
		return &domain.Answer{Type: domain.AnswerGreeting, Message: GreetingMessage}, nil
	case classify.IntentUnclear:
		return &domain.Answer{Type: domain.AnswerUnclear, Message: UnclearMessage}, nil
	}

	if !classify.IsDharmicQuestion(question) {
		return &domain.Answer{Type: domain.AnswerWarning, Message: DomainRestrictedMessage}, nil
	}
	if classify.DetectSafetyLevel(question) == classify.SafetyBlocked {
		return &domain.Answer{Type: domain.AnswerWarning, Message: SafetyBlockedMessage}, nil
	}

	selected, err := a.retriever.Retrieve(ctx, question)
	if err != nil {
		return nil, err
	}
	confidence := ComputeConfidence(selected)

	var explanation []string
	if classify.IsJudgementQuestion(question) {
		explanation = append(explanation, BuildVerdict(question))
	}
	explanation = append(explanation, ComposeExplanation(selected)...)

	verses := make([]domain.Verse, 0, len(selected))
	for _, s := range selected {
		verses = append(verses, buildVerse(s.Record))
	}

	return &domain.Answer{
		Type:        domain.AnswerDharmic,
		Summary:     answerSummary,
		Explanation: explanation,
		Verses:      verses,
		Sources:     collectSources(selected),
		Confidence:  confidence,
		Disclaimer:  answerDisclaimer,
	}, nil
}

// buildVerse resolves every verse field with its fallback: the ref
// falls back to a bracketed reference inside the raw text, then to the
// generic label.
func buildVerse(rec domain.Record) domain.Verse {
	ref := rec.Ref
	if ref == "" {
		ref = ExtractRef(rec.Text)
	}
	if ref == "" {
		ref = domain.FallbackBook
	}
	return domain.Verse{
		Ref:      ref,
		Sanskrit: rec.Sanskrit,
		Meaning:  rec.DisplayText(),
		Book:     rec.DisplayBook(),
	}
}

// ExtractRef pulls a citation out of raw text of the form
// "[Shanti Parva 56] ...", returning the content between the first
// "[" and the first following "]". Empty when no bracket pair exists.
func ExtractRef(text string) string {
	open := strings.Index(text, "[")
	if open < 0 {
		return ""
	}
	end := strings.Index(text[open+1:], "]")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[open+1 : open+1+end])
}

// collectSources returns the distinct book names of the selected
// records in alphabetical order.
func collectSources(selected []ScoredRecord) []string {
	seen := make(map[string]struct{}, len(selected))
	sources := make([]string, 0, len(selected))
	for _, s := range selected {
		book := s.Record.DisplayBook()
		if _, ok := seen[book]; ok {
			continue
		}
		seen[book] = struct{}{}
		sources = append(sources, book)
	}
	sort.Strings(sources)
	return sources
}
