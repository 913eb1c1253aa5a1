package domain

// AnswerType discriminates the response shapes produced by the pipeline.
type AnswerType string

const (
	AnswerGreeting AnswerType = "greeting"
	AnswerUnclear  AnswerType = "unclear"
	AnswerWarning  AnswerType = "warning"
	AnswerDharmic  AnswerType = "dharmic_answer"
)

// Confidence is a qualitative summary of how much domain vocabulary the
// selected evidence carries.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Verse is one cited passage in a dharmic answer. Every field is
// resolved with a fallback so a verse never renders empty-handed.
type Verse struct {
	Ref      string `json:"ref"`
	Sanskrit string `json:"sanskrit"`
	Meaning  string `json:"meaning"`
	Book     string `json:"book"`
}

// Answer is the response returned for every question. Greeting, unclear
// and warning answers carry only Type and Message; a dharmic answer
// fills the remaining fields instead.
type Answer struct {
	Type        AnswerType `json:"type"`
	Message     string     `json:"message,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Explanation []string   `json:"explanation,omitempty"`
	Verses      []Verse    `json:"verses,omitempty"`
	Sources     []string   `json:"sources,omitempty"`
	Confidence  Confidence `json:"confidence,omitempty"`
	Disclaimer  string     `json:"disclaimer,omitempty"`
}
