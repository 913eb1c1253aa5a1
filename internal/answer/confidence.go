package answer

import "dharmaqa/internal/domain"

// Confidence thresholds over the summed relevance of selected records.
const (
	highConfidenceScore   = 6
	mediumConfidenceScore = 3
)

// ComputeConfidence aggregates the relevance scores of the selected
// records into a qualitative label. No records means no evidence, so
// the empty case is Low.
func ComputeConfidence(selected []ScoredRecord) domain.Confidence {
	total := 0
	for _, s := range selected {
		total += s.Score
	}
	switch {
	case total >= highConfidenceScore:
		return domain.ConfidenceHigh
	case total >= mediumConfidenceScore:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
