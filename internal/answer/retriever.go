// Package answer implements the synthesis pipeline that turns a raw
// question into a structured answer: gate classification, retrieval
// re-ranking, confidence scoring and templated explanation building.
package answer

import (
	"context"
	"fmt"
	"sort"

	"dharmaqa/internal/classify"
	"dharmaqa/internal/domain"
)

// keepResults is how many candidates survive the relevance re-rank.
const keepResults = 3

// ScoredRecord pairs a retrieved record with its relevance score.
type ScoredRecord struct {
	Record domain.Record
	Score  int
}

// Retriever fetches candidate records through the embedder and vector
// index, then re-ranks them by keyword relevance. Nearest-neighbour
// distance ranks by semantic similarity; the keyword re-rank favours
// passages carrying literal ethical vocabulary.
type Retriever struct {
	embedder domain.Embedder
	index    domain.VectorIndex
	records  []domain.Record
	topK     int
}

// NewRetriever creates a retriever over the loaded record store. topK
// is the candidate pool size before re-ranking; values below one fall
// back to five.
func NewRetriever(embedder domain.Embedder, index domain.VectorIndex, records []domain.Record, topK int) *Retriever {
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{embedder: embedder, index: index, records: records, topK: topK}
}

// Retrieve returns up to three records ordered by relevance score
// descending, preserving nearest-neighbour order among equal scores. An
// empty candidate pool yields an empty slice, not an error; embedder
// and index failures fail the single request.
func (r *Retriever) Retrieve(ctx context.Context, question string) ([]ScoredRecord, error) {
	vector, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}
	positions, err := r.index.Search(ctx, vector, r.topK)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	scored := make([]ScoredRecord, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(r.records) {
			continue
		}
		rec := r.records[pos]
		scored = append(scored, ScoredRecord{Record: rec, Score: classify.RelevanceScore(rec.DisplayText())})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > keepResults {
		scored = scored[:keepResults]
	}
	return scored, nil
}
