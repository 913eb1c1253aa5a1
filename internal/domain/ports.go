package domain

import "context"

// Embedder converts free text into a numeric vector representation.
// It must be called with the raw question, not a lowercased copy.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorIndex answers nearest-neighbour queries over the precomputed
// record vectors. Search returns up to k positions into the record
// store, nearest first; fewer when the index holds fewer entries.
type VectorIndex interface {
	Search(ctx context.Context, vector []float64, k int) ([]int, error)
}
