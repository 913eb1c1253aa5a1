// Package memory provides a flat in-memory vector index. Distances are
// squared L2, matching the index the corpus embeddings were built for.
// The index is read-only after construction and safe for concurrent
// searches.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
)

// Index is a brute-force nearest-neighbour index over record vectors.
// Position i holds the vector for record i of the corpus.
type Index struct {
	dimension int
	vectors   [][]float64
}

type indexFile struct {
	Dimension int         `json:"dimension"`
	Vectors   [][]float64 `json:"vectors"`
}

// New builds an index over the given vectors. All vectors must share
// one dimension.
func New(vectors [][]float64) (*Index, error) {
	if len(vectors) == 0 {
		return &Index{}, nil
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, errors.New("invalid dimension")
	}
	for _, v := range vectors {
		if len(v) != dim {
			return nil, errors.New("vector dimension mismatch")
		}
	}
	return &Index{dimension: dim, vectors: vectors}, nil
}

// Open loads an index previously written by Save.
func Open(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return New(f.Vectors)
}

// Save writes the index to disk in the format Open reads back.
func (x *Index) Save(path string) error {
	data, err := json.Marshal(indexFile{Dimension: x.dimension, Vectors: x.vectors})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Len returns the number of indexed vectors.
func (x *Index) Len() int { return len(x.vectors) }

// Search returns the positions of the k nearest vectors, nearest first.
// Fewer than k positions are returned when the index holds fewer
// entries; an empty index yields an empty result, not an error.
func (x *Index) Search(ctx context.Context, vector []float64, k int) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = 5
	}
	dists := make([]float64, len(x.vectors))
	for i := range x.vectors {
		dists[i] = sqL2(x.vectors[i], vector)
	}
	idxs := make([]int, len(x.vectors))
	for i := range idxs {
		idxs[i] = i
	}
	// Stable so equal distances keep insertion order.
	sort.SliceStable(idxs, func(a, b int) bool { return dists[idxs[a]] < dists[idxs[b]] })
	if k > len(idxs) {
		k = len(idxs)
	}
	return idxs[:k], nil
}

func sqL2(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
