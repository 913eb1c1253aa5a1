package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_ReturnsPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/verses/points/search", r.URL.Path)
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 5, req["limit"])
		_, _ = w.Write([]byte(`{"result":[{"id":2,"score":0.1},{"id":0,"score":0.4}]}`))
	}))
	defer srv.Close()

	x := New(Config{URL: srv.URL, Collection: "verses"})
	positions, err := x.Search(context.Background(), []float64{1, 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, positions)
}

func TestSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	x := New(Config{URL: srv.URL, Collection: "verses"})
	_, err := x.Search(context.Background(), []float64{1}, 3)
	assert.Error(t, err)
}

func TestUpsert_SendsPositionalIDs(t *testing.T) {
	var got struct {
		Points []struct {
			ID     int       `json:"id"`
			Vector []float64 `json:"vector"`
		} `json:"points"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	x := New(Config{URL: srv.URL, Collection: "verses"})
	require.NoError(t, x.Upsert(context.Background(), [][]float64{{1}, {2}}))
	require.Len(t, got.Points, 2)
	assert.Equal(t, 0, got.Points[0].ID)
	assert.Equal(t, 1, got.Points[1].ID)
}
