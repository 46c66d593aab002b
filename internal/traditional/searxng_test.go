package traditional

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearXNGSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "go generics", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		w.Write([]byte(`{
			"results": [
				{"title": "Low", "url": "https://low.example.com", "content": "low score", "score": 0.2},
				{"title": "High", "url": "https://high.example.com", "content": "Generics in <span class=\"highlight\">Go</span>", "score": 1.5},
				{"title": "Mid", "url": "https://mid.example.com", "content": "mid score", "score": 0.8}
			]
		}`))
	}))
	defer server.Close()

	searcher := NewSearXNG(server.URL, time.Second)

	resp, err := searcher.Search(context.Background(), "go generics", 2)
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, "High", resp.Results[0].Title)
	assert.Equal(t, "Generics in Go", resp.Results[0].Snippet)
	assert.Equal(t, "Mid", resp.Results[1].Title)
	assert.Equal(t, 2, resp.TotalResults)
	assert.Equal(t, "go generics", resp.Query)
}

func TestSearXNGSearch_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	searcher := NewSearXNG(server.URL, time.Second)

	_, err := searcher.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON API may not be enabled")
}

func TestSearXNGSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	searcher := NewSearXNG(server.URL, time.Second)

	_, err := searcher.Search(context.Background(), "q", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWorkflowNotes(t *testing.T) {
	assert.Len(t, WorkflowSteps(), 6)
	assert.Len(t, Problems(), 8)
}
