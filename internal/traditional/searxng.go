package traditional

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"searchlens/internal/textclean"
)

// SearXNG queries a self-hosted SearXNG instance for real snippet-only
// results. It returns the same title/url/snippet shape as Mock, so a live
// engine slots into the comparison flow unchanged.
type SearXNG struct {
	baseURL    string
	httpClient *http.Client
}

type searxngResponse struct {
	Results []searxngResult `json:"results"`
}

type searxngResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// NewSearXNG creates a snippet searcher backed by a SearXNG instance.
func NewSearXNG(baseURL string, timeout time.Duration) *SearXNG {
	return &SearXNG{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search asks SearXNG for results, keeps the highest-scored ones, and strips
// the highlight markup SearXNG embeds in its snippets.
func (s *SearXNG) Search(ctx context.Context, query string, maxResults int) (*Response, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")

	fullURL := fmt.Sprintf("%s/search?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "searchlens/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 403 {
		return nil, fmt.Errorf("SearXNG returned 403 Forbidden. JSON API may not be enabled. Check settings.yml for 'formats: [html, json]'")
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("SearXNG returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	// Highest score first, then truncate.
	sort.Slice(decoded.Results, func(i, j int) bool {
		return decoded.Results[i].Score > decoded.Results[j].Score
	})
	if maxResults >= 0 && len(decoded.Results) > maxResults {
		decoded.Results = decoded.Results[:maxResults]
	}

	results := make([]SnippetResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, SnippetResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: textclean.StripTags(r.Content),
		})
	}

	return &Response{
		Query:        query,
		Results:      results,
		TotalResults: len(results),
	}, nil
}
