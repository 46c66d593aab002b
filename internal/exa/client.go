package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"searchlens/internal/textclean"
)

const (
	defaultBaseURL = "https://api.exa.ai"

	// Full-text extraction cap per result, in characters.
	maxContentCharacters = 10000

	// Highlights joined into the summary answer.
	summaryHighlightLimit = 5
)

// Client handles communication with the Exa search and answer APIs.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a new Exa client. An empty baseURL falls back to the
// public API endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Configured reports whether provider credentials are present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Search runs a neural search with full content extraction and returns the
// cleaned result set. Raw result text never leaves this package with
// markdown in it, and a summary answer is synthesized from the first few
// highlights across results.
func (c *Client) Search(ctx context.Context, query string, numResults int) (*SearchResults, error) {
	reqBody := searchRequest{
		Query:      query,
		NumResults: numResults,
		Type:       "auto",
		Contents: contentsRequest{
			Text: textRequest{
				MaxCharacters:   maxContentCharacters,
				IncludeHTMLTags: false,
			},
		},
	}

	var decoded searchResponse
	if err := c.post(ctx, "/search", reqBody, &decoded); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	formatted := &SearchResults{
		Query:   query,
		Results: make([]SearchResult, 0, len(decoded.Results)),
	}
	for _, raw := range decoded.Results {
		formatted.Results = append(formatted.Results, raw.toSearchResult())
	}
	formatted.Answer = summarizeHighlights(formatted.Results)

	return formatted, nil
}

// Answer asks the answer endpoint for a generated answer with citations.
// Failures never abort a comparison; they come back as data on the payload.
func (c *Client) Answer(ctx context.Context, query string) AnswerPayload {
	reqBody := answerRequest{
		Query: query,
		Text:  true,
	}

	var decoded answerResponse
	if err := c.post(ctx, "/answer", reqBody, &decoded); err != nil {
		return AnswerPayload{
			Answer:       "",
			CitationURLs: []string{},
			Error:        err.Error(),
		}
	}

	urls := make([]string, 0, len(decoded.Citations))
	for _, citation := range decoded.Citations {
		urls = append(urls, citation.URL)
	}

	return AnswerPayload{
		Answer:       textclean.CleanAnswer(decoded.Answer),
		CitationURLs: urls,
	}
}

// post sends a JSON request to the given API path and decodes the response
// body into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Exa returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// toSearchResult applies the boundary defaults: a missing title becomes
// "No title", absent highlights become an empty slice in provider order,
// and raw text is normalized to plain prose.
func (r rawResult) toSearchResult() SearchResult {
	title := "No title"
	if r.Title != nil {
		title = *r.Title
	}

	highlights := r.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return SearchResult{
		Title:         title,
		URL:           r.URL,
		Content:       textclean.Normalize(r.Text),
		Score:         r.Score,
		Highlights:    highlights,
		PublishedDate: r.PublishedDate,
		Author:        r.Author,
	}
}

// summarizeHighlights joins the first few highlights across all results, in
// provider order, into a short summary answer.
func summarizeHighlights(results []SearchResult) string {
	var highlights []string
	for _, result := range results {
		highlights = append(highlights, result.Highlights...)
	}

	if len(highlights) > summaryHighlightLimit {
		highlights = highlights[:summaryHighlightLimit]
	}

	return strings.Join(highlights, " ")
}
