package traditional

import "context"

// SnippetResult is a traditional-search hit: a title, a URL, and a short
// snippet. There is deliberately no full-content field; that absence is what
// the comparison demonstrates.
type SnippetResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Response is a snippet-only result set for one query.
type Response struct {
	Query        string          `json:"query"`
	Results      []SnippetResult `json:"results"`
	TotalResults int             `json:"total_results"`
}

// Searcher produces snippet-only results the way a traditional search API
// would. Implementations are swappable: the deterministic Mock is the
// default, a live SearXNG instance can take its place by configuration.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (*Response, error)
}
