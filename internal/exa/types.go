package exa

// SearchResult is one rich search hit after boundary cleanup: content is
// normalized plain text and highlights keep their provider order.
type SearchResult struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Content       string   `json:"content"`
	Score         float64  `json:"score"`
	Highlights    []string `json:"highlights"`
	PublishedDate string   `json:"published_date"`
	Author        string   `json:"author"`
}

// SearchResults is the formatted rich result set for one query. Answer holds
// a short summary synthesized from result highlights. Error carries an
// advisory provider message when a comparison proceeds on partial results.
type SearchResults struct {
	Query   string         `json:"query"`
	Answer  string         `json:"answer"`
	Results []SearchResult `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// AnswerPayload carries the cleaned generated answer and the URLs of its
// structured citations. A failed answer call yields the zero payload with
// Error set, never partially cleaned text.
type AnswerPayload struct {
	Answer       string   `json:"answer"`
	CitationURLs []string `json:"citation_urls"`
	Error        string   `json:"error,omitempty"`
}

// searchRequest is the POST body for the /search endpoint.
type searchRequest struct {
	Query      string          `json:"query"`
	NumResults int             `json:"numResults"`
	Type       string          `json:"type"`
	Contents   contentsRequest `json:"contents"`
}

type contentsRequest struct {
	Text textRequest `json:"text"`
}

type textRequest struct {
	MaxCharacters   int  `json:"maxCharacters"`
	IncludeHTMLTags bool `json:"includeHtmlTags"`
}

// searchResponse mirrors the provider's /search payload. Every result field
// is optional on the wire; defaults apply when results cross the boundary.
type searchResponse struct {
	Results []rawResult `json:"results"`
}

type rawResult struct {
	Title         *string  `json:"title"`
	URL           string   `json:"url"`
	Text          string   `json:"text"`
	Score         float64  `json:"score"`
	Highlights    []string `json:"highlights"`
	PublishedDate string   `json:"publishedDate"`
	Author        string   `json:"author"`
}

// answerRequest is the POST body for the /answer endpoint.
type answerRequest struct {
	Query string `json:"query"`
	Text  bool   `json:"text"`
}

type answerResponse struct {
	Answer    string        `json:"answer"`
	Citations []rawCitation `json:"citations"`
}

type rawCitation struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
