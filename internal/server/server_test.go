package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"searchlens/internal/compare"
	"searchlens/internal/config"
	"searchlens/internal/exa"
	"searchlens/internal/metrics"
	"searchlens/internal/traditional"
)

type stubComparer struct {
	resp *compare.Response
	err  error

	gotQuery string
	gotMax   int
	calls    int
}

func (s *stubComparer) Compare(_ context.Context, query string, maxResults int) (*compare.Response, error) {
	s.calls++
	s.gotQuery = query
	s.gotMax = maxResults
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestServer(comparer Comparer, apiKey string) http.Handler {
	cfg := config.NewConfig()
	cfg.ExaAPIKey = apiKey
	return New(cfg, comparer, zap.NewNop()).Handler()
}

func postCompareForm(handler http.Handler, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCompareEndpoint(t *testing.T) {
	comparer := &stubComparer{
		resp: &compare.Response{
			Query: "rag pipelines",
			Exa: compare.RichSection{
				Results: &exa.SearchResults{Query: "rag pipelines", Results: []exa.SearchResult{}},
				Metrics: metrics.Report{ContentType: metrics.ContentTypeFull},
			},
			Traditional: compare.TraditionalSection{
				Results:       &traditional.Response{Query: "rag pipelines", Results: []traditional.SnippetResult{}},
				Metrics:       metrics.Report{ContentType: metrics.ContentTypeSnippets},
				WorkflowSteps: traditional.WorkflowSteps(),
				Problems:      traditional.Problems(),
			},
		},
	}
	handler := newTestServer(comparer, "key")

	rr := postCompareForm(handler, "query=rag+pipelines&max_results=3")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "rag pipelines", comparer.gotQuery)
	assert.Equal(t, 3, comparer.gotMax)

	var payload compare.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "rag pipelines", payload.Query)
	assert.Len(t, payload.Traditional.WorkflowSteps, 6)
}

func TestCompareEndpoint_DefaultMaxResults(t *testing.T) {
	comparer := &stubComparer{resp: &compare.Response{Query: "go"}}
	handler := newTestServer(comparer, "key")

	rr := postCompareForm(handler, "query=go")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, comparer.gotMax, "absent max_results defers to the service default")
}

func TestCompareEndpoint_EmptyQuery(t *testing.T) {
	comparer := &stubComparer{err: compare.ErrEmptyQuery}
	handler := newTestServer(comparer, "key")

	rr := postCompareForm(handler, "query=")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "Query is required"}`, rr.Body.String())
}

func TestCompareEndpoint_ProviderError(t *testing.T) {
	comparer := &stubComparer{err: &compare.ProviderError{Err: errors.New("Exa returned status 429: too many requests")}}
	handler := newTestServer(comparer, "key")

	rr := postCompareForm(handler, "query=go")

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "Exa API error: Exa returned status 429: too many requests", payload["error"])
}

func TestCompareEndpoint_NonIntegerMaxResults(t *testing.T) {
	comparer := &stubComparer{resp: &compare.Response{}}
	handler := newTestServer(comparer, "key")

	rr := postCompareForm(handler, "query=go&max_results=lots")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "max_results must be an integer")
	assert.Zero(t, comparer.calls, "service should not be reached")
}

func TestCompareEndpoint_MethodNotAllowed(t *testing.T) {
	handler := newTestServer(&stubComparer{resp: &compare.Response{}}, "key")

	req := httptest.NewRequest(http.MethodGet, "/compare", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestHealthEndpoint(t *testing.T) {
	cases := []struct {
		name   string
		apiKey string
		want   string
	}{
		{name: "configured", apiKey: "key", want: `{"status": "healthy", "exa_api_configured": true}`},
		{name: "unconfigured", apiKey: "", want: `{"status": "healthy", "exa_api_configured": false}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := newTestServer(&stubComparer{}, tc.apiKey)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.want, rr.Body.String())
		})
	}
}

func TestIndexEndpoint(t *testing.T) {
	handler := newTestServer(&stubComparer{}, "key")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "SearchLens")
}

func TestIndexEndpoint_UnknownPath(t *testing.T) {
	handler := newTestServer(&stubComparer{}, "key")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(&stubComparer{}, "key")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer(&stubComparer{}, "key")

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("inbound honored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "trace-me-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "trace-me-123", rr.Header().Get("X-Request-ID"))
	})
}
