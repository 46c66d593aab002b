package cliui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchlens/internal/compare"
	"searchlens/internal/exa"
	"searchlens/internal/metrics"
	"searchlens/internal/traditional"
)

func reportFixture() *compare.Response {
	richResults := &exa.SearchResults{
		Query: "rag pipelines",
		Results: []exa.SearchResult{
			{
				Title:      "RAG in Production",
				URL:        "https://site1.example.com/rag",
				Content:    strings.Repeat("Retrieval first, generation second. ", 20),
				Score:      0.92,
				Highlights: []string{"retrieval quality dominates", "chunking strategy matters"},
			},
			{
				Title:   "Evaluating RAG",
				URL:     "https://site2.example.com/eval",
				Content: "Short content.",
				Score:   0.81,
			},
		},
	}
	snippetResults := &traditional.Response{
		Query: "rag pipelines",
		Results: []traditional.SnippetResult{
			{Title: "Rag Pipelines - Comprehensive Guide", URL: "https://example.com/guide/rag-pipelines", Snippet: "Learn everything about rag pipelines..."},
			{Title: "Rag Pipelines Documentation", URL: "https://docs.example.org/rag-pipelines", Snippet: "Official documentation..."},
		},
		TotalResults: 2,
	}

	richMetrics := metrics.CalculateRichMetrics(richResults.Results)
	snippetMetrics := metrics.CalculateSnippetMetrics(snippetResults.Results)

	return &compare.Response{
		Query: "rag pipelines",
		Exa: compare.RichSection{
			Results: richResults,
			Metrics: richMetrics,
			AIAnswer: exa.AnswerPayload{
				Answer:       "RAG augments generation with retrieval.",
				CitationURLs: []string{"https://site1.example.com/rag"},
			},
		},
		Traditional: compare.TraditionalSection{
			Results:       snippetResults,
			Metrics:       snippetMetrics,
			WorkflowSteps: traditional.WorkflowSteps(),
			Problems:      traditional.Problems(),
		},
		Comparison: metrics.Compare(richMetrics, snippetMetrics),
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(reportFixture())

	assert.Contains(t, report, "# Search Comparison")
	assert.Contains(t, report, "**Query:** rag pipelines")

	assert.Contains(t, report, "## AI Answer")
	assert.Contains(t, report, "RAG augments generation with retrieval.")
	assert.Contains(t, report, "- https://site1.example.com/rag")

	assert.Contains(t, report, "| total_results |")
	assert.Contains(t, report, "| Metric | Rich | Traditional | Ratio | Advantage |")

	assert.Contains(t, report, "## Neural + Full Content (2 results)")
	assert.Contains(t, report, "**1. RAG in Production**")
	assert.Contains(t, report, "_Highlights: retrieval quality dominates | chunking strategy matters_")

	assert.Contains(t, report, "## Traditional Snippets (2 results)")
	assert.Contains(t, report, "**1. Rag Pipelines - Comprehensive Guide**")
	assert.Contains(t, report, "### What a snippet user still has to do")
	assert.Contains(t, report, "### Why snippets fall short")
}

func TestBuildReportTruncatesLongContent(t *testing.T) {
	resp := reportFixture()
	report := BuildReport(resp)

	full := resp.Exa.Results.Results[0].Content
	require.Greater(t, len(full), contentPreviewLen)
	assert.NotContains(t, report, full, "long content must be truncated")
	assert.Contains(t, report, full[:contentPreviewLen-3]+"...")
}

func TestBuildReportAnswerError(t *testing.T) {
	resp := reportFixture()
	resp.Exa.AIAnswer = exa.AnswerPayload{CitationURLs: []string{}, Error: "Exa returned status 502: bad gateway"}

	report := BuildReport(resp)

	assert.Contains(t, report, "_Answer unavailable: Exa returned status 502: bad gateway_")
	assert.NotContains(t, report, "Sources:")
}

func TestBuildReportPartialResults(t *testing.T) {
	resp := reportFixture()
	resp.Exa.Results.Error = "page 2 timed out"

	report := BuildReport(resp)

	assert.Contains(t, report, "_Partial results: page 2 timed out_")
}

func TestBuildReportNilSections(t *testing.T) {
	resp := &compare.Response{Query: "empty"}

	var report string
	require.NotPanics(t, func() { report = BuildReport(resp) })

	assert.Contains(t, report, "## Neural + Full Content (0 results)")
	assert.Contains(t, report, "## Traditional Snippets (0 results)")
}

func TestFormatMetric(t *testing.T) {
	assert.Equal(t, "3", formatMetric(3))
	assert.Equal(t, "7.5", formatMetric(7.5))
	assert.Equal(t, "0", formatMetric(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "toolon...", truncate("toolongbyfar", 9))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", FormatDuration(1500*time.Millisecond))
}
