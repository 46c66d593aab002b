package metrics

import (
	"net/url"
	"strings"

	"searchlens/internal/exa"
	"searchlens/internal/traditional"
)

// Content type labels carried on each report.
const (
	ContentTypeFull     = "full_extracted_content"
	ContentTypeSnippets = "snippets_only"
)

const contentDepthNote = "Snippet results structurally lack extracted page content; " +
	"their content-depth metrics measure snippet text only. That is inherent to " +
	"snippet-only search, not an error."

// Report holds the quality metrics for one result set. The same struct
// serves both the rich and the snippet side, so every field pairs up when
// the two reports are compared.
type Report struct {
	TotalResults          int     `json:"total_results"`
	TotalContentLength    int     `json:"total_content_length"`
	AvgContentLength      float64 `json:"avg_content_length"`
	ResultsWithHighlights int     `json:"results_with_highlights"`
	UniqueDomains         int     `json:"unique_domains"`
	ContentType           string  `json:"content_type"`
}

// Delta is one paired metric in the head-to-head comparison.
type Delta struct {
	Metric      string  `json:"metric"`
	Rich        float64 `json:"rich"`
	Traditional float64 `json:"traditional"`
	Difference  float64 `json:"difference"`
	Ratio       float64 `json:"ratio"`
	Advantage   string  `json:"advantage"`
}

// Comparison summarizes the two reports metric by metric, in a fixed order.
type Comparison struct {
	Deltas           []Delta `json:"deltas"`
	ContentDepthNote string  `json:"content_depth_note"`
}

// CalculateRichMetrics computes the report for a cleaned rich result set.
// Pure: missing fields count as zero, an empty set yields the zero report.
func CalculateRichMetrics(results []exa.SearchResult) Report {
	report := Report{
		TotalResults: len(results),
		ContentType:  ContentTypeFull,
	}

	domains := make(map[string]struct{})
	for _, r := range results {
		report.TotalContentLength += len(r.Content)
		if len(r.Highlights) > 0 {
			report.ResultsWithHighlights++
		}
		if d := domainOf(r.URL); d != "" {
			domains[d] = struct{}{}
		}
	}

	report.UniqueDomains = len(domains)
	if report.TotalResults > 0 {
		report.AvgContentLength = float64(report.TotalContentLength) / float64(report.TotalResults)
	}

	return report
}

// CalculateSnippetMetrics computes the report for a snippet-only result set.
// ResultsWithHighlights stays zero: snippets carry no supplementary data by
// construction.
func CalculateSnippetMetrics(results []traditional.SnippetResult) Report {
	report := Report{
		TotalResults: len(results),
		ContentType:  ContentTypeSnippets,
	}

	domains := make(map[string]struct{})
	for _, r := range results {
		report.TotalContentLength += len(r.Snippet)
		if d := domainOf(r.URL); d != "" {
			domains[d] = struct{}{}
		}
	}

	report.UniqueDomains = len(domains)
	if report.TotalResults > 0 {
		report.AvgContentLength = float64(report.TotalContentLength) / float64(report.TotalResults)
	}

	return report
}

// Compare pairs the numeric metrics of both reports and labels which side is
// larger. Ratio is rich over traditional, zero when the denominator is zero.
func Compare(rich, snippet Report) Comparison {
	pairs := []struct {
		name        string
		rich        float64
		traditional float64
	}{
		{"total_results", float64(rich.TotalResults), float64(snippet.TotalResults)},
		{"total_content_length", float64(rich.TotalContentLength), float64(snippet.TotalContentLength)},
		{"avg_content_length", rich.AvgContentLength, snippet.AvgContentLength},
		{"results_with_highlights", float64(rich.ResultsWithHighlights), float64(snippet.ResultsWithHighlights)},
		{"unique_domains", float64(rich.UniqueDomains), float64(snippet.UniqueDomains)},
	}

	deltas := make([]Delta, 0, len(pairs))
	for _, p := range pairs {
		deltas = append(deltas, Delta{
			Metric:      p.name,
			Rich:        p.rich,
			Traditional: p.traditional,
			Difference:  p.rich - p.traditional,
			Ratio:       ratio(p.rich, p.traditional),
			Advantage:   advantage(p.rich, p.traditional),
		})
	}

	return Comparison{
		Deltas:           deltas,
		ContentDepthNote: contentDepthNote,
	}
}

func ratio(rich, traditional float64) float64 {
	if traditional == 0 {
		return 0
	}
	return rich / traditional
}

func advantage(rich, traditional float64) string {
	switch {
	case rich > traditional:
		return "rich"
	case traditional > rich:
		return "traditional"
	default:
		return "even"
	}
}

// domainOf returns the lowercase host of a URL without port or leading
// "www.". Unparseable or host-less URLs yield "".
func domainOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")

	return host
}
