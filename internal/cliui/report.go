package cliui

import (
	"fmt"
	"strings"

	"searchlens/internal/compare"
	"searchlens/internal/exa"
	"searchlens/internal/traditional"
)

const contentPreviewLen = 300

// BuildReport turns a comparison payload into a markdown report suitable for
// terminal rendering. Pure function of its input.
func BuildReport(resp *compare.Response) string {
	var sb strings.Builder

	sb.WriteString("# Search Comparison\n\n")
	sb.WriteString(fmt.Sprintf("**Query:** %s\n\n", resp.Query))

	writeAnswerSection(&sb, resp)
	writeComparisonSection(&sb, resp)
	writeRichSection(&sb, resp)
	writeTraditionalSection(&sb, resp)

	return sb.String()
}

func writeAnswerSection(sb *strings.Builder, resp *compare.Response) {
	sb.WriteString("## AI Answer\n\n")

	answer := resp.Exa.AIAnswer
	if answer.Error != "" {
		sb.WriteString(fmt.Sprintf("_Answer unavailable: %s_\n\n", answer.Error))
		return
	}

	sb.WriteString(answer.Answer + "\n\n")
	if len(answer.CitationURLs) > 0 {
		sb.WriteString("Sources:\n\n")
		for _, url := range answer.CitationURLs {
			sb.WriteString(fmt.Sprintf("- %s\n", url))
		}
		sb.WriteString("\n")
	}
}

func writeComparisonSection(sb *strings.Builder, resp *compare.Response) {
	sb.WriteString("## Metrics\n\n")
	sb.WriteString("| Metric | Rich | Traditional | Ratio | Advantage |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, delta := range resp.Comparison.Deltas {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %.2f | %s |\n",
			delta.Metric, formatMetric(delta.Rich), formatMetric(delta.Traditional), delta.Ratio, delta.Advantage))
	}
	sb.WriteString("\n")
	if resp.Comparison.ContentDepthNote != "" {
		sb.WriteString(resp.Comparison.ContentDepthNote + "\n\n")
	}
}

func writeRichSection(sb *strings.Builder, resp *compare.Response) {
	results := resp.Exa.Results
	if results == nil {
		results = &exa.SearchResults{}
	}

	sb.WriteString(fmt.Sprintf("## Neural + Full Content (%d results)\n\n", len(results.Results)))
	if results.Error != "" {
		sb.WriteString(fmt.Sprintf("_Partial results: %s_\n\n", results.Error))
	}

	for i, r := range results.Results {
		sb.WriteString(fmt.Sprintf("**%d. %s**\n", i+1, r.Title))
		sb.WriteString(fmt.Sprintf("<%s>\n\n", r.URL))
		if r.Content != "" {
			sb.WriteString(truncate(r.Content, contentPreviewLen) + "\n\n")
		}
		if len(r.Highlights) > 0 {
			sb.WriteString(fmt.Sprintf("_Highlights: %s_\n\n", truncate(strings.Join(r.Highlights, " | "), contentPreviewLen)))
		}
	}
}

func writeTraditionalSection(sb *strings.Builder, resp *compare.Response) {
	results := resp.Traditional.Results
	if results == nil {
		results = &traditional.Response{}
	}

	sb.WriteString(fmt.Sprintf("## Traditional Snippets (%d results)\n\n", len(results.Results)))
	for i, r := range results.Results {
		sb.WriteString(fmt.Sprintf("**%d. %s**\n", i+1, r.Title))
		sb.WriteString(fmt.Sprintf("<%s>\n\n", r.URL))
		sb.WriteString(r.Snippet + "\n\n")
	}

	if len(resp.Traditional.WorkflowSteps) > 0 {
		sb.WriteString("### What a snippet user still has to do\n\n")
		for i, step := range resp.Traditional.WorkflowSteps {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
		}
		sb.WriteString("\n")
	}
	if len(resp.Traditional.Problems) > 0 {
		sb.WriteString("### Why snippets fall short\n\n")
		for _, problem := range resp.Traditional.Problems {
			sb.WriteString(fmt.Sprintf("- %s\n", problem))
		}
		sb.WriteString("\n")
	}
}

// formatMetric drops the fraction for whole numbers so counts read naturally.
func formatMetric(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
