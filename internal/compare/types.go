package compare

import (
	"searchlens/internal/exa"
	"searchlens/internal/metrics"
	"searchlens/internal/traditional"
)

// RichSection is the content-extraction half of the payload.
type RichSection struct {
	Results  *exa.SearchResults `json:"results"`
	Metrics  metrics.Report     `json:"metrics"`
	AIAnswer exa.AnswerPayload  `json:"ai_answer"`
}

// TraditionalSection is the snippet-only half, together with the workflow a
// consumer of snippet results would still have ahead of them.
type TraditionalSection struct {
	Results       *traditional.Response `json:"results"`
	Metrics       metrics.Report        `json:"metrics"`
	WorkflowSteps []string              `json:"workflow_steps"`
	Problems      []string              `json:"problems"`
}

// Response is the complete comparison payload for one query.
type Response struct {
	Query       string             `json:"query"`
	Exa         RichSection        `json:"exa"`
	Traditional TraditionalSection `json:"traditional"`
	Comparison  metrics.Comparison `json:"comparison"`
}
