package history

import (
	"time"
)

// History represents all recorded comparison runs
type History struct {
	Runs []Run `json:"runs"`
}

// Run captures the outcome of a single comparison, enough to recall the
// headline numbers without re-querying.
type Run struct {
	ID                 string    `json:"id"`
	Query              string    `json:"query"`
	MaxResults         int       `json:"max_results"`
	RanAt              time.Time `json:"ran_at"`
	RichResults        int       `json:"rich_results"`
	TraditionalResults int       `json:"traditional_results"`
	ContentRatio       float64   `json:"content_ratio"`
	AnswerOK           bool      `json:"answer_ok"`
	Server             string    `json:"server,omitempty"`
}
