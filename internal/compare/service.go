// Package compare runs both search pipelines for a query and reduces the
// outcome to a single side-by-side payload.
package compare

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"searchlens/internal/exa"
	"searchlens/internal/metrics"
	"searchlens/internal/telemetry"
	"searchlens/internal/traditional"
)

// SearchProvider is the rich-content side of a comparison. *exa.Client
// satisfies it.
type SearchProvider interface {
	Search(ctx context.Context, query string, numResults int) (*exa.SearchResults, error)
	Answer(ctx context.Context, query string) exa.AnswerPayload
}

// Service orchestrates one comparison per call. Safe for concurrent use as
// long as its collaborators are.
type Service struct {
	provider          SearchProvider
	traditional       traditional.Searcher
	logger            *zap.Logger
	defaultMaxResults int
}

func NewService(provider SearchProvider, searcher traditional.Searcher, logger *zap.Logger, defaultMaxResults int) *Service {
	if defaultMaxResults <= 0 {
		defaultMaxResults = 5
	}
	return &Service{
		provider:          provider,
		traditional:       searcher,
		logger:            logger,
		defaultMaxResults: defaultMaxResults,
	}
}

// Compare runs the rich and traditional searches for query and assembles the
// comparison payload. A provider failure that yields no results at all is
// fatal and surfaces as a *ProviderError; a failure alongside partial results
// is recorded on the payload instead. The traditional side and the AI answer
// never fail the comparison.
func (s *Service) Compare(ctx context.Context, query string, maxResults int) (*Response, error) {
	start := time.Now()

	query = strings.TrimSpace(query)
	if query == "" {
		telemetry.ComparisonsTotal.WithLabelValues("validation_error").Inc()
		return nil, ErrEmptyQuery
	}
	if maxResults <= 0 {
		maxResults = s.defaultMaxResults
	}

	s.logger.Info("starting comparison",
		zap.String("query", query),
		zap.Int("max_results", maxResults))

	richResults, err := s.provider.Search(ctx, query, maxResults)
	if err != nil {
		if richResults == nil || len(richResults.Results) == 0 {
			telemetry.ProviderErrorsTotal.WithLabelValues("fatal").Inc()
			telemetry.ComparisonsTotal.WithLabelValues("provider_error").Inc()
			return nil, &ProviderError{Err: err}
		}
		telemetry.ProviderErrorsTotal.WithLabelValues("partial").Inc()
		s.logger.Warn("rich search returned partial results",
			zap.String("query", query),
			zap.Error(err))
		richResults.Error = err.Error()
	}

	answer := s.provider.Answer(ctx, query)
	if answer.Error != "" {
		telemetry.ProviderErrorsTotal.WithLabelValues("answer").Inc()
		s.logger.Warn("answer generation failed",
			zap.String("query", query),
			zap.String("error", answer.Error))
	}

	snippetResults, err := s.traditional.Search(ctx, query, maxResults)
	if err != nil {
		telemetry.ProviderErrorsTotal.WithLabelValues("traditional").Inc()
		s.logger.Warn("traditional search failed",
			zap.String("query", query),
			zap.Error(err))
		snippetResults = &traditional.Response{Query: query, Results: []traditional.SnippetResult{}}
	}

	richMetrics := metrics.CalculateRichMetrics(richResults.Results)
	snippetMetrics := metrics.CalculateSnippetMetrics(snippetResults.Results)
	comparison := metrics.Compare(richMetrics, snippetMetrics)

	telemetry.ComparisonsTotal.WithLabelValues("success").Inc()
	telemetry.ComparisonDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("comparison complete",
		zap.String("query", query),
		zap.Int("rich_results", len(richResults.Results)),
		zap.Int("traditional_results", len(snippetResults.Results)),
		zap.Duration("duration", time.Since(start)))

	return &Response{
		Query: query,
		Exa: RichSection{
			Results:  richResults,
			Metrics:  richMetrics,
			AIAnswer: answer,
		},
		Traditional: TraditionalSection{
			Results:       snippetResults,
			Metrics:       snippetMetrics,
			WorkflowSteps: traditional.WorkflowSteps(),
			Problems:      traditional.Problems(),
		},
		Comparison: comparison,
	}, nil
}
