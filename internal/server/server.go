// Package server exposes the comparison service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"searchlens/internal/compare"
	"searchlens/internal/config"
)

// Comparer runs one search comparison per call. *compare.Service satisfies it.
type Comparer interface {
	Compare(ctx context.Context, query string, maxResults int) (*compare.Response, error)
}

type Server struct {
	cfg     *config.Config
	service Comparer
	logger  *zap.Logger
}

func New(cfg *config.Config, service Comparer, logger *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
		logger:  logger,
	}
}

// Handler returns the full HTTP surface with request-ID logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return s.withRequestID(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
		return
	}

	query := r.PostFormValue("query")

	// Absent means "use the configured default"; the service applies it.
	maxResults := 0
	if raw := strings.TrimSpace(r.PostFormValue("max_results")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "max_results must be an integer"})
			return
		}
		maxResults = n
	}

	resp, err := s.service.Compare(r.Context(), query, maxResults)
	if err != nil {
		s.renderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "healthy",
		"exa_api_configured": s.cfg.ExaConfigured(),
	})
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	var provErr *compare.ProviderError
	switch {
	case errors.Is(err, compare.ErrEmptyQuery):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Query is required"})
	case errors.As(err, &provErr):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": provErr.Error()})
	default:
		s.logger.Error("comparison failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
