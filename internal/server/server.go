// Package server exposes the correction pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"redline/internal/customdict"
	"redline/internal/fuzzy"
	"redline/internal/improve"
	"redline/internal/pipeline"
)

// Server wires the pipeline, the fuzzy matcher and the optional custom
// dictionary into an HTTP handler.
type Server struct {
	pipeline *pipeline.Pipeline
	matcher  *fuzzy.Matcher
	dict     *customdict.Store
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger; by default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithCustomDict enables the custom-word endpoints. Without it they
// answer 503.
func WithCustomDict(dict *customdict.Store) Option {
	return func(s *Server) { s.dict = dict }
}

func New(p *pipeline.Pipeline, m *fuzzy.Matcher, opts ...Option) *Server {
	s := &Server{
		pipeline: p,
		matcher:  m,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(cors)
	r.Use(requestLogger(s.logger))

	r.Post("/process", s.handleProcess)
	r.Get("/rules", s.handleRules)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/suggest", s.handleSuggest)
		r.Post("/custom-word", s.handleAddWord)
		r.Delete("/custom-word/{word}", s.handleRemoveWord)
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type processRequest struct {
	Sentence string `json:"sentence"`
	Mode     string `json:"mode"`
}

type processResponse struct {
	pipeline.Result
	Mode string `json:"mode,omitempty"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Sentence) == "" {
		s.metrics.requests.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	res, err := s.pipeline.Run(req.Sentence)
	if err != nil {
		if errors.Is(err, pipeline.ErrInputTooLarge) {
			s.metrics.requests.WithLabelValues("too_large").Inc()
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		s.logger.Error("pipeline run failed", "error", err)
		s.metrics.requests.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "processing failed")
		return
	}

	for _, rec := range res.RulesFired {
		s.metrics.ruleFired.WithLabelValues(rec.Name).Inc()
	}
	s.metrics.requests.WithLabelValues("ok").Inc()
	s.metrics.duration.Observe(time.Since(start).Seconds())

	if req.Mode != "" && req.Mode != improve.ModeStandard {
		res.Improved = improve.ApplyMode(res.Improved, req.Mode)
	}
	writeJSON(w, http.StatusOK, processResponse{Result: res, Mode: req.Mode})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rules": s.pipeline.RuleNames()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type suggestRequest struct {
	Word string `json:"word"`
	Max  int    `json:"max"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	cands := s.matcher.Suggest(strings.TrimSpace(req.Word), req.Max)
	if cands == nil {
		cands = []fuzzy.Candidate{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":        req.Word,
		"suggestions": cands,
	})
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		writeError(w, http.StatusServiceUnavailable, "custom dictionary unavailable")
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.dict.Add(r.Context(), req.Word); err != nil {
		if errors.Is(err, customdict.ErrInvalidWord) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("custom word add failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if s.dict == nil {
		writeError(w, http.StatusServiceUnavailable, "custom dictionary unavailable")
		return
	}
	word := chi.URLParam(r, "word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := s.dict.Remove(r.Context(), word); err != nil {
		if errors.Is(err, customdict.ErrInvalidWord) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("custom word remove failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
