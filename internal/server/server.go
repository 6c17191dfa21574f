// Package server exposes the inference pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"winequality/pkg/data"
	"winequality/pkg/features"
	"winequality/pkg/pipeline"
)

const maxBody = 64 << 10

type Server struct {
	pipe   *pipeline.Pipeline
	logger *slog.Logger
}

func New(pipe *pipeline.Pipeline, logger *slog.Logger) *Server {
	return &Server{pipe: pipe, logger: logger}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/schema", s.handleSchema)
		r.Post("/predict", s.handlePredict)
	})
	return r
}

type predictRequest struct {
	Features map[string]json.RawMessage `json:"features"`
}

type predictResponse struct {
	ID       string   `json:"id"`
	Score    float64  `json:"score"`
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Imputed  []string `json:"imputed,omitempty"`
}

type errorResponse struct {
	ID      string `json:"id"`
	Error   string `json:"error"`
	Feature string `json:"feature,omitempty"`
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"features": features.Wine.Names()})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	ctx := r.Context()

	var req predictRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "malformed request: " + err.Error()})
		return
	}
	raw := data.FromJSON(req.Features)

	res, err := s.pipe.Run(ctx, raw)
	if err != nil {
		status, resp := classify(id, err)
		if status == http.StatusInternalServerError {
			s.logger.ErrorContext(ctx, "prediction failed",
				slog.String("id", id),
				slog.String("request_id", middleware.GetReqID(ctx)),
				slog.Any("error", err),
			)
		}
		writeJSON(w, status, resp)
		return
	}

	s.logger.InfoContext(ctx, "prediction",
		slog.String("id", id),
		slog.Float64("score", res.Score),
		slog.String("category", string(res.Category)),
	)
	writeJSON(w, http.StatusOK, predictResponse{
		ID:       id,
		Score:    res.Score,
		Category: string(res.Category),
		Label:    res.Category.Label(r.URL.Query().Get("lang")),
		Imputed:  res.Imputed,
	})
}

func classify(id string, err error) (int, errorResponse) {
	var (
		ife *features.InvalidFeatureValueError
		sm  *features.SchemaMismatchError
	)
	switch {
	case errors.As(err, &ife):
		return http.StatusUnprocessableEntity, errorResponse{ID: id, Error: err.Error(), Feature: ife.Feature}
	case errors.As(err, &sm):
		return http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()}
	default:
		return http.StatusInternalServerError, errorResponse{ID: id, Error: fmt.Sprintf("internal error (%s)", id)}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
