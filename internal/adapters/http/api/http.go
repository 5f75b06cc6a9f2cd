// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/okian/arcstar/internal/adapters/repository"
	"github.com/okian/arcstar/internal/domain/arcstar"
	"github.com/okian/arcstar/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	EventDependencies
	CornerDependencies
	DetectDependencies
}

// EventDependencies accepts events for asynchronous detection.
type EventDependencies interface {
	// Submit queues an event. It returns an error wrapping
	// sae.ErrOutOfBounds for events outside the sensor and a queue
	// backpressure error when the event cannot be taken right now.
	Submit(ctx context.Context, evt model.Event) error
}

// CornerDependencies exposes detected corners.
type CornerDependencies interface {
	Recent(ctx context.Context, n int) ([]repository.Corner, error)
	Corner(ctx context.Context, id uuid.UUID) (repository.Corner, error)
	Match(ctx context.Context, probe model.Event) (repository.Corner, float64, error)
}

// DetectDependencies classifies events synchronously.
type DetectDependencies interface {
	Detect(ctx context.Context, evt model.Event) (model.Event, arcstar.Outcome, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	eventsHandler  *EventsHandler
	cornersHandler *CornersHandler
	detectHandler  *DetectHandler
}

// NewServer creates a new API server with all handlers. maxCornerLimit
// bounds the limit accepted by GET /corners.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxCornerLimit int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		eventsHandler:  NewEventsHandler(deps),
		cornersHandler: NewCornersHandler(deps, maxCornerLimit),
		detectHandler:  NewDetectHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandlePostEvents, "events"))
	mux.HandleFunc("/detect", MetricsMiddleware(s.detectHandler.HandleDetect, "detect"))
	mux.HandleFunc("/corners/match", MetricsMiddleware(s.cornersHandler.HandleMatch, "corners_match"))
	mux.HandleFunc("/corners/{id}", MetricsMiddleware(s.cornersHandler.HandleGetCorner, "corner"))
	mux.HandleFunc("/corners", MetricsMiddleware(s.cornersHandler.HandleListCorners, "corners"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, repository.ErrNotFound)
}
