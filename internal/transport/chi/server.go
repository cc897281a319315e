// Package chi provides the HTTP transport for the intervention API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/roadsafe-cloud/roadsafe/internal/domain"
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
	healthuc "github.com/roadsafe-cloud/roadsafe/internal/usecase/health"
	interventionuc "github.com/roadsafe-cloud/roadsafe/internal/usecase/intervention"
	recommenduc "github.com/roadsafe-cloud/roadsafe/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// InterventionService is the CRUD contract consumed by the transport.
type InterventionService interface {
	Create(ctx context.Context, iv domiv.Intervention) (string, error)
	Get(ctx context.Context, id string) (domiv.Intervention, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q interventionuc.ListQuery) ([]domiv.Intervention, error)
}

// Recommender ranks interventions for a query.
type Recommender interface {
	Recommend(ctx context.Context, req recommenduc.Request) (recommenduc.Result, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server wires the use case services to chi routes.
type Server struct {
	interventions InterventionService
	recommender   Recommender
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	interventions InterventionService,
	recommender Recommender,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		interventions: interventions,
		recommender:   recommender,
		health:        health,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrStorageUnavailable, http.StatusServiceUnavailable, codeStorageUnavailable),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.root)
	r.Get("/health", s.healthCheck)
	r.Post("/interventions", s.createIntervention)
	r.Get("/interventions", s.listInterventions)
	r.Get("/interventions/{id}", s.getIntervention)
	r.Delete("/interventions/{id}", s.deleteIntervention)
	r.Post("/recommendations", s.recommend)
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Road Safety Intervention API is running"})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// createIntervention handles POST /interventions.
func (s *Server) createIntervention(w http.ResponseWriter, r *http.Request) {
	var iv domiv.Intervention
	if err := json.NewDecoder(r.Body).Decode(&iv); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.interventions.Create(r.Context(), iv)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/interventions/"+id)
	writeJSON(w, http.StatusCreated, createInterventionResponse{ID: id})
}

// listInterventions handles GET /interventions.
func (s *Server) listInterventions(w http.ResponseWriter, r *http.Request) {
	q := interventionuc.ListQuery{
		RoadType:    r.URL.Query().Get("road_type"),
		Issue:       r.URL.Query().Get("issue"),
		Environment: r.URL.Query().Get("environment"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
			return
		}
		q.Limit = limit
	}

	ivs, err := s.interventions.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, interventionListResponse{Items: emptyIfNil(ivs)})
}

// getIntervention handles GET /interventions/{id}.
func (s *Server) getIntervention(w http.ResponseWriter, r *http.Request) {
	iv, err := s.interventions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, iv)
}

// deleteIntervention handles DELETE /interventions/{id}.
func (s *Server) deleteIntervention(w http.ResponseWriter, r *http.Request) {
	if err := s.interventions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recommend handles POST /recommendations.
func (s *Server) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.recommender.Recommend(r.Context(), recommenduc.Request{
		Prompt: req.Prompt,
		Filter: req.filter(),
		TopK:   req.TopK,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]recommendationItem, len(result.Items))
	for i, scored := range result.Items {
		items[i] = toRecommendationItem(scored)
	}

	writeJSON(w, http.StatusOK, recommendationResponse{
		FiltersUsed: result.FiltersUsed,
		Count:       len(items),
		Items:       items,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrStorageUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler builds an errorHandler for a simple sentinel -> status mapping.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
