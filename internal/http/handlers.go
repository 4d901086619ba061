package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cogaint/velocity-demo/internal/engine"
	"github.com/cogaint/velocity-demo/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_demoengine.go -package=http DemoEngine

// DemoEngine defines the demo operations exposed over HTTP
type DemoEngine interface {
	Companies() []types.CompanySummary
	AnalyzeFragmentation(ctx context.Context, companyKey string) (*types.FragmentationResult, error)
	ScoreCompany(ctx context.Context, companyKey string) (*types.ScoreResult, error)
	QuoteRate(ctx context.Context, app types.Application) (*types.RateQuote, error)
	AIStatus() types.AIStatus
}

type CompanyReq struct {
	Company string `json:"company"`
}

type Handler struct {
	engine DemoEngine
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(engine DemoEngine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) CompaniesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.engine.Companies())
}

func (h *Handler) AIStatusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.engine.AIStatus())
}

func (h *Handler) FragmentationHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CompanyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Company == "" {
		errorResponse(w, http.StatusBadRequest, "Company is required", nil)
		return
	}

	result, err := h.engine.AnalyzeFragmentation(r.Context(), req.Company)
	if err != nil {
		slog.Error("Error analyzing fragmentation", "error", err, "company", req.Company)
		engineError(w, "Failed to analyze fragmentation", err)
		return
	}

	writeJSON(w, result)
}

func (h *Handler) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req CompanyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Company == "" {
		errorResponse(w, http.StatusBadRequest, "Company is required", nil)
		return
	}

	result, err := h.engine.ScoreCompany(r.Context(), req.Company)
	if err != nil {
		slog.Error("Error scoring company", "error", err, "company", req.Company)
		engineError(w, "Failed to score company", err)
		return
	}

	writeJSON(w, result)
}

func (h *Handler) RateHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var app types.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quote, err := h.engine.QuoteRate(r.Context(), app)
	if err != nil {
		slog.Error("Error quoting rate", "error", err, "company_name", app.CompanyName)
		engineError(w, "Failed to quote rate", err)
		return
	}

	writeJSON(w, quote)
}

// HealthHandler reports liveness
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// engineError maps engine errors onto HTTP status codes
func engineError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, engine.ErrUnknownCompany):
		errorResponse(w, http.StatusNotFound, message, err)
	case errors.Is(err, engine.ErrInvalidApplication):
		errorResponse(w, http.StatusBadRequest, message, err)
	default:
		errorResponse(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	if err := json.NewEncoder(w).Encode(types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	}); err != nil {
		slog.Error("Error encoding error response", "error", err, "status", status)
	}
}
