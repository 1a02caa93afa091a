package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/upb/answer-gate/models"
	"github.com/upb/answer-gate/services/gate"
	"github.com/upb/answer-gate/utils"
	"go.uber.org/zap"
)

// EvaluateRequest represents a request to evaluate retrieval sufficiency.
// Query may be empty; it is evaluated, never rejected for emptiness.
type EvaluateRequest struct {
	Query            string                    `json:"query"`
	Results          []models.RetrievalResult  `json:"results"`
	Persona          string                    `json:"persona,omitempty"`
	Toggles          *models.Toggles           `json:"toggles,omitempty"`
	CustomThresholds *models.PersonaThresholds `json:"custom_thresholds,omitempty"`
}

// GateService defines the interface for gate evaluation
type GateService interface {
	Evaluate(ctx context.Context, req gate.EvaluationRequest) *models.RefusalDecision
}

// GateHandler handles gate evaluation HTTP requests
type GateHandler struct {
	service GateService
	logger  *zap.Logger
}

// NewGateHandler creates a new GateHandler
func NewGateHandler(service GateService, logger *zap.Logger) *GateHandler {
	return &GateHandler{
		service: service,
		logger:  logger,
	}
}

// HandleEvaluate handles POST /api/v1/gate/evaluate
func (h *GateHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimiddleware.GetReqID(ctx)

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid evaluate request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			_ = utils.WriteBadRequest(w, vErr.Message, vErr.Details())
			return
		}
		_ = utils.WriteBadRequest(w, "Validation failed", nil)
		return
	}

	decision := h.service.Evaluate(ctx, gate.EvaluationRequest{
		Query:            req.Query,
		Results:          req.Results,
		Persona:          req.Persona,
		Toggles:          req.Toggles,
		CustomThresholds: req.CustomThresholds,
	})

	_ = utils.WriteJSON(w, http.StatusOK, decision)
}
