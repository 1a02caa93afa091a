package handlers

import (
	"net/http"

	"github.com/upb/answer-gate/services/audit"
	"github.com/upb/answer-gate/utils"
	"go.uber.org/zap"
)

// AuditHandler exposes the audit sink for operational inspection
type AuditHandler struct {
	sink   audit.RecordSink
	logger *zap.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(sink audit.RecordSink, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		sink:   sink,
		logger: logger,
	}
}

// HandleListEvents handles GET /api/v1/audit/events
func (h *AuditHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.sink.Events()
	_ = utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// HandleClearEvents handles DELETE /api/v1/audit/events
func (h *AuditHandler) HandleClearEvents(w http.ResponseWriter, r *http.Request) {
	h.sink.Clear()
	h.logger.Info("audit events cleared")
	utils.WriteNoContent(w)
}
