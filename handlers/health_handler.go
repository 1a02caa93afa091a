package handlers

import (
	"net/http"

	"github.com/upb/answer-gate/config"
	"github.com/upb/answer-gate/services/thresholds"
	"github.com/upb/answer-gate/utils"
)

// HealthCheck returns a simple health check handler
func HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// StatusHandler returns application status information
func StatusHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"version":       "0.1.0",
			"environment":   cfg.Environment,
			"personas":      thresholds.Personas(),
			"audit_enabled": cfg.Gate.AuditEnabled,
		})
	}
}
