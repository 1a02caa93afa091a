package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/upb/answer-gate/auth"
	"github.com/upb/answer-gate/config"
	"github.com/upb/answer-gate/internal/observability"
	"github.com/upb/answer-gate/middleware"
	"github.com/upb/answer-gate/services/audit"
	"github.com/upb/answer-gate/services/gate"
	"github.com/upb/answer-gate/services/thresholds"
	"go.uber.org/zap"
)

// Dependencies holds all application dependencies. This is the central wiring
// point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Metrics (nil when disabled)
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	// Gate
	Thresholds  *thresholds.Registry
	AuditSink   audit.RecordSink
	GateService *gate.Service

	// Auth (nil when disabled)
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Observability.MetricsEnabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Metrics = observability.NewMetrics(deps.Registry)
	}

	deps.Thresholds = thresholds.NewRegistry(logger)
	deps.AuditSink = audit.NewMemorySink()

	opts := gate.Options{AuditEnabled: cfg.Gate.AuditEnabled}
	if deps.Metrics != nil {
		opts.Metrics = deps.Metrics
	}
	deps.GateService = gate.NewService(deps.Thresholds, deps.AuditSink, logger, opts)

	if cfg.Auth.Enabled {
		validator := auth.NewTokenValidator(cfg.Auth.TokenSecret)
		deps.AuthMiddleware = middleware.NewAuthMiddleware(validator, logger)
	}

	logger.Info("all dependencies initialized",
		zap.Bool("audit_enabled", cfg.Gate.AuditEnabled),
		zap.Bool("auth_enabled", cfg.Auth.Enabled),
		zap.Bool("metrics_enabled", cfg.Observability.MetricsEnabled))

	return deps
}
