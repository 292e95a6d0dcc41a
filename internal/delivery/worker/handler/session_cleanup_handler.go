// Package handler contains the jobs run by the worker.
package handler

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/lifecycle"
	"recipebox/internal/usecase"

	"github.com/google/uuid"
)

// SessionCleanupHandler purges expired sessions. It implements cron.Job.
type SessionCleanupHandler struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
	timeout  time.Duration
}

// NewSessionCleanupHandler is the constructor for SessionCleanupHandler.
func NewSessionCleanupHandler(sessions usecase.SessionUsecase, logger *slog.Logger) *SessionCleanupHandler {
	return &SessionCleanupHandler{
		sessions: sessions,
		logger:   logger,
		timeout:  lifecycle.DefaultTimeout,
	}
}

// Run executes one cleanup pass with its own run id and deadline.
func (h *SessionCleanupHandler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	runID := uuid.NewString()
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, h.logger.With(slog.String("job", "session_cleanup"), slog.String("run_id", runID)))

	if _, err := h.sessions.CleanupExpired(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Session cleanup failed", slog.Any("error", err))
	}
}
