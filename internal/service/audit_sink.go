package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/repository"
)

// bestEffortAuditSink writes audit events through an AuditRepo. Write
// failures are logged and swallowed; a broken audit trail must never take
// down a regeneration that otherwise succeeded.
type bestEffortAuditSink struct {
	repo   repository.AuditRepo
	logger *slog.Logger
}

// NewAuditSink creates the standard best-effort sink. logW may be nil to
// discard failure logs.
func NewAuditSink(repo repository.AuditRepo, logW io.Writer) AuditSink {
	if logW == nil {
		logW = io.Discard
	}
	return &bestEffortAuditSink{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func (s *bestEffortAuditSink) Record(ctx context.Context, ev domain.AuditEvent) {
	if err := s.repo.Append(ctx, &ev); err != nil {
		s.logger.WarnContext(ctx, "audit_write_failed",
			"user_id", ev.UserID,
			"outcome", string(ev.Outcome),
			"error", err.Error(),
		)
	}
}
