package service

import (
	"context"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/repository"
)

type auditService struct {
	audit repository.AuditRepo
}

// NewAuditService exposes the regeneration audit trail for reading.
func NewAuditService(audit repository.AuditRepo) AuditService {
	return &auditService{audit: audit}
}

func (s *auditService) RecentEvents(ctx context.Context, userID string, limit int) ([]domain.AuditEvent, error) {
	return s.audit.ListByUser(ctx, userID, limit)
}
