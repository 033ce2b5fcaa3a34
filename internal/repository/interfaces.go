package repository

import (
	"context"

	"github.com/pulsr-app/pulsr/internal/domain"
)

// ProfileRepo persists user profiles and their enrichment cache.
type ProfileRepo interface {
	// Create inserts a new profile. Fails if the user id already exists.
	Create(ctx context.Context, p *domain.Profile) error

	// GetByUserID loads a profile. Returns ErrNotFound if absent.
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)

	// SaveOnboarding writes the trait totals and context fields and sets
	// the regeneration-required flag. Enrichment cache fields are left
	// untouched.
	SaveOnboarding(ctx context.Context, userID string, res *domain.OnboardingResult) error

	// UpdateEnrichment writes the enrichment bundle and clears the
	// regeneration-required flag in one statement.
	UpdateEnrichment(ctx context.Context, userID string, e *domain.Enrichment) error
}

// AuditRepo appends and lists regeneration audit events.
type AuditRepo interface {
	Append(ctx context.Context, ev *domain.AuditEvent) error

	// ListByUser returns the most recent events for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditEvent, error)
}
