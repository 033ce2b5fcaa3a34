package service

import (
	"context"

	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/questionnaire"
)

// PersonalizationService runs the enrichment pipeline.
type PersonalizationService interface {
	// Regenerate brings the user's enrichment up to date. Errors are
	// *contract.PersonalizationError.
	Regenerate(ctx context.Context, req contract.RegenerateRequest) (*contract.RegenerateResponse, error)
}

// ProfileService manages profiles and onboarding results.
type ProfileService interface {
	// GetProfile loads a profile by user id.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// SaveOnboarding scores the answers and persists the result, creating
	// the profile if needed. The enrichment cache is marked stale.
	SaveOnboarding(ctx context.Context, userID, firstName, lastName string,
		answers questionnaire.Answers, interestText, positioning string) error
}

// AuditService reads the regeneration audit trail.
type AuditService interface {
	RecentEvents(ctx context.Context, userID string, limit int) ([]domain.AuditEvent, error)
}

// AuditSink records regeneration outcomes. Implementations never fail the
// caller: errors are logged and swallowed.
type AuditSink interface {
	Record(ctx context.Context, ev domain.AuditEvent)
}
