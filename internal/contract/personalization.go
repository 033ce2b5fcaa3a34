package contract

import (
	"time"

	"github.com/pulsr-app/pulsr/internal/domain"
)

// RegenerateRequest asks the pipeline to bring a user's enrichment up to
// date. Force bypasses the staleness gate.
type RegenerateRequest struct {
	UserID string
	Force  bool
}

// RegenerateStatus reports what the pipeline did.
type RegenerateStatus string

const (
	StatusUpToDate    RegenerateStatus = "up-to-date"
	StatusRegenerated RegenerateStatus = "regenerated"
)

// ProfileView is the enrichment slice returned to callers.
type ProfileView struct {
	UserID         string
	Label          string
	Pillars        []domain.Pillar
	Strategy       *domain.Strategy
	PersonaSummary string
	GeneratedAt    *time.Time
	Version        string
}

type RegenerateResponse struct {
	Status  RegenerateStatus
	Profile ProfileView
}

type PersonalizationErrorCode string

const (
	ErrMissingUserID           PersonalizationErrorCode = "MISSING_USER_ID"
	ErrProfileNotFound         PersonalizationErrorCode = "PROFILE_NOT_FOUND"
	ErrUpstreamInvalidResponse PersonalizationErrorCode = "UPSTREAM_INVALID_RESPONSE"
	ErrUpstreamUnavailable     PersonalizationErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrPersistenceFailed       PersonalizationErrorCode = "PERSISTENCE_FAILED"
)

// PersonalizationError is the typed boundary error. Detail carries raw
// provider text on upstream validation failures for diagnostics.
type PersonalizationError struct {
	Code    PersonalizationErrorCode
	Message string
	Detail  string
}

func (e *PersonalizationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
