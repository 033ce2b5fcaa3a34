package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/intelligence"
	"github.com/pulsr-app/pulsr/internal/llm"
	"github.com/pulsr-app/pulsr/internal/personality"
	"github.com/pulsr-app/pulsr/internal/personalization"
	"github.com/pulsr-app/pulsr/internal/repository"
)

type personalizationService struct {
	profiles repository.ProfileRepo
	pillars  intelligence.PillarService
	audit    AuditSink
	observer UseCaseObserver

	// One mutex per user id: two regenerations for the same user never race
	// on the gate-then-persist window. Distinct users proceed in parallel.
	locks sync.Map // string -> *sync.Mutex
}

// NewPersonalizationService wires the enrichment pipeline.
func NewPersonalizationService(
	profiles repository.ProfileRepo,
	pillars intelligence.PillarService,
	audit AuditSink,
	observers ...UseCaseObserver,
) PersonalizationService {
	return &personalizationService{
		profiles: profiles,
		pillars:  pillars,
		audit:    audit,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *personalizationService) userLock(userID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *personalizationService) Regenerate(ctx context.Context, req contract.RegenerateRequest) (*contract.RegenerateResponse, error) {
	start := time.Now()
	resp, err := s.regenerate(ctx, req)

	event := UseCaseEvent{
		Name:      "personalization.regenerate",
		UserID:    req.UserID,
		Forced:    req.Force,
		Duration:  time.Since(start),
		Err:       err,
		StartedAt: start,
	}
	if resp != nil {
		event.Status = string(resp.Status)
	}
	s.observer.ObserveUseCase(ctx, event)
	return resp, err
}

func (s *personalizationService) regenerate(ctx context.Context, req contract.RegenerateRequest) (*contract.RegenerateResponse, error) {
	if req.UserID == "" {
		return nil, &contract.PersonalizationError{
			Code:    contract.ErrMissingUserID,
			Message: "userId is required",
		}
	}

	mu := s.userLock(req.UserID)
	mu.Lock()
	defer mu.Unlock()

	profile, err := s.profiles.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.PersonalizationError{
				Code:    contract.ErrProfileNotFound,
				Message: "profile not found for " + req.UserID,
			}
		}
		return nil, &contract.PersonalizationError{
			Code:    contract.ErrPersistenceFailed,
			Message: "loading profile failed",
			Detail:  err.Error(),
		}
	}

	analysis := personality.Classify(profile.Totals(), personality.Context{
		BusinessModel: profile.BusinessModel,
		Audience:      profile.Audience,
		TechComfort:   profile.TechComfort,
		StructureFlex: profile.StructureFlex,
		SoloTeam:      profile.SoloTeam,
	})
	fingerprint := personalization.Fingerprint(profile)

	if !personalization.NeedsRegeneration(profile, fingerprint, req.Force) {
		s.audit.Record(ctx, domain.AuditEvent{
			UserID:      profile.UserID,
			Outcome:     domain.AuditSkip,
			Fingerprint: fingerprint,
			Message:     "Content up to date",
		})
		return &contract.RegenerateResponse{
			Status:  contract.StatusUpToDate,
			Profile: profileView(profile, analysis),
		}, nil
	}

	content, raw, err := s.pillars.Generate(ctx, profile, analysis)
	if err != nil {
		return nil, s.upstreamFailure(ctx, profile.UserID, fingerprint, raw, err)
	}

	enrichment := &domain.Enrichment{
		Pillars:           content.Pillars,
		Strategy:          *content.Strategy,
		PersonaSummary:    content.Summary,
		GeneratedAt:       time.Now().UTC(),
		Version:           content.Version,
		PromptFingerprint: fingerprint,
	}
	if err := s.profiles.UpdateEnrichment(ctx, profile.UserID, enrichment); err != nil {
		s.audit.Record(ctx, domain.AuditEvent{
			UserID:      profile.UserID,
			Outcome:     domain.AuditError,
			Fingerprint: fingerprint,
			Message:     "Persisting enrichment failed: " + err.Error(),
		})
		return nil, &contract.PersonalizationError{
			Code:    contract.ErrPersistenceFailed,
			Message: "persisting enrichment failed",
			Detail:  err.Error(),
		}
	}

	s.audit.Record(ctx, domain.AuditEvent{
		UserID:      profile.UserID,
		Outcome:     domain.AuditSuccess,
		Fingerprint: fingerprint,
		Message:     "Regenerated with version " + enrichment.Version,
	})

	profile.Pillars = enrichment.Pillars
	profile.Strategy = &enrichment.Strategy
	profile.PersonaSummary = enrichment.PersonaSummary
	profile.GeneratedAt = &enrichment.GeneratedAt
	profile.Version = enrichment.Version
	profile.PromptFingerprint = enrichment.PromptFingerprint
	profile.RegenRequired = false

	return &contract.RegenerateResponse{
		Status:  contract.StatusRegenerated,
		Profile: profileView(profile, analysis),
	}, nil
}

// upstreamFailure maps a provider error onto the failure taxonomy and records
// the error audit event. Raw provider text is retained for diagnostics on
// validation failures; prior cached state stays untouched either way.
func (s *personalizationService) upstreamFailure(ctx context.Context, userID, fingerprint, raw string, err error) error {
	if errors.Is(err, llm.ErrInvalidOutput) {
		// The raw text goes into the trail too, so a rejected response can
		// be diagnosed from the audit log alone.
		msg := "Provider output rejected: " + err.Error()
		if raw != "" {
			msg += "; raw output: " + raw
		}
		s.audit.Record(ctx, domain.AuditEvent{
			UserID:      userID,
			Outcome:     domain.AuditError,
			Fingerprint: fingerprint,
			Message:     msg,
		})
		return &contract.PersonalizationError{
			Code:    contract.ErrUpstreamInvalidResponse,
			Message: "provider returned an invalid response",
			Detail:  raw,
		}
	}

	s.audit.Record(ctx, domain.AuditEvent{
		UserID:      userID,
		Outcome:     domain.AuditError,
		Fingerprint: fingerprint,
		Message:     "Provider call failed: " + err.Error(),
	})
	return &contract.PersonalizationError{
		Code:    contract.ErrUpstreamUnavailable,
		Message: "generation provider unavailable",
		Detail:  err.Error(),
	}
}

func profileView(p *domain.Profile, analysis personality.Analysis) contract.ProfileView {
	return contract.ProfileView{
		UserID:         p.UserID,
		Label:          analysis.Label,
		Pillars:        p.Pillars,
		Strategy:       p.Strategy,
		PersonaSummary: p.PersonaSummary,
		GeneratedAt:    p.GeneratedAt,
		Version:        p.Version,
	}
}
