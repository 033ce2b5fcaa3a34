package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pulsr-app/pulsr/internal/db"
	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/questionnaire"
	"github.com/pulsr-app/pulsr/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	bank     []questionnaire.Question
	observer UseCaseObserver
}

// NewProfileService creates the onboarding/profile service. The bank is the
// question bank answers are scored against.
func NewProfileService(
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
	bank []questionnaire.Question,
	observers ...UseCaseObserver,
) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		bank:     bank,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// SaveOnboarding scores the answers and persists totals + context in one
// transaction, creating the profile row first when the user is new. The
// write always sets the regeneration-required flag.
func (s *profileService) SaveOnboarding(ctx context.Context, userID, firstName, lastName string,
	answers questionnaire.Answers, interestText, positioning string) error {

	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	scored := questionnaire.Score(answers, s.bank)
	result := &domain.OnboardingResult{
		Totals:               scored.Totals,
		BusinessModel:        scored.BusinessModel,
		Audience:             scored.Audience,
		TechComfort:          scored.TechComfort(),
		StructureFlex:        scored.StructureFlex(),
		SoloTeam:             scored.SoloTeam(),
		InterestText:         interestText,
		PositioningStatement: positioning,
	}

	start := time.Now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProfileRepo(tx)

		if _, err := repo.GetByUserID(ctx, userID); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repo.Create(ctx, &domain.Profile{
				UserID:    userID,
				FirstName: firstName,
				LastName:  lastName,
			}); err != nil {
				return err
			}
		}

		return repo.SaveOnboarding(ctx, userID, result)
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "profile.save_onboarding",
		UserID:    userID,
		Duration:  time.Since(start),
		Err:       err,
		StartedAt: start,
	})
	return err
}
