package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.ProfileFixture("user-1")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "Jamie", got.FirstName)
	assert.Equal(t, 18, got.Analytical)
	assert.Equal(t, domain.BusinessModelService, got.BusinessModel)
	assert.True(t, got.RegenRequired)
	assert.False(t, got.HasPillars())
	assert.Nil(t, got.Strategy)
	assert.Nil(t, got.GeneratedAt)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestProfileRepo_GetMissingIsErrNotFound(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	_, err := repo.GetByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_CreateDuplicateFails(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.ProfileFixture("user-1")))
	assert.Error(t, repo.Create(ctx, testutil.ProfileFixture("user-1")))
}

func TestProfileRepo_UpdateEnrichmentRoundTrip(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.ProfileFixture("user-1")))

	generatedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	enrichment := &domain.Enrichment{
		Pillars: []domain.Pillar{
			{Name: "Data Analysis", Description: "d", Rationale: "r", Tone: "t", PostingIdeas: []string{"one", "two"}},
			{Name: "Technology"}, {Name: "Productivity"}, {Name: "Research"},
		},
		Strategy: domain.Strategy{
			Cadence:       "3 posts per week",
			CallToActions: []string{"ask a question"},
			ContentMix:    []domain.ContentMixEntry{{Type: "insights", Percentage: 100}},
			KeyMetrics:    []string{"saves"},
		},
		PersonaSummary:    "You are analytical.",
		GeneratedAt:       generatedAt,
		Version:           "content-pillars-v1",
		PromptFingerprint: "fp-1",
	}
	require.NoError(t, repo.UpdateEnrichment(ctx, "user-1", enrichment))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, got.Pillars, 4)
	assert.Equal(t, "Data Analysis", got.Pillars[0].Name)
	assert.Equal(t, []string{"one", "two"}, got.Pillars[0].PostingIdeas)
	require.NotNil(t, got.Strategy)
	assert.Equal(t, "3 posts per week", got.Strategy.Cadence)
	assert.Equal(t, "You are analytical.", got.PersonaSummary)
	require.NotNil(t, got.GeneratedAt)
	assert.Equal(t, generatedAt, got.GeneratedAt.UTC())
	assert.Equal(t, "content-pillars-v1", got.Version)
	assert.Equal(t, "fp-1", got.PromptFingerprint)
	assert.False(t, got.RegenRequired, "enrichment write must clear the regen flag")

	// Trait and context fields are untouched.
	assert.Equal(t, 18, got.Analytical)
	assert.Equal(t, domain.AudienceBusiness, got.Audience)
}

func TestProfileRepo_UpdateEnrichmentMissingUser(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	err := repo.UpdateEnrichment(context.Background(), "nobody", &domain.Enrichment{
		GeneratedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_SaveOnboardingSetsRegenFlagAndKeepsEnrichment(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.ProfileFixture("user-1")))
	require.NoError(t, repo.UpdateEnrichment(ctx, "user-1", &domain.Enrichment{
		Pillars:           []domain.Pillar{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}},
		Strategy:          domain.Strategy{Cadence: "3 posts per week"},
		GeneratedAt:       time.Now().UTC(),
		Version:           "content-pillars-v1",
		PromptFingerprint: "fp-1",
	}))

	res := &domain.OnboardingResult{
		Totals: map[domain.Trait]int{
			domain.TraitPractical: 1, domain.TraitAnalytical: 2, domain.TraitCreative: 3,
			domain.TraitSocial: 4, domain.TraitEntrepreneurial: 5, domain.TraitOrganized: 6,
		},
		BusinessModel:        domain.BusinessModelContent,
		Audience:             domain.AudienceNiche,
		TechComfort:          2,
		StructureFlex:        5,
		SoloTeam:             4,
		InterestText:         "pottery",
		PositioningStatement: "I teach pottery online",
	}
	require.NoError(t, repo.SaveOnboarding(ctx, "user-1", res))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, got.Analytical)
	assert.Equal(t, 6, got.Organized)
	assert.Equal(t, domain.BusinessModelContent, got.BusinessModel)
	assert.Equal(t, "pottery", got.InterestText)
	assert.True(t, got.RegenRequired, "re-onboarding must mark the cache stale")

	// The stale cache stays readable until regeneration replaces it.
	assert.True(t, got.HasPillars())
	assert.Equal(t, "fp-1", got.PromptFingerprint)
}

func TestProfileRepo_SaveOnboardingMissingUser(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	err := repo.SaveOnboarding(context.Background(), "nobody", &domain.OnboardingResult{})
	assert.ErrorIs(t, err, ErrNotFound)
}
