package personalization

import (
	"testing"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredProfile() *domain.Profile {
	return &domain.Profile{
		UserID:               "user-1",
		Practical:            12,
		Analytical:           18,
		Creative:             9,
		Social:               11,
		Entrepreneurial:      15,
		Organized:            7,
		BusinessModel:        domain.BusinessModelService,
		Audience:             domain.AudienceBusiness,
		TechComfort:          4,
		StructureFlex:        2,
		SoloTeam:             1,
		InterestText:         "developer tools, writing",
		PositioningStatement: "I help teams ship faster",
	}
}

func TestFingerprint_DeterministicAcrossCalls(t *testing.T) {
	a := Fingerprint(scoredProfile())
	b := Fingerprint(scoredProfile())

	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

func TestFingerprint_IgnoresUnscoredFields(t *testing.T) {
	base := Fingerprint(scoredProfile())

	p := scoredProfile()
	p.FirstName = "Ada"
	p.PersonaSummary = "cached summary"
	p.RegenRequired = true
	p.Version = "content-pillars-v1"

	assert.Equal(t, base, Fingerprint(p))
}

func TestFingerprint_SensitiveToEveryScoredField(t *testing.T) {
	base := Fingerprint(scoredProfile())

	mutations := map[string]func(*domain.Profile){
		"user id":          func(p *domain.Profile) { p.UserID = "user-2" },
		"practical":        func(p *domain.Profile) { p.Practical++ },
		"analytical":       func(p *domain.Profile) { p.Analytical++ },
		"creative":         func(p *domain.Profile) { p.Creative++ },
		"social":           func(p *domain.Profile) { p.Social++ },
		"entrepreneurial":  func(p *domain.Profile) { p.Entrepreneurial++ },
		"organized":        func(p *domain.Profile) { p.Organized++ },
		"business model":   func(p *domain.Profile) { p.BusinessModel = domain.BusinessModelContent },
		"audience":         func(p *domain.Profile) { p.Audience = domain.AudienceNiche },
		"interests":        func(p *domain.Profile) { p.InterestText = "gardening" },
		"positioning":      func(p *domain.Profile) { p.PositioningStatement = "something else" },
		"tech comfort":     func(p *domain.Profile) { p.TechComfort++ },
		"structure pref":   func(p *domain.Profile) { p.StructureFlex++ },
		"team preference":  func(p *domain.Profile) { p.SoloTeam++ },
	}

	for name, mutate := range mutations {
		p := scoredProfile()
		mutate(p)
		assert.NotEqual(t, base, Fingerprint(p), "field: %s", name)
	}
}
