package domain

import "time"

// Profile is the per-user record: trait totals from onboarding, categorical
// context, and the cached AI enrichment with its change-detection fields.
type Profile struct {
	UserID    string
	FirstName string
	LastName  string

	// Trait totals, additive scores from the questionnaire. Default 0.
	Practical       int
	Analytical      int
	Creative        int
	Social          int
	Entrepreneurial int
	Organized       int

	// Categorical and ordinal context.
	BusinessModel        string
	Audience             string
	TechComfort          int // 1-5
	StructureFlex        int // 1-5, low = prefers fixed structure
	SoloTeam             int // 1-5, low = prefers working solo
	InterestText         string
	PositioningStatement string

	// Enrichment cache. Written only by the regeneration pipeline.
	Pillars           []Pillar
	Strategy          *Strategy
	PersonaSummary    string
	GeneratedAt       *time.Time
	Version           string
	PromptFingerprint string
	RegenRequired     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Totals returns the six trait scores keyed by trait.
func (p *Profile) Totals() map[Trait]int {
	return map[Trait]int{
		TraitPractical:       p.Practical,
		TraitAnalytical:      p.Analytical,
		TraitCreative:        p.Creative,
		TraitSocial:          p.Social,
		TraitEntrepreneurial: p.Entrepreneurial,
		TraitOrganized:       p.Organized,
	}
}

// HasPillars reports whether the profile carries a cached pillar set.
func (p *Profile) HasPillars() bool {
	return len(p.Pillars) > 0
}

// Enrichment is the atomic unit persisted after a successful regeneration.
// All fields are written together with the cleared regen-required flag; a
// partial write never occurs.
type Enrichment struct {
	Pillars           []Pillar
	Strategy          Strategy
	PersonaSummary    string
	GeneratedAt       time.Time
	Version           string
	PromptFingerprint string
}

// OnboardingResult is what the questionnaire produces for persistence:
// trait totals plus the harvested context fields. Saving it marks the
// enrichment cache stale.
type OnboardingResult struct {
	Totals               map[Trait]int
	BusinessModel        string
	Audience             string
	TechComfort          int
	StructureFlex        int
	SoloTeam             int
	InterestText         string
	PositioningStatement string
}
