package domain

// Trait is one of the six personality dimensions scored by the onboarding
// questionnaire.
type Trait string

const (
	TraitPractical       Trait = "practical"
	TraitAnalytical      Trait = "analytical"
	TraitCreative        Trait = "creative"
	TraitSocial          Trait = "social"
	TraitEntrepreneurial Trait = "entrepreneurial"
	TraitOrganized       Trait = "organized"
)

// TraitOrder is the canonical declaration order of the six traits. It is the
// tie-break order for classification and the serialization order for
// fingerprinting, so it must never be reordered.
var TraitOrder = [6]Trait{
	TraitPractical,
	TraitAnalytical,
	TraitCreative,
	TraitSocial,
	TraitEntrepreneurial,
	TraitOrganized,
}

// ValidTraits is the canonical set of accepted trait strings.
var ValidTraits = map[Trait]bool{
	TraitPractical: true, TraitAnalytical: true, TraitCreative: true,
	TraitSocial: true, TraitEntrepreneurial: true, TraitOrganized: true,
}

// BusinessModel values harvested from questionnaire option flags. Free text
// is allowed for profiles edited outside onboarding.
const (
	BusinessModelContent = "content"
	BusinessModelService = "service"
	BusinessModelProduct = "product"
)

// Audience values harvested from questionnaire option flags.
const (
	AudienceBusiness    = "business"
	AudienceBroadOnline = "broad_online"
	AudienceNiche       = "niche"
)

// AuditOutcome tags the result of one regeneration attempt.
type AuditOutcome string

const (
	AuditSkip    AuditOutcome = "skip"
	AuditSuccess AuditOutcome = "success"
	AuditError   AuditOutcome = "error"
)
