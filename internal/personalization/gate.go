package personalization

import "github.com/pulsr-app/pulsr/internal/domain"

// NeedsRegeneration decides whether the enrichment pipeline must run. It is a
// boolean OR of five independent conditions: an explicit force request, a
// missing pillar cache, a missing stored fingerprint, a fingerprint mismatch
// against the freshly computed one, and the stored regeneration-required
// flag. Evaluation order does not matter.
func NeedsRegeneration(p *domain.Profile, current string, force bool) bool {
	return force ||
		!p.HasPillars() ||
		p.PromptFingerprint == "" ||
		p.PromptFingerprint != current ||
		p.RegenRequired
}
