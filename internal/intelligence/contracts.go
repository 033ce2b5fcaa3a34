package intelligence

import (
	"fmt"

	"github.com/pulsr-app/pulsr/internal/domain"
)

// AIVersion tags the generated-content schema. Persisted alongside the
// enrichment so stale cached shapes can be told apart after a schema change.
const AIVersion = "content-pillars-v1"

// minPillars is the smallest pillar count accepted from the provider.
const minPillars = 4

// GeneratedContent is the structured output of one enrichment generation.
type GeneratedContent struct {
	Version  string           `json:"version"`
	Summary  string           `json:"summary"`
	Pillars  []domain.Pillar  `json:"pillars"`
	Strategy *domain.Strategy `json:"strategy"`
}

// ValidateGenerated checks the required shape of provider output: at least
// four pillars with names, and a strategy with a cadence. Anything less is a
// validation failure and must not be persisted.
func ValidateGenerated(c GeneratedContent) error {
	if len(c.Pillars) < minPillars {
		return fmt.Errorf("expected at least %d pillars, got %d", minPillars, len(c.Pillars))
	}
	for i, p := range c.Pillars {
		if p.Name == "" {
			return fmt.Errorf("pillar %d has no name", i)
		}
	}
	if c.Strategy == nil {
		return fmt.Errorf("strategy is missing")
	}
	if c.Strategy.Cadence == "" {
		return fmt.Errorf("strategy has no cadence")
	}
	return nil
}
