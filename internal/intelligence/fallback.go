package intelligence

import (
	"fmt"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/personality"
)

// DeterministicContent assembles a GeneratedContent from the classifier's
// template output. Used when generation is disabled and for offline planning;
// same shape as provider output, so callers never branch on the source.
func DeterministicContent(analysis personality.Analysis) *GeneratedContent {
	pillars := make([]domain.Pillar, len(analysis.Pillars))
	for i, p := range analysis.Pillars {
		pillars[i] = p
		if pillars[i].Tone == "" {
			pillars[i].Tone = analysis.Tone
		}
		if pillars[i].Rationale == "" {
			pillars[i].Rationale = fmt.Sprintf("Plays to your %s side", analysis.Primary)
		}
	}

	strategy := analysis.Strategy
	return &GeneratedContent{
		Version: AIVersion,
		Summary: fmt.Sprintf(
			"Your content profile is %s. Your strongest suit is %s, backed by %s. Lead with a %s voice and aim for %s posts per week.",
			analysis.Label, analysis.Primary, analysis.Secondary, analysis.Tone, analysis.PostingFrequency),
		Pillars:  pillars,
		Strategy: &strategy,
	}
}
