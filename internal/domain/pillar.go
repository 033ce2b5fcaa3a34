package domain

// Pillar is one of the four recurring content topics generated for a user.
// Pillars are always replaced as a complete set, never patched individually.
type Pillar struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Rationale    string   `json:"rationale,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	PostingIdeas []string `json:"postingIdeas,omitempty"`
}

// ContentMixEntry is one slice of the recommended content mix. Percentages
// across a strategy are expected to sum to 100; the pipeline does not enforce
// it.
type ContentMixEntry struct {
	Type       string `json:"type"`
	Percentage int    `json:"percentage"`
}

// Strategy is the publishing strategy bundle that accompanies the pillars.
// It is replaced as a whole alongside them.
type Strategy struct {
	Cadence       string            `json:"cadence"`
	CallToActions []string          `json:"callToActions"`
	ContentMix    []ContentMixEntry `json:"contentMix"`
	KeyMetrics    []string          `json:"keyMetrics"`
}
