package questionnaire

import "github.com/pulsr-app/pulsr/internal/domain"

// QuestionType distinguishes weighted multiple-choice questions from ordinal
// sliders.
type QuestionType string

const (
	QuestionChoice QuestionType = "choice"
	QuestionSlider QuestionType = "slider"
)

// OptionFlags carries the categorical facts an option may declare besides its
// trait weights.
type OptionFlags struct {
	BusinessModel string
	Audience      string
}

// Option is one selectable answer of a choice question.
type Option struct {
	ID      string
	Label   string
	Weights map[domain.Trait]int
	Flags   OptionFlags
}

// Question is one entry of the question bank. Choice questions carry options
// with trait weights; slider questions carry an ordinal range with a label
// pair for its two ends.
type Question struct {
	Key      string
	Prompt   string
	Type     QuestionType
	Options  []Option
	Min      int
	Max      int
	MinLabel string
	MaxLabel string
}

// Well-known slider keys harvested into profile context fields.
const (
	KeyTechComfort   = "tech_comfort"
	KeyStructureFlex = "structure_flex"
	KeySoloTeam      = "solo_team"
)

// DefaultBank returns the built-in onboarding question bank. Order matters:
// flag harvesting during scoring is last-write-wins in this declaration
// order.
func DefaultBank() []Question {
	return []Question{
		{
			Key:    "work_style",
			Prompt: "When you start something new, what do you do first?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "plan", Label: "Write a plan and break it into steps",
					Weights: map[domain.Trait]int{domain.TraitOrganized: 3, domain.TraitAnalytical: 1}},
				{ID: "research", Label: "Research until I understand it deeply",
					Weights: map[domain.Trait]int{domain.TraitAnalytical: 3, domain.TraitPractical: 1}},
				{ID: "prototype", Label: "Build something rough and iterate",
					Weights: map[domain.Trait]int{domain.TraitPractical: 3, domain.TraitCreative: 1}},
				{ID: "ask", Label: "Talk it through with people who've done it",
					Weights: map[domain.Trait]int{domain.TraitSocial: 3, domain.TraitEntrepreneurial: 1}},
			},
		},
		{
			Key:    "problem_solving",
			Prompt: "A project stalls. What's your instinct?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "data", Label: "Dig into the numbers to find the bottleneck",
					Weights: map[domain.Trait]int{domain.TraitAnalytical: 3}},
				{ID: "reframe", Label: "Reframe the problem from a new angle",
					Weights: map[domain.Trait]int{domain.TraitCreative: 3}},
				{ID: "ship", Label: "Cut scope and ship what works",
					Weights: map[domain.Trait]int{domain.TraitPractical: 2, domain.TraitEntrepreneurial: 2}},
				{ID: "process", Label: "Fix the process so it can't stall again",
					Weights: map[domain.Trait]int{domain.TraitOrganized: 3}},
			},
		},
		{
			Key:    "energy_source",
			Prompt: "What part of your work gives you the most energy?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "making", Label: "Making things with my hands or tools",
					Weights: map[domain.Trait]int{domain.TraitPractical: 3, domain.TraitCreative: 1}},
				{ID: "ideas", Label: "Chasing new ideas and possibilities",
					Weights: map[domain.Trait]int{domain.TraitCreative: 2, domain.TraitEntrepreneurial: 2}},
				{ID: "people", Label: "Helping people and building relationships",
					Weights: map[domain.Trait]int{domain.TraitSocial: 3}},
				{ID: "systems", Label: "Designing systems that run themselves",
					Weights: map[domain.Trait]int{domain.TraitOrganized: 2, domain.TraitAnalytical: 2}},
			},
		},
		{
			Key:    "growth_bet",
			Prompt: "Where would you bet your next six months?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "launch", Label: "Launching something of my own",
					Weights: map[domain.Trait]int{domain.TraitEntrepreneurial: 3, domain.TraitCreative: 1}},
				{ID: "mastery", Label: "Getting truly excellent at my craft",
					Weights: map[domain.Trait]int{domain.TraitPractical: 2, domain.TraitAnalytical: 2}},
				{ID: "network", Label: "Growing my network and audience",
					Weights: map[domain.Trait]int{domain.TraitSocial: 2, domain.TraitEntrepreneurial: 2}},
				{ID: "operations", Label: "Building repeatable operations",
					Weights: map[domain.Trait]int{domain.TraitOrganized: 3}},
			},
		},
		{
			Key:    "business_model",
			Prompt: "How do you (plan to) make money from your expertise?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "bm_content", Label: "Content and audience (courses, sponsorships)",
					Weights: map[domain.Trait]int{domain.TraitCreative: 2, domain.TraitSocial: 1},
					Flags:   OptionFlags{BusinessModel: domain.BusinessModelContent}},
				{ID: "bm_service", Label: "Services (consulting, coaching, freelancing)",
					Weights: map[domain.Trait]int{domain.TraitSocial: 2, domain.TraitPractical: 1},
					Flags:   OptionFlags{BusinessModel: domain.BusinessModelService}},
				{ID: "bm_product", Label: "Products (software, physical goods)",
					Weights: map[domain.Trait]int{domain.TraitEntrepreneurial: 2, domain.TraitPractical: 1},
					Flags:   OptionFlags{BusinessModel: domain.BusinessModelProduct}},
			},
		},
		{
			Key:    "audience",
			Prompt: "Who do you most want to reach?",
			Type:   QuestionChoice,
			Options: []Option{
				{ID: "aud_business", Label: "Businesses and professionals",
					Weights: map[domain.Trait]int{domain.TraitAnalytical: 1, domain.TraitEntrepreneurial: 1},
					Flags:   OptionFlags{Audience: domain.AudienceBusiness}},
				{ID: "aud_broad", Label: "A broad online audience",
					Weights: map[domain.Trait]int{domain.TraitSocial: 1, domain.TraitCreative: 1},
					Flags:   OptionFlags{Audience: domain.AudienceBroadOnline}},
				{ID: "aud_niche", Label: "A specific niche community",
					Weights: map[domain.Trait]int{domain.TraitPractical: 1, domain.TraitOrganized: 1},
					Flags:   OptionFlags{Audience: domain.AudienceNiche}},
			},
		},
		{
			Key:      KeyTechComfort,
			Prompt:   "How comfortable are you with technical topics?",
			Type:     QuestionSlider,
			Min:      1,
			Max:      5,
			MinLabel: "Prefer plain language",
			MaxLabel: "Fluent in jargon",
		},
		{
			Key:      KeyStructureFlex,
			Prompt:   "Do you prefer a fixed routine or flexibility?",
			Type:     QuestionSlider,
			Min:      1,
			Max:      5,
			MinLabel: "Fixed routine",
			MaxLabel: "Full flexibility",
		},
		{
			Key:      KeySoloTeam,
			Prompt:   "Do you do your best work solo or with a team?",
			Type:     QuestionSlider,
			Min:      1,
			Max:      5,
			MinLabel: "Solo",
			MaxLabel: "Team",
		},
	}
}
