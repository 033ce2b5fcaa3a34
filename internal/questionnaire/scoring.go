package questionnaire

import "github.com/pulsr-app/pulsr/internal/domain"

// Answer is one response keyed by question. Choice questions set OptionID;
// slider questions set Level.
type Answer struct {
	OptionID string
	Level    int
}

// Answers maps question key to the chosen answer.
type Answers map[string]Answer

// Result holds the deterministic output of scoring a questionnaire response.
type Result struct {
	Totals        map[domain.Trait]int
	BusinessModel string
	Audience      string
	Sliders       map[string]int
}

// TechComfort returns the tech-comfort slider value, 0 when unanswered.
func (r Result) TechComfort() int { return r.Sliders[KeyTechComfort] }

// StructureFlex returns the structure-preference slider value, 0 when unanswered.
func (r Result) StructureFlex() int { return r.Sliders[KeyStructureFlex] }

// SoloTeam returns the team-preference slider value, 0 when unanswered.
func (r Result) SoloTeam() int { return r.Sliders[KeySoloTeam] }

// Score walks the question bank in its given order and accumulates trait
// weights from each answered choice question. Unanswered questions and
// unknown option ids contribute nothing; there is no error path.
//
// Flag harvesting is last-write-wins in bank order: if two selected options
// both declare a business model, the later question in the bank wins. This
// follows declaration order, not answer insertion order, which is surprising
// but intentional.
func Score(answers Answers, bank []Question) Result {
	res := Result{
		Totals:  make(map[domain.Trait]int, len(domain.TraitOrder)),
		Sliders: make(map[string]int),
	}
	for _, trait := range domain.TraitOrder {
		res.Totals[trait] = 0
	}

	for _, q := range bank {
		ans, ok := answers[q.Key]
		if !ok {
			continue
		}

		switch q.Type {
		case QuestionChoice:
			opt := findOption(q.Options, ans.OptionID)
			if opt == nil {
				continue
			}
			for trait, w := range opt.Weights {
				res.Totals[trait] += w
			}
			if opt.Flags.BusinessModel != "" {
				res.BusinessModel = opt.Flags.BusinessModel
			}
			if opt.Flags.Audience != "" {
				res.Audience = opt.Flags.Audience
			}
		case QuestionSlider:
			level := ans.Level
			if level < q.Min {
				level = q.Min
			}
			if level > q.Max {
				level = q.Max
			}
			res.Sliders[q.Key] = level
		}
	}

	return res
}

func findOption(options []Option, id string) *Option {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}
	return nil
}
