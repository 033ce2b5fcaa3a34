package personality

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pulsr-app/pulsr/internal/domain"
)

// Context carries the categorical and ordinal profile fields that shape the
// analysis beyond the raw trait totals.
type Context struct {
	BusinessModel string
	Audience      string
	TechComfort   int // 1-5, >=4 reads as technically fluent
	StructureFlex int // 1-5, <=2 reads as preferring fixed routine
	SoloTeam      int // 1-5, >=4 reads as team-oriented
}

// Analysis is the deterministic personality read derived from trait totals.
// It doubles as the offline fallback content source and as prompt input for
// the generation provider.
type Analysis struct {
	Label          string
	Primary        domain.Trait
	Secondary      domain.Trait
	PrimaryScore   int
	SecondaryScore int
	Tone           string
	// PostingFrequency is posts per week, either a fixed count ("3") or a
	// range ("3-4") when the structure preference leans flexible.
	PostingFrequency string
	Interests        []string
	Pillars          []domain.Pillar
	Strategy         domain.Strategy
	OptimalTimes     []string
}

// labelGapThreshold is the primary-minus-secondary score gap at or above
// which the label names the primary trait alone instead of a compound
// "primary-secondary" pair.
const labelGapThreshold = 3

// Classify is pure. Ranking sorts the six (trait, score) pairs descending by
// score; ties are broken by domain.TraitOrder so the result never depends on
// map iteration order.
func Classify(totals map[domain.Trait]int, ctx Context) Analysis {
	ranked := rankTraits(totals)
	primary, secondary := ranked[0], ranked[1]

	gap := totals[primary] - totals[secondary]
	compound := gap < labelGapThreshold
	label := string(primary)
	if compound {
		label = fmt.Sprintf("%s-%s", primary, secondary)
	}

	freq := postingFrequency(primary, ctx.StructureFlex)

	return Analysis{
		Label:            label,
		Primary:          primary,
		Secondary:        secondary,
		PrimaryScore:     totals[primary],
		SecondaryScore:   totals[secondary],
		Tone:             contentTone(primary, ctx),
		PostingFrequency: freq,
		Interests:        interests(primary, ctx),
		Pillars:          fallbackPillars(primary, secondary, compound, ctx),
		Strategy:         buildStrategy(primary, freq),
		OptimalTimes:     optimalTimes(primary, ctx.SoloTeam),
	}
}

func rankTraits(totals map[domain.Trait]int) [6]domain.Trait {
	ranked := domain.TraitOrder
	sort.SliceStable(ranked[:], func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	return ranked
}

func contentTone(primary domain.Trait, ctx Context) string {
	var b strings.Builder
	b.WriteString(toneByTrait[primary])
	if ctx.TechComfort >= 4 {
		b.WriteString(" with technical terminology")
	} else {
		b.WriteString(" and accessible")
	}
	if ctx.StructureFlex <= 2 {
		b.WriteString(", structured")
	} else {
		b.WriteString(", flexible")
	}
	return b.String()
}

func postingFrequency(primary domain.Trait, structureFlex int) string {
	base := frequencyByTrait[primary]
	if structureFlex <= 2 {
		return strconv.Itoa(base)
	}
	return fmt.Sprintf("%d-%d", base, base+1)
}

func interests(primary domain.Trait, ctx Context) []string {
	out := append([]string(nil), interestsByTrait[primary]...)

	switch ctx.BusinessModel {
	case domain.BusinessModelContent:
		out = append(out, "content creation", "storytelling", "engagement")
	case domain.BusinessModelService:
		out = append(out, "consulting", "coaching", "client services")
	}

	switch ctx.Audience {
	case domain.AudienceBusiness:
		out = append(out, "B2B", "companies", "professionals")
	case domain.AudienceBroadOnline:
		out = append(out, "general audience", "viral formats", "trends")
	}

	return out
}

// fallbackPillars returns the four template pillars for the label. A compound
// label takes the first two pillars of each half's template, primary half
// first. Business model and audience then rewrite the first pillar:
//
//   - service model: a client-success pillar replaces the first slot
//   - product model: a build-in-public pillar replaces the first slot
//   - business audience: the first description gains a B2B angle
//   - niche audience: the first description is aimed at the niche community
func fallbackPillars(primary, secondary domain.Trait, compound bool, ctx Context) []domain.Pillar {
	var pillars []domain.Pillar
	if compound {
		p := pillarsByTrait[primary]
		s := pillarsByTrait[secondary]
		pillars = []domain.Pillar{p[0], p[1], s[0], s[1]}
	} else {
		tpl := pillarsByTrait[primary]
		pillars = tpl[:]
	}

	switch ctx.BusinessModel {
	case domain.BusinessModelService:
		pillars[0] = domain.Pillar{Name: "Client Success", Description: "Results and lessons from client work"}
	case domain.BusinessModelProduct:
		pillars[0] = domain.Pillar{Name: "Product Journey", Description: "Building and improving the product in public"}
	}

	switch ctx.Audience {
	case domain.AudienceBusiness:
		pillars[0].Description += ", with a B2B angle"
	case domain.AudienceNiche:
		pillars[0].Description += ", aimed at your niche community"
	}

	return pillars
}

func buildStrategy(primary domain.Trait, freq string) domain.Strategy {
	tpl := strategyByTrait[primary]
	return domain.Strategy{
		Cadence:       freq + " posts per week",
		CallToActions: []string{tpl.Engagement, "Point readers to more on " + strings.ToLower(tpl.Focus)},
		ContentMix:    append([]domain.ContentMixEntry(nil), tpl.Mix...),
		KeyMetrics:    append([]string(nil), tpl.Metrics...),
	}
}

func optimalTimes(primary domain.Trait, soloTeam int) []string {
	if soloTeam >= 4 {
		return append([]string(nil), teamOptimalTimes...)
	}
	return append([]string(nil), timesByTrait[primary]...)
}
