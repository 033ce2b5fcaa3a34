package personality

import (
	"fmt"
	"testing"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalsWithDominant(dominant domain.Trait) map[domain.Trait]int {
	totals := map[domain.Trait]int{}
	for _, trait := range domain.TraitOrder {
		totals[trait] = 2
	}
	totals[dominant] = 10
	return totals
}

func TestClassify_SimpleLabelForEveryTrait(t *testing.T) {
	for _, trait := range domain.TraitOrder {
		t.Run(string(trait), func(t *testing.T) {
			a := Classify(totalsWithDominant(trait), Context{})

			assert.Equal(t, string(trait), a.Label)
			assert.Equal(t, trait, a.Primary)
			assert.Equal(t, 10, a.PrimaryScore)
			assert.Equal(t, 2, a.SecondaryScore)

			tpl := pillarsByTrait[trait]
			require.Len(t, a.Pillars, 4)
			assert.Equal(t, tpl[:], a.Pillars)
		})
	}
}

func TestClassify_CompoundLabelMixesPillars(t *testing.T) {
	totals := map[domain.Trait]int{
		domain.TraitAnalytical: 10,
		domain.TraitCreative:   8,
	}

	a := Classify(totals, Context{})

	assert.Equal(t, "analytical-creative", a.Label)
	require.Len(t, a.Pillars, 4)
	assert.Equal(t, pillarsByTrait[domain.TraitAnalytical][0], a.Pillars[0])
	assert.Equal(t, pillarsByTrait[domain.TraitAnalytical][1], a.Pillars[1])
	assert.Equal(t, pillarsByTrait[domain.TraitCreative][0], a.Pillars[2])
	assert.Equal(t, pillarsByTrait[domain.TraitCreative][1], a.Pillars[3])
}

func TestClassify_GapOfExactlyThreeIsSimple(t *testing.T) {
	totals := map[domain.Trait]int{
		domain.TraitSocial:   9,
		domain.TraitCreative: 6,
	}

	a := Classify(totals, Context{})
	assert.Equal(t, "social", a.Label)
}

func TestClassify_TiesBreakByDeclaredTraitOrder(t *testing.T) {
	totals := map[domain.Trait]int{}
	for _, trait := range domain.TraitOrder {
		totals[trait] = 5
	}

	a := Classify(totals, Context{})

	assert.Equal(t, domain.TraitOrder[0], a.Primary)
	assert.Equal(t, domain.TraitOrder[1], a.Secondary)
	assert.Equal(t, fmt.Sprintf("%s-%s", domain.TraitOrder[0], domain.TraitOrder[1]), a.Label)
}

func TestClassify_ToneSuffixes(t *testing.T) {
	totals := totalsWithDominant(domain.TraitAnalytical)

	cases := []struct {
		name string
		ctx  Context
		want string
	}{
		{"technical structured", Context{TechComfort: 5, StructureFlex: 1},
			"Professional and data-driven with technical terminology, structured"},
		{"technical flexible", Context{TechComfort: 4, StructureFlex: 3},
			"Professional and data-driven with technical terminology, flexible"},
		{"accessible structured", Context{TechComfort: 2, StructureFlex: 2},
			"Professional and data-driven and accessible, structured"},
		{"accessible flexible", Context{TechComfort: 1, StructureFlex: 5},
			"Professional and data-driven and accessible, flexible"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(totals, tc.ctx).Tone)
		})
	}
}

func TestClassify_FrequencyWidensWhenFlexible(t *testing.T) {
	totals := totalsWithDominant(domain.TraitEntrepreneurial)

	fixed := Classify(totals, Context{StructureFlex: 2})
	assert.Equal(t, "5", fixed.PostingFrequency)
	assert.Equal(t, "5 posts per week", fixed.Strategy.Cadence)

	flexible := Classify(totals, Context{StructureFlex: 4})
	assert.Equal(t, "5-6", flexible.PostingFrequency)
	assert.Equal(t, "5-6 posts per week", flexible.Strategy.Cadence)
}

func TestClassify_BusinessModelRewritesFirstPillar(t *testing.T) {
	totals := totalsWithDominant(domain.TraitCreative)

	service := Classify(totals, Context{BusinessModel: domain.BusinessModelService})
	assert.Equal(t, "Client Success", service.Pillars[0].Name)

	product := Classify(totals, Context{BusinessModel: domain.BusinessModelProduct})
	assert.Equal(t, "Product Journey", product.Pillars[0].Name)

	content := Classify(totals, Context{BusinessModel: domain.BusinessModelContent})
	assert.Equal(t, pillarsByTrait[domain.TraitCreative][0].Name, content.Pillars[0].Name)

	// Slots 2-4 are untouched either way.
	assert.Equal(t, pillarsByTrait[domain.TraitCreative][1], service.Pillars[1])
}

func TestClassify_AudienceAdjustsFirstPillarDescription(t *testing.T) {
	totals := totalsWithDominant(domain.TraitOrganized)

	business := Classify(totals, Context{Audience: domain.AudienceBusiness})
	assert.Contains(t, business.Pillars[0].Description, "B2B angle")

	niche := Classify(totals, Context{Audience: domain.AudienceNiche})
	assert.Contains(t, niche.Pillars[0].Description, "niche community")
}

func TestClassify_InterestExtras(t *testing.T) {
	totals := totalsWithDominant(domain.TraitSocial)

	a := Classify(totals, Context{
		BusinessModel: domain.BusinessModelContent,
		Audience:      domain.AudienceBroadOnline,
	})

	base := interestsByTrait[domain.TraitSocial]
	require.Greater(t, len(a.Interests), len(base))
	assert.Equal(t, base, a.Interests[:len(base)])
	assert.Contains(t, a.Interests, "storytelling")
	assert.Contains(t, a.Interests, "trends")
}

func TestClassify_OptimalTimes(t *testing.T) {
	totals := totalsWithDominant(domain.TraitCreative)

	solo := Classify(totals, Context{SoloTeam: 2})
	assert.Equal(t, timesByTrait[domain.TraitCreative], solo.OptimalTimes)

	team := Classify(totals, Context{SoloTeam: 4})
	assert.Equal(t, teamOptimalTimes, team.OptimalTimes)
}

func TestClassify_RankedScenario(t *testing.T) {
	totals := map[domain.Trait]int{
		domain.TraitAnalytical:      18,
		domain.TraitEntrepreneurial: 15,
		domain.TraitPractical:       12,
		domain.TraitSocial:          11,
		domain.TraitCreative:        9,
		domain.TraitOrganized:       7,
	}

	a := Classify(totals, Context{})

	assert.Equal(t, domain.TraitAnalytical, a.Primary)
	assert.Equal(t, domain.TraitEntrepreneurial, a.Secondary)
	assert.Equal(t, "analytical", a.Label)
	assert.Equal(t, 18, a.PrimaryScore)
	assert.Equal(t, 15, a.SecondaryScore)
	wantPillars := pillarsByTrait[domain.TraitAnalytical]
	assert.Equal(t, wantPillars[:], a.Pillars)
}

func TestTables_CoverEveryTrait(t *testing.T) {
	for _, trait := range domain.TraitOrder {
		assert.NotEmpty(t, toneByTrait[trait], "tone for %s", trait)
		assert.Positive(t, frequencyByTrait[trait], "frequency for %s", trait)
		assert.NotEmpty(t, interestsByTrait[trait], "interests for %s", trait)
		assert.Len(t, timesByTrait[trait], 3, "times for %s", trait)

		tpl, ok := pillarsByTrait[trait]
		require.True(t, ok, "pillars for %s", trait)
		for i, p := range tpl {
			assert.NotEmpty(t, p.Name, "pillar %d name for %s", i, trait)
			assert.NotEmpty(t, p.Description, "pillar %d description for %s", i, trait)
		}

		strat, ok := strategyByTrait[trait]
		require.True(t, ok, "strategy for %s", trait)
		assert.NotEmpty(t, strat.Mix)
		assert.NotEmpty(t, strat.Metrics)
	}
}
