package testutil

import "github.com/pulsr-app/pulsr/internal/domain"

// ProfileFixture returns a scored profile ready for enrichment tests. The
// trait totals make analytical the clear primary with entrepreneurial second.
func ProfileFixture(userID string) *domain.Profile {
	return &domain.Profile{
		UserID:               userID,
		FirstName:            "Jamie",
		Practical:            12,
		Analytical:           18,
		Creative:             9,
		Social:               11,
		Entrepreneurial:      15,
		Organized:            7,
		BusinessModel:        domain.BusinessModelService,
		Audience:             domain.AudienceBusiness,
		TechComfort:          4,
		StructureFlex:        2,
		SoloTeam:             1,
		InterestText:         "developer tools, writing",
		PositioningStatement: "I help teams ship faster",
		RegenRequired:        true,
	}
}
