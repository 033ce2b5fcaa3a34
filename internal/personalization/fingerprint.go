package personalization

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pulsr-app/pulsr/internal/domain"
)

// promptInput is the fixed field subset hashed into the prompt fingerprint.
// Canonical order is this struct's declaration order; json.Marshal emits
// struct fields in that order, so the digest never depends on map iteration
// or caller-side key order. Adding, removing or reordering a field here
// invalidates every stored fingerprint.
type promptInput struct {
	UserID               string `json:"userId"`
	Practical            int    `json:"practical"`
	Analytical           int    `json:"analytical"`
	Creative             int    `json:"creative"`
	Social               int    `json:"social"`
	Entrepreneurial      int    `json:"entrepreneurial"`
	Organized            int    `json:"organized"`
	BusinessModel        string `json:"businessModel"`
	Audience             string `json:"audience"`
	Interests            string `json:"interests"`
	PositioningStatement string `json:"positioningStatement"`
	TechComfort          int    `json:"techComfort"`
	StructureFlex        int    `json:"structureFlex"`
	SoloTeam             int    `json:"soloTeam"`
}

// Fingerprint returns the hex sha256 of the canonical serialization of the
// profile fields that feed prompt construction. It is the sole
// cache-invalidation key for the enrichment pipeline.
func Fingerprint(p *domain.Profile) string {
	in := promptInput{
		UserID:               p.UserID,
		Practical:            p.Practical,
		Analytical:           p.Analytical,
		Creative:             p.Creative,
		Social:               p.Social,
		Entrepreneurial:      p.Entrepreneurial,
		Organized:            p.Organized,
		BusinessModel:        p.BusinessModel,
		Audience:             p.Audience,
		Interests:            p.InterestText,
		PositioningStatement: p.PositioningStatement,
		TechComfort:          p.TechComfort,
		StructureFlex:        p.StructureFlex,
		SoloTeam:             p.SoloTeam,
	}

	// Marshal of a flat struct of strings and ints cannot fail.
	raw, _ := json.Marshal(in)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
