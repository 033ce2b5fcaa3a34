package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/llm"
	"github.com/pulsr-app/pulsr/internal/personality"
)

// PillarService generates the content-pillars enrichment for a profile.
type PillarService interface {
	// Generate produces validated content for the profile. The second return
	// is the raw provider text, kept for diagnostics when validation fails.
	// With generation disabled it returns deterministic content derived from
	// the analysis and never errors.
	Generate(ctx context.Context, profile *domain.Profile, analysis personality.Analysis) (*GeneratedContent, string, error)
}

type pillarService struct {
	cfg    llm.LLMConfig
	client llm.LLMClient
}

// NewPillarService creates a PillarService backed by a generation client.
// The client may be nil when cfg.Enabled is false.
func NewPillarService(cfg llm.LLMConfig, client llm.LLMClient) PillarService {
	return &pillarService{cfg: cfg, client: client}
}

// promptProfile is the creator description embedded in the user prompt.
type promptProfile struct {
	Traits               map[domain.Trait]int `json:"traits"`
	PersonalityLabel     string               `json:"personalityLabel"`
	Tone                 string               `json:"suggestedTone"`
	BusinessModel        string               `json:"businessModel,omitempty"`
	Audience             string               `json:"audience,omitempty"`
	TechComfort          int                  `json:"techComfort"`
	StructureFlex        int                  `json:"structureFlex"`
	SoloTeam             int                  `json:"soloTeam"`
	Interests            []string             `json:"interests,omitempty"`
	InterestText         string               `json:"interestText,omitempty"`
	PositioningStatement string               `json:"positioningStatement,omitempty"`
}

func (s *pillarService) Generate(ctx context.Context, profile *domain.Profile, analysis personality.Analysis) (*GeneratedContent, string, error) {
	if !s.cfg.Enabled {
		return DeterministicContent(analysis), "", nil
	}

	prompt := promptProfile{
		Traits:               profile.Totals(),
		PersonalityLabel:     analysis.Label,
		Tone:                 analysis.Tone,
		BusinessModel:        profile.BusinessModel,
		Audience:             profile.Audience,
		TechComfort:          profile.TechComfort,
		StructureFlex:        profile.StructureFlex,
		SoloTeam:             profile.SoloTeam,
		Interests:            analysis.Interests,
		InterestText:         profile.InterestText,
		PositioningStatement: profile.PositioningStatement,
	}
	promptJSON, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshaling prompt: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPillars,
		SystemPrompt: pillarsSystemPrompt,
		UserPrompt:   "Here is the creator profile:\n\n" + string(promptJSON),
	})
	if err != nil {
		return nil, "", err
	}

	content, err := llm.ExtractJSON[GeneratedContent](resp.Text, ValidateGenerated)
	if err != nil {
		return nil, resp.Text, err
	}

	if content.Version == "" {
		content.Version = AIVersion
	}
	return &content, resp.Text, nil
}
