package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pulsr-app/pulsr/internal/domain"
	"github.com/pulsr-app/pulsr/internal/llm"
	"github.com/pulsr-app/pulsr/internal/personality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		UserID:        "user-1",
		Analytical:    18,
		Practical:     10,
		BusinessModel: domain.BusinessModelService,
		Audience:      domain.AudienceBusiness,
		TechComfort:   4,
		StructureFlex: 2,
	}
}

func testAnalysis(p *domain.Profile) personality.Analysis {
	return personality.Classify(p.Totals(), personality.Context{
		BusinessModel: p.BusinessModel,
		Audience:      p.Audience,
		TechComfort:   p.TechComfort,
		StructureFlex: p.StructureFlex,
		SoloTeam:      p.SoloTeam,
	})
}

func validGenerated() GeneratedContent {
	return GeneratedContent{
		Version: AIVersion,
		Summary: "You are an analytical creator.",
		Pillars: []domain.Pillar{
			{Name: "A", Description: "a"}, {Name: "B", Description: "b"},
			{Name: "C", Description: "c"}, {Name: "D", Description: "d"},
		},
		Strategy: &domain.Strategy{Cadence: "3 posts per week"},
	}
}

func fakeProvider(t *testing.T, reply string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		resp := map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func enabledConfig(endpoint string) llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

func TestGenerate_ValidProviderOutput(t *testing.T) {
	payload, err := json.Marshal(validGenerated())
	require.NoError(t, err)

	srv := fakeProvider(t, "```json\n"+string(payload)+"\n```")
	defer srv.Close()

	cfg := enabledConfig(srv.URL)
	svc := NewPillarService(cfg, llm.NewChatClient(cfg, nil))

	p := testProfile()
	content, raw, err := svc.Generate(context.Background(), p, testAnalysis(p))

	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, AIVersion, content.Version)
	require.Len(t, content.Pillars, 4)
	assert.Equal(t, "3 posts per week", content.Strategy.Cadence)
}

func TestGenerate_ProseResponseIsInvalidOutputWithRawRetained(t *testing.T) {
	srv := fakeProvider(t, "Sorry, I cannot produce structured output today.")
	defer srv.Close()

	cfg := enabledConfig(srv.URL)
	svc := NewPillarService(cfg, llm.NewChatClient(cfg, nil))

	p := testProfile()
	content, raw, err := svc.Generate(context.Background(), p, testAnalysis(p))

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.Nil(t, content)
	assert.Contains(t, raw, "Sorry")
}

func TestGenerate_TooFewPillarsFailsValidation(t *testing.T) {
	bad := validGenerated()
	bad.Pillars = bad.Pillars[:3]
	payload, err := json.Marshal(bad)
	require.NoError(t, err)

	srv := fakeProvider(t, string(payload))
	defer srv.Close()

	cfg := enabledConfig(srv.URL)
	svc := NewPillarService(cfg, llm.NewChatClient(cfg, nil))

	p := testProfile()
	_, raw, err := svc.Generate(context.Background(), p, testAnalysis(p))

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
	assert.NotEmpty(t, raw)
}

func TestGenerate_TimeoutSurfacesErrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := enabledConfig(srv.URL)
	cfg.Tasks[llm.TaskPillars] = llm.TaskConfig{Temperature: 0.2, MaxTokens: 800, TimeoutMs: 50}
	svc := NewPillarService(cfg, llm.NewChatClient(cfg, nil))

	p := testProfile()
	_, _, err := svc.Generate(context.Background(), p, testAnalysis(p))

	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestGenerate_DisabledFallsBackToDeterministicContent(t *testing.T) {
	cfg := llm.DefaultConfig() // disabled
	svc := NewPillarService(cfg, nil)

	p := testProfile()
	analysis := testAnalysis(p)
	content, raw, err := svc.Generate(context.Background(), p, analysis)

	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.Equal(t, AIVersion, content.Version)
	require.NoError(t, ValidateGenerated(*content))
	require.Len(t, content.Pillars, 4)
	assert.Equal(t, analysis.Pillars[0].Name, content.Pillars[0].Name)
	assert.Equal(t, analysis.Strategy.Cadence, content.Strategy.Cadence)
}

func TestValidateGenerated(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*GeneratedContent)
		wantErr bool
	}{
		{"valid", func(c *GeneratedContent) {}, false},
		{"five pillars ok", func(c *GeneratedContent) {
			c.Pillars = append(c.Pillars, domain.Pillar{Name: "E"})
		}, false},
		{"three pillars", func(c *GeneratedContent) { c.Pillars = c.Pillars[:3] }, true},
		{"unnamed pillar", func(c *GeneratedContent) { c.Pillars[2].Name = "" }, true},
		{"missing strategy", func(c *GeneratedContent) { c.Strategy = nil }, true},
		{"empty cadence", func(c *GeneratedContent) { c.Strategy.Cadence = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validGenerated()
			tc.mutate(&c)
			err := ValidateGenerated(c)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
