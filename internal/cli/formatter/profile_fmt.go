package formatter

import (
	"fmt"
	"strings"

	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/pulsr-app/pulsr/internal/domain"
)

// FormatProfile formats a profile view into a styled CLI dashboard string.
func FormatProfile(view *contract.ProfileView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Personality:"), LabelBadge(view.Label)))
	if view.Version != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Version:"), StyleFg.Render(view.Version)))
	}
	if view.GeneratedAt != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Generated:"), StyleFg.Render(HumanTimestamp(*view.GeneratedAt))))
	}

	if view.PersonaSummary != "" {
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(view.PersonaSummary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Content Pillars"))
	b.WriteString("\n\n")
	if len(view.Pillars) == 0 {
		b.WriteString(Dim("No pillars yet. Run `pulsr regenerate` after onboarding."))
		b.WriteString("\n")
	} else {
		for i, p := range view.Pillars {
			b.WriteString(formatPillar(i+1, p))
			if i < len(view.Pillars)-1 {
				b.WriteString("\n")
			}
		}
	}

	if view.Strategy != nil {
		b.WriteString("\n")
		b.WriteString(formatStrategy(view.Strategy))
	}

	return RenderBox("Content Profile", b.String())
}

func formatPillar(num int, p domain.Pillar) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(fmt.Sprintf("%d.", num)), StyleGreen.Render(p.Name)))
	if p.Description != "" {
		b.WriteString(fmt.Sprintf("   %s\n", StyleFg.Render(p.Description)))
	}
	if p.Tone != "" {
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Tone:"), Dim(p.Tone)))
	}
	if p.Rationale != "" {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("WHY:"), Dim(p.Rationale)))
	}
	for _, idea := range p.PostingIdeas {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleBlue.Render("•"), StyleFg.Render(idea)))
	}

	return b.String()
}

func formatStrategy(s *domain.Strategy) string {
	var b strings.Builder

	b.WriteString(Header("Strategy"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Cadence:"), StyleFg.Render(s.Cadence)))

	if len(s.ContentMix) > 0 {
		parts := make([]string, 0, len(s.ContentMix))
		for _, m := range s.ContentMix {
			parts = append(parts, fmt.Sprintf("%s %d%%", m.Type, m.Percentage))
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Mix:"), StyleFg.Render(strings.Join(parts, ", "))))
	}
	for _, cta := range s.CallToActions {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleBlue.Render("CTA:"), StyleFg.Render(cta)))
	}
	if len(s.KeyMetrics) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Metrics:"), Dim(strings.Join(s.KeyMetrics, ", "))))
	}

	return b.String()
}

// FormatRegenerateResult formats the outcome of a regeneration run.
func FormatRegenerateResult(resp *contract.RegenerateResponse) string {
	var statusLine string
	switch resp.Status {
	case contract.StatusUpToDate:
		statusLine = StyleBlue.Render("● UP TO DATE") + Dim(" — answers unchanged since last run")
	case contract.StatusRegenerated:
		statusLine = StyleGreen.Render("● REGENERATED")
	default:
		statusLine = StyleDim.Render(string(resp.Status))
	}

	return statusLine + "\n\n" + FormatProfile(&resp.Profile)
}

// FormatAuditTrail formats recent regeneration events, newest first.
func FormatAuditTrail(userID string, events []domain.AuditEvent) string {
	var b strings.Builder

	if len(events) == 0 {
		b.WriteString(Dim("No regeneration activity yet."))
		b.WriteString("\n")
	}
	for i, ev := range events {
		b.WriteString(fmt.Sprintf("%s  %s\n", OutcomeIndicator(ev.Outcome), StyleFg.Render(ev.Message)))
		b.WriteString(fmt.Sprintf("   %s %s   %s %s\n",
			Dim("When:"), Dim(HumanTimestamp(ev.CreatedAt)),
			Dim("Fingerprint:"), TruncFingerprint(ev.Fingerprint),
		))
		if i < len(events)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox(fmt.Sprintf("Audit Trail — %s", userID), b.String())
}
