package share

import (
	"strings"
	"testing"

	"mosaic-mind/internal/domain"
)

func sampleProfile() domain.MosaicProfile {
	return domain.MosaicProfile{
		ID: "p-1",
		Scores: []domain.PersonalityScore{
			{Category: domain.CategoryEmotion, Score: 80},
			{Category: domain.CategoryIntellect, Score: 45},
			{Category: domain.CategorySocial, Score: 10},
		},
		Visualization: domain.Visualization{Type: "radial", Complexity: 42},
	}
}

func TestRenderCardShape(t *testing.T) {
	svg := RenderCard(sampleProfile())

	if !strings.HasPrefix(svg, `<svg width="1200" height="800"`) {
		t.Fatalf("unexpected svg header: %q", svg[:60])
	}
	for _, fragment := range []string{
		"MosaicMind",
		"Personality Assessment Results",
		"Pattern Complexity: 42/100",
		"mosaicmind.vercel.app",
		"<polygon",
		"EMOTION",
		"INTELLECT",
		"SOCIAL",
	} {
		if !strings.Contains(svg, fragment) {
			t.Fatalf("svg missing %q", fragment)
		}
	}
}

func TestRenderCardTierColors(t *testing.T) {
	svg := RenderCard(sampleProfile())
	// verde para 80, azul para 45, rojo para 10
	for _, color := range []string{"#10b981", "#3b82f6", "#ef4444"} {
		if !strings.Contains(svg, `fill="`+color+`"`) {
			t.Fatalf("svg missing data point color %s", color)
		}
	}
}

func TestRenderCardDeterministic(t *testing.T) {
	profile := sampleProfile()
	if RenderCard(profile) != RenderCard(profile) {
		t.Fatalf("share card must be deterministic for the same profile")
	}
}

func TestRenderCardEmptyScores(t *testing.T) {
	svg := RenderCard(domain.MosaicProfile{})
	if !strings.Contains(svg, "Pattern Complexity: 0/100") {
		t.Fatalf("expected zero complexity footer")
	}
	if strings.Contains(svg, "<polygon") {
		t.Fatalf("no polygon expected without scores")
	}
}
