package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"mosaic-mind/internal/domain"
	"mosaic-mind/internal/llm"
)

func TestDescribeCategoryParsesReply(t *testing.T) {
	client := &llm.MockClient{Response: "TRAITS: Outgoing, Engaging, Energetic\nDESCRIPTION: You draw energy from people."}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	got := svc.DescribeCategory(context.Background(), domain.CategorySocial, 82, map[string]int{"Extraversion": 90})
	if got.Traits[0] != "Outgoing" {
		t.Fatalf("expected parsed traits, got %v", got.Traits)
	}
	if got.Description != "You draw energy from people." {
		t.Fatalf("unexpected description: %q", got.Description)
	}
}

func TestDescribeCategoryFallsBackOnError(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("quota exceeded")}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	got := svc.DescribeCategory(context.Background(), domain.CategoryDrive, 90, nil)
	want := FallbackAnalysis(domain.CategoryDrive, 90)
	if got.Traits[0] != want.Traits[0] || got.Description != want.Description {
		t.Fatalf("expected tier fallback %+v, got %+v", want, got)
	}
}

func TestDescribeCategoryPromptCarriesTierFramingAndScores(t *testing.T) {
	var seenSystem, seenUser string
	client := &llm.MockClient{
		GenerateFn: func(ctx context.Context, system, user string) (string, error) {
			seenSystem, seenUser = system, user
			return "TRAITS: A, B, C\nDESCRIPTION: D.", nil
		},
	}
	svc := NewEnrichmentService(client, client, zap.NewNop())
	svc.DescribeCategory(context.Background(), domain.CategoryIntellect, 64, map[string]int{"Pragmatism": 40})

	if !strings.Contains(seenSystem, "personality psychology expert") {
		t.Fatalf("unexpected system prompt: %q", seenSystem)
	}
	for _, fragment := range []string{"Category: Intellect", "Score: 64/100", "70-100: High expression", "Pragmatism", "TRAITS:"} {
		if !strings.Contains(seenUser, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, seenUser)
		}
	}
}

func TestSummarizeProfileHappyPath(t *testing.T) {
	client := &llm.MockClient{Response: "A thoughtful narrative analysis."}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	got := svc.SummarizeProfile(context.Background(), scoresOf(70, 30), nil)
	if got != "A thoughtful narrative analysis." {
		t.Fatalf("unexpected insight: %q", got)
	}
}

func TestSummarizeProfileFailureReturnsStaticText(t *testing.T) {
	client := &llm.MockClient{Err: errors.New("network down")}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	got := svc.SummarizeProfile(context.Background(), scoresOf(70, 30), nil)
	if got != insightUnavailable {
		t.Fatalf("expected unavailable text, got %q", got)
	}
}

func TestSummarizeProfileEmptyReplyReturnsStaticText(t *testing.T) {
	client := &llm.MockClient{Response: "   "}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	if got := svc.SummarizeProfile(context.Background(), nil, nil); got != insightEmpty {
		t.Fatalf("expected empty-reply text, got %q", got)
	}
}

func TestSummarizeProfilePromptTruncatesResponsesToFive(t *testing.T) {
	var seenUser string
	client := &llm.MockClient{
		GenerateFn: func(ctx context.Context, system, user string) (string, error) {
			seenUser = user
			return "ok", nil
		},
	}
	svc := NewEnrichmentService(client, client, zap.NewNop())

	responses := []domain.UserResponse{
		{QuestionID: "q1", Score: 1}, {QuestionID: "q2", Score: 2},
		{QuestionID: "q3", Score: 3}, {QuestionID: "q4", Score: 4},
		{QuestionID: "q5", Score: 5}, {QuestionID: "q6", Score: 6},
	}
	svc.SummarizeProfile(context.Background(), nil, responses)

	if !strings.Contains(seenUser, "Question: q5") {
		t.Fatalf("prompt missing fifth response:\n%s", seenUser)
	}
	if strings.Contains(seenUser, "Question: q6") {
		t.Fatalf("prompt should only include the first five responses:\n%s", seenUser)
	}
}
