package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mosaic-mind/internal/domain"
	"mosaic-mind/internal/llm"
)

// EnrichmentService convierte puntajes numéricos en rasgos,
// descripciones y un insight narrativo usando el LLM. Toda falla del
// proveedor se recupera localmente con contenido determinístico; nunca
// propaga errores al pipeline.
type EnrichmentService struct {
	traitsClient   llm.LLMClient
	insightsClient llm.LLMClient
	logger         *zap.Logger
}

// NewEnrichmentService recibe dos clientes porque el insight narrativo
// usa un modelo más capaz que la generación corta de rasgos.
func NewEnrichmentService(traitsClient, insightsClient llm.LLMClient, logger *zap.Logger) *EnrichmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichmentService{
		traitsClient:   traitsClient,
		insightsClient: insightsClient,
		logger:         logger,
	}
}

const traitSystemPrompt = `You are a personality psychology expert. Generate 3-4 key traits and a concise description (1-2 sentences) for a personality category based on the score. Be specific and insightful.`

const insightSystemPrompt = `You are MosaicMind AI, a personality assessment expert. Provide insightful, nuanced, and personalized analysis of personality assessment results. Focus on strengths, growth opportunities, and practical insights. Be professional yet engaging.`

const (
	insightUnavailable = "AI analysis temporarily unavailable. Please try again later."
	insightEmpty       = "Unable to generate AI analysis at this time."
)

// DescribeCategory pide rasgos y descripción para una categoría.
// Un solo intento, sin retries: ante cualquier falla cae a la tabla
// fija por (categoría, tier). Seguro para llamadas concurrentes.
func (s *EnrichmentService) DescribeCategory(ctx context.Context, category domain.PersonalityCategory, score int, dimensions map[string]int) TraitAnalysis {
	reply, err := s.traitsClient.Generate(ctx, traitSystemPrompt, buildTraitPrompt(category, score, dimensions))
	if err != nil {
		s.logger.Warn("trait enrichment failed, using fallback",
			zap.String("category", string(category)),
			zap.Int("score", score),
			zap.Error(err),
		)
		return FallbackAnalysis(category, score)
	}
	return ParseTraitReply(reply)
}

// SummarizeProfile pide el análisis narrativo sobre el perfil completo.
// Nunca devuelve string vacío: falla de llamada produce el texto
// estático de no-disponibilidad.
func (s *EnrichmentService) SummarizeProfile(ctx context.Context, scores []domain.PersonalityScore, responses []domain.UserResponse) string {
	reply, err := s.insightsClient.Generate(ctx, insightSystemPrompt, buildAnalysisPrompt(scores, responses))
	if err != nil {
		s.logger.Warn("profile insight enrichment failed", zap.Error(err))
		return insightUnavailable
	}
	if strings.TrimSpace(reply) == "" {
		return insightEmpty
	}
	return reply
}

func buildTraitPrompt(category domain.PersonalityCategory, score int, dimensions map[string]int) string {
	dimsJSON, _ := json.Marshal(dimensions)
	return fmt.Sprintf(`Generate personality traits and description for:
- Category: %s
- Score: %d/100
- Dimension Scores: %s

Score ranges:
- 70-100: High expression of category traits
- 30-69: Moderate/balanced expression
- 0-29: Low expression

Provide response in this exact format:
TRAITS: trait1, trait2, trait3, trait4
DESCRIPTION: 1-2 sentence description focusing on behavioral patterns and tendencies.

Be specific to the %s domain and make it psychologically accurate.`, category, score, dimsJSON, category)
}

func buildAnalysisPrompt(scores []domain.PersonalityScore, responses []domain.UserResponse) string {
	var b strings.Builder
	b.WriteString("As a personality assessment expert, analyze this MosaicMind profile:\n\n")

	b.WriteString("PERSONALITY SCORES:\n")
	for _, s := range scores {
		fmt.Fprintf(&b, "- %s: %d/100\n", s.Category, s.Score)
	}

	b.WriteString("\nRESPONSE PATTERNS:\n")
	sample := responses
	if len(sample) > 5 {
		sample = sample[:5]
	}
	for _, r := range sample {
		fmt.Fprintf(&b, "- Question: %s, Score: %d/7\n", r.QuestionID, r.Score)
	}

	b.WriteString(`
Please provide:
1. OVERALL PATTERN ANALYSIS: Identify the dominant personality pattern and key strengths
2. DIMENSION INTERPLAY: How different traits might interact and complement each other
3. PRACTICAL INSIGHTS: Real-world implications for work, relationships, and personal growth
4. GROWTH OPPORTUNITIES: Areas for development based on the profile
5. UNIQUE MOSAIC: What makes this personality pattern distinctive

Keep the analysis professional, insightful, and actionable. Focus on the unique combination of scores rather than treating each category in isolation.
`)
	return b.String()
}
