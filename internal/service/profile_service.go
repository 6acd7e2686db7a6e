package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mosaic-mind/internal/domain"
)

// ErrEmptyCatalog indica un catálogo malformado; es la única falla del
// pipeline que llega al caller (no se devuelve perfil parcial).
var ErrEmptyCatalog = errors.New("question catalog is empty")

// ProfileService orquesta el pipeline completo de scoring:
// agregación → normalización → enriquecimiento concurrente por
// categoría → insight narrativo → complejidad → perfil inmutable.
type ProfileService struct {
	enrichment *EnrichmentService
	questions  []domain.Question
	logger     *zap.Logger
	now        func() time.Time
}

func NewProfileService(enrichment *EnrichmentService, questions []domain.Question, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		enrichment: enrichment,
		questions:  questions,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GenerateProfile corre el pipeline sobre una lista de respuestas.
// Es idempotente para un mismo input con un cliente determinístico:
// mismos puntajes, dimensiones y complejidad (timestamp e id aparte).
// El perfil devuelto está siempre completamente poblado aunque todo el
// enriquecimiento falle.
func (s *ProfileService) GenerateProfile(ctx context.Context, responses []domain.UserResponse) (domain.MosaicProfile, error) {
	if len(s.questions) == 0 {
		return domain.MosaicProfile{}, ErrEmptyCatalog
	}

	aggregates := AggregateResponses(s.questions, responses)
	scores := make([]domain.PersonalityScore, len(aggregates))

	// Fan-out: una llamada de enriquecimiento por categoría. Cada
	// goroutine escribe solo su índice, no hay estado compartido.
	g, gctx := errgroup.WithContext(ctx)
	for i, agg := range aggregates {
		score, dims := NormalizeCategory(agg)
		g.Go(func() error {
			analysis := s.enrichment.DescribeCategory(gctx, agg.Category, score, dims)
			scores[i] = domain.PersonalityScore{
				Category:    agg.Category,
				Score:       score,
				Traits:      analysis.Traits,
				Description: analysis.Description,
				Dimensions:  dims,
			}
			return nil
		})
	}
	// DescribeCategory nunca devuelve error; Wait solo sincroniza el join.
	_ = g.Wait()

	insights := s.enrichment.SummarizeProfile(ctx, scores, responses)

	profile := domain.MosaicProfile{
		ID:            uuid.NewString(),
		Scores:        scores,
		Visualization: BuildVisualization(scores),
		AIInsights:    insights,
		GeneratedAt:   s.now(),
	}

	s.logger.Info("profile generated",
		zap.String("profile_id", profile.ID),
		zap.Int("responses", len(responses)),
		zap.Int("complexity", profile.Visualization.Complexity),
	)
	return profile, nil
}

// BuildVisualization arma la metadata del gráfico radial: un punto por
// categoría con su desglose de dimensiones y la complejidad global.
func BuildVisualization(scores []domain.PersonalityScore) domain.Visualization {
	data := make([]domain.VisualizationPoint, 0, len(scores))
	for _, s := range scores {
		dims := s.Dimensions
		if dims == nil {
			dims = map[string]int{}
		}
		data = append(data, domain.VisualizationPoint{
			Category:   s.Category,
			Score:      s.Score,
			FullMark:   100,
			Dimensions: dims,
		})
	}
	return domain.Visualization{
		Type:       "radial",
		Data:       data,
		Complexity: PatternComplexity(scores),
	}
}
