package service

import (
	"math"

	"mosaic-mind/internal/domain"
)

// CategoryAggregate agrupa los puntajes ajustados de una categoría,
// particionados además por dimensión. Es un dato transitorio del
// pipeline: se construye por corrida y se descarta tras normalizar.
type CategoryAggregate struct {
	Category   domain.PersonalityCategory
	Scores     []int
	Dimensions map[string][]int
}

// AggregateResponses agrupa las respuestas crudas por categoría y por
// (categoría, dimensión), aplicando reverse-scoring donde corresponde.
// Respuestas con questionId desconocido se descartan en silencio.
// El orden de salida es el orden de primera aparición en el catálogo.
func AggregateResponses(questions []domain.Question, responses []domain.UserResponse) []CategoryAggregate {
	index := make(map[string]domain.Question, len(questions))
	byCategory := make(map[domain.PersonalityCategory]*CategoryAggregate, len(questions))
	var order []domain.PersonalityCategory

	for _, q := range questions {
		if _, ok := byCategory[q.Category]; !ok {
			byCategory[q.Category] = &CategoryAggregate{
				Category:   q.Category,
				Dimensions: make(map[string][]int),
			}
			order = append(order, q.Category)
		}
		agg := byCategory[q.Category]
		if _, ok := agg.Dimensions[q.Dimension]; !ok {
			// Toda dimensión declarada existe en el agregado aunque
			// nadie la haya respondido.
			agg.Dimensions[q.Dimension] = nil
		}
		index[q.ID] = q
	}

	for _, r := range responses {
		q, ok := index[r.QuestionID]
		if !ok {
			continue
		}
		adjusted := r.Score
		if q.ReverseScored {
			adjusted = 8 - r.Score
		}
		agg := byCategory[q.Category]
		agg.Scores = append(agg.Scores, adjusted)
		agg.Dimensions[q.Dimension] = append(agg.Dimensions[q.Dimension], adjusted)
	}

	out := make([]CategoryAggregate, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCategory[cat])
	}
	return out
}

// NormalizeScore convierte una lista de puntajes ajustados 1-7 al rango
// 0-100 via ((mean - 1) / 6) * 100, redondeado y acotado.
// Una lista vacía produce 0 (decisión documentada: sin respuestas no
// hay evidencia del rasgo).
func NormalizeScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))
	normalized := ((mean - 1) / 6) * 100
	return clampScore(int(math.Round(normalized)))
}

// NormalizeCategory produce el puntaje global de la categoría y el
// mapa de puntajes por dimensión, todos enteros en [0,100].
func NormalizeCategory(agg CategoryAggregate) (int, map[string]int) {
	dims := make(map[string]int, len(agg.Dimensions))
	for dim, scores := range agg.Dimensions {
		dims[dim] = NormalizeScore(scores)
	}
	return NormalizeScore(agg.Scores), dims
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
