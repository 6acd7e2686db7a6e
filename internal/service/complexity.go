package service

import (
	"math"

	"mosaic-mind/internal/domain"
)

// PatternComplexity mide qué tan variado es el mosaico de puntajes:
// varianza poblacional de los puntajes de categoría × 10, redondeada y
// acotada a [0,100]. Cero o una categoría produce 0 por convención.
func PatternComplexity(scores []domain.PersonalityScore) int {
	if len(scores) <= 1 {
		return 0
	}

	n := float64(len(scores))
	var sum float64
	for _, s := range scores {
		sum += float64(s.Score)
	}
	mean := sum / n

	var variance float64
	for _, s := range scores {
		diff := float64(s.Score) - mean
		variance += diff * diff
	}
	variance /= n

	v := int(math.Round(variance * 10))
	if v > 100 {
		v = 100
	}
	return v
}
