package domain

import "time"

// PersonalityScore es el resultado final de una categoría: puntaje
// normalizado 0-100, rasgos y descripción (reales o de fallback) y el
// desglose por dimensión.
type PersonalityScore struct {
	Category    PersonalityCategory `json:"category"`
	Score       int                 `json:"score"`
	Traits      []string            `json:"traits"`
	Description string              `json:"description"`
	Dimensions  map[string]int      `json:"dimensions,omitempty"`
}

// VisualizationPoint es un punto del gráfico radial, uno por categoría.
type VisualizationPoint struct {
	Category   PersonalityCategory `json:"category"`
	Score      int                 `json:"score"`
	FullMark   int                 `json:"full_mark"`
	Dimensions map[string]int      `json:"dimensions"`
}

// Visualization agrupa la metadata de presentación del perfil.
type Visualization struct {
	Type       string               `json:"type"`
	Data       []VisualizationPoint `json:"data"`
	Complexity int                  `json:"complexity"`
}

// MosaicProfile es el artefacto terminal de una corrida de scoring.
// Se crea una sola vez por evaluación completada, nunca se muta, y es
// el contrato JSON para export/share/reload.
type MosaicProfile struct {
	ID            string             `json:"id"`
	Scores        []PersonalityScore `json:"scores"`
	Visualization Visualization      `json:"visualization"`
	AIInsights    string             `json:"ai_insights"`
	GeneratedAt   time.Time          `json:"generated_at"`
}
