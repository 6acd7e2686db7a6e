package service

import "mosaic-mind/internal/domain"

// TraitAnalysis es el resultado del enriquecimiento de una categoría:
// 3-4 rasgos cortos y una descripción de una o dos oraciones.
type TraitAnalysis struct {
	Traits      []string
	Description string
}

type scoreTier int

const (
	tierLow scoreTier = iota
	tierMedium
	tierHigh
)

// tierForScore clasifica según los rangos fijos del prompt:
// >=70 expresión alta, 30-69 moderada, <30 baja.
func tierForScore(score int) scoreTier {
	switch {
	case score >= 70:
		return tierHigh
	case score >= 30:
		return tierMedium
	default:
		return tierLow
	}
}

// Contenido genérico usado cuando falta un campo en la respuesta del
// LLM o cuando la categoría no figura en las tablas.
var defaultTraits = []string{"Analytical", "Adaptable", "Balanced"}

const defaultDescription = "Shows a balanced pattern in this personality dimension."

// Tablas fijas de fallback: tres tiers por cada una de las seis
// categorías. Datos estáticos puros, nunca se mutan.
var fallbackTraits = map[domain.PersonalityCategory]map[scoreTier][]string{
	domain.CategoryEmotion: {
		tierHigh:   {"Empathetic", "Intuitive", "Expressive", "Compassionate"},
		tierMedium: {"Balanced", "Aware", "Responsive", "Moderate"},
		tierLow:    {"Analytical", "Detached", "Logical", "Objective"},
	},
	domain.CategoryIntellect: {
		tierHigh:   {"Curious", "Analytical", "Philosophical", "Innovative"},
		tierMedium: {"Practical", "Thoughtful", "Reasonable", "Balanced"},
		tierLow:    {"Concrete", "Traditional", "Direct", "Pragmatic"},
	},
	domain.CategorySocial: {
		tierHigh:   {"Outgoing", "Engaging", "Energetic", "Sociable"},
		tierMedium: {"Adaptable", "Selective", "Balanced", "Situational"},
		tierLow:    {"Reserved", "Independent", "Contemplative", "Selective"},
	},
	domain.CategoryDrive: {
		tierHigh:   {"Ambitious", "Persistent", "Focused", "Determined"},
		tierMedium: {"Steady", "Reliable", "Purposeful", "Consistent"},
		tierLow:    {"Flexible", "Easygoing", "Spontaneous", "Adaptable"},
	},
	domain.CategoryOpenness: {
		tierHigh:   {"Adventurous", "Innovative", "Cosmopolitan", "Experimental"},
		tierMedium: {"Open-minded", "Flexible", "Receptive", "Balanced"},
		tierLow:    {"Traditional", "Stable", "Consistent", "Grounding"},
	},
	domain.CategoryResilience: {
		tierHigh:   {"Robust", "Adaptable", "Composed", "Recovering"},
		tierMedium: {"Stable", "Recovering", "Balanced", "Managing"},
		tierLow:    {"Sensitive", "Reactive", "Expressive", "Responsive"},
	},
}

var fallbackDescriptions = map[domain.PersonalityCategory]map[scoreTier]string{
	domain.CategoryEmotion: {
		tierHigh:   "You have a rich emotional landscape and are highly attuned to feelings, both your own and others.",
		tierMedium: "You maintain a healthy balance between emotional awareness and rational decision-making.",
		tierLow:    "You tend to approach situations with logical analysis rather than emotional response.",
	},
	domain.CategoryIntellect: {
		tierHigh:   "You thrive on intellectual challenges and enjoy exploring complex, abstract concepts.",
		tierMedium: "You value both practical solutions and thoughtful analysis in equal measure.",
		tierLow:    "You prefer concrete, tangible information and hands-on approaches to problem-solving.",
	},
	domain.CategorySocial: {
		tierHigh:   "You draw energy from social interactions and feel comfortable in group settings.",
		tierMedium: "You adapt your social engagement based on context and personal energy levels.",
		tierLow:    "You value solitude and deep one-on-one connections over large social gatherings.",
	},
	domain.CategoryDrive: {
		tierHigh:   "You are highly motivated and persistent in pursuing your goals and ambitions.",
		tierMedium: "You maintain steady progress toward objectives while allowing for flexibility.",
		tierLow:    "You prefer a more spontaneous approach to life with less rigid goal structures.",
	},
	domain.CategoryOpenness: {
		tierHigh:   "You actively seek new experiences and embrace diverse perspectives enthusiastically.",
		tierMedium: "You are open to new ideas while maintaining connection to familiar foundations.",
		tierLow:    "You value tradition, consistency, and well-established methods and approaches.",
	},
	domain.CategoryResilience: {
		tierHigh:   "You demonstrate remarkable composure and adaptability in the face of challenges.",
		tierMedium: "You generally handle stress well while acknowledging your emotional responses.",
		tierLow:    "You experience emotions intensely and may be more sensitive to environmental stressors.",
	},
}

// FallbackAnalysis devuelve el contenido determinístico por
// (categoría, tier). Para categorías fuera de las tablas cae al
// contenido genérico, nunca devuelve campos vacíos.
func FallbackAnalysis(category domain.PersonalityCategory, score int) TraitAnalysis {
	tier := tierForScore(score)

	traits := defaultTraits
	if byTier, ok := fallbackTraits[category]; ok {
		if t, ok := byTier[tier]; ok {
			traits = t
		}
	}

	description := defaultDescription
	if byTier, ok := fallbackDescriptions[category]; ok {
		if d, ok := byTier[tier]; ok {
			description = d
		}
	}

	return TraitAnalysis{
		Traits:      append([]string(nil), traits...),
		Description: description,
	}
}
