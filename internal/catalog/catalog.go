package catalog

import "mosaic-mind/internal/domain"

// Catálogo estático del cuestionario. Se define una sola vez y nunca se
// muta en runtime; el orden de aparición define el orden de categorías
// en el perfil resultante.
var questions = []domain.Question{
	// Emotion
	{
		ID:        "emotion_1",
		Text:      "I often feel deeply moved by art, music, or nature",
		Category:  domain.CategoryEmotion,
		Dimension: "Sensitivity",
	},
	{
		ID:        "emotion_2",
		Text:      "I find it easy to understand how others are feeling",
		Category:  domain.CategoryEmotion,
		Dimension: "Empathy",
	},
	{
		ID:            "emotion_3",
		Text:          "I prefer to make decisions based on logic rather than feelings",
		Category:      domain.CategoryEmotion,
		Dimension:     "Rationality",
		ReverseScored: true,
	},

	// Intellect
	{
		ID:        "intellect_1",
		Text:      "I enjoy exploring abstract ideas and concepts",
		Category:  domain.CategoryIntellect,
		Dimension: "Abstract Thinking",
	},
	{
		ID:        "intellect_2",
		Text:      "I frequently question conventional wisdom",
		Category:  domain.CategoryIntellect,
		Dimension: "Critical Thinking",
	},
	{
		ID:            "intellect_3",
		Text:          "I prefer practical solutions over theoretical ones",
		Category:      domain.CategoryIntellect,
		Dimension:     "Pragmatism",
		ReverseScored: true,
	},

	// Social
	{
		ID:        "social_1",
		Text:      "I feel energized after social gatherings",
		Category:  domain.CategorySocial,
		Dimension: "Extraversion",
	},
	{
		ID:        "social_2",
		Text:      "I adapt my communication style to different people",
		Category:  domain.CategorySocial,
		Dimension: "Adaptability",
	},
	{
		ID:        "social_3",
		Text:      "I prefer deep conversations over small talk",
		Category:  domain.CategorySocial,
		Dimension: "Depth",
	},

	// Drive
	{
		ID:        "drive_1",
		Text:      "I set ambitious goals for myself",
		Category:  domain.CategoryDrive,
		Dimension: "Ambition",
	},
	{
		ID:        "drive_2",
		Text:      "I persist in tasks even when they become difficult",
		Category:  domain.CategoryDrive,
		Dimension: "Persistence",
	},
	{
		ID:            "drive_3",
		Text:          "I prefer a predictable routine over constant change",
		Category:      domain.CategoryDrive,
		Dimension:     "Stability",
		ReverseScored: true,
	},

	// Openness
	{
		ID:        "openness_1",
		Text:      "I enjoy trying new and unfamiliar activities",
		Category:  domain.CategoryOpenness,
		Dimension: "Novelty Seeking",
	},
	{
		ID:        "openness_2",
		Text:      "I appreciate diverse perspectives and cultures",
		Category:  domain.CategoryOpenness,
		Dimension: "Cultural Openness",
	},

	// Resilience
	{
		ID:        "resilience_1",
		Text:      "I recover quickly from setbacks and disappointments",
		Category:  domain.CategoryResilience,
		Dimension: "Recovery",
	},
	{
		ID:        "resilience_2",
		Text:      "I maintain calm under pressure",
		Category:  domain.CategoryResilience,
		Dimension: "Composure",
	},
}

// Questions devuelve una copia del catálogo en orden.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out
}

// Find busca una pregunta por id.
func Find(id string) (domain.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Question{}, false
}

// Categories devuelve las categorías en orden de primera aparición.
func Categories() []domain.PersonalityCategory {
	seen := make(map[domain.PersonalityCategory]struct{}, len(questions))
	var out []domain.PersonalityCategory
	for _, q := range questions {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}
