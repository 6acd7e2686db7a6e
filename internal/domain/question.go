package domain

// PersonalityCategory identifica una de las seis categorías fijas del modelo.
type PersonalityCategory string

const (
	CategoryEmotion    PersonalityCategory = "Emotion"
	CategoryIntellect  PersonalityCategory = "Intellect"
	CategorySocial     PersonalityCategory = "Social"
	CategoryDrive      PersonalityCategory = "Drive"
	CategoryOpenness   PersonalityCategory = "Openness"
	CategoryResilience PersonalityCategory = "Resilience"
)

// Question es una pregunta Likert del catálogo estático.
// ReverseScored indica que el acuerdo apunta al extremo bajo del rasgo
// y el puntaje crudo debe invertirse (8 - r en escala 1-7).
type Question struct {
	ID            string              `json:"id"`
	Text          string              `json:"text"`
	Category      PersonalityCategory `json:"category"`
	Dimension     string              `json:"dimension"`
	ReverseScored bool                `json:"reverse_scored,omitempty"`
}

// UserResponse es la respuesta cruda a una pregunta, escala Likert 1-7.
type UserResponse struct {
	QuestionID string `json:"question_id"`
	Score      int    `json:"score"`
}
