package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mosaic-mind/internal/catalog"
	"mosaic-mind/internal/domain"
	"mosaic-mind/internal/service"
	"mosaic-mind/internal/share"
)

// ProfileHandler expone el catálogo de preguntas y el pipeline de
// scoring sobre HTTP.
type ProfileHandler struct {
	logger       *zap.Logger
	profiles     *service.ProfileService
	limiter      service.RateLimiter
	shareBaseURL string
}

func NewProfileHandler(logger *zap.Logger, profiles *service.ProfileService, limiter service.RateLimiter, shareBaseURL string) *ProfileHandler {
	return &ProfileHandler{
		logger:       logger,
		profiles:     profiles,
		limiter:      limiter,
		shareBaseURL: shareBaseURL,
	}
}

// GetQuestions maneja GET /questions: el catálogo completo, en orden.
func (h *ProfileHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": catalog.Questions()})
}

// GenerateProfile maneja POST /profile. El cliente manda el snapshot
// completo de respuestas; regenerar con el mismo snapshot produce los
// mismos puntajes.
func (h *ProfileHandler) GenerateProfile(c *gin.Context) {
	var req struct {
		Responses []domain.UserResponse `json:"responses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for _, r := range req.Responses {
		if r.QuestionID == "" || r.Score < 1 || r.Score > 7 {
			h.logger.Warn("response out of range",
				zap.String("question_id", r.QuestionID),
				zap.Int("score", r.Score),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "scores must be integers between 1 and 7"})
			return
		}
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	profile, err := h.profiles.GenerateProfile(c.Request.Context(), req.Responses)
	if err != nil {
		h.logger.Error("generate profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ShareCard maneja POST /profile/share/card: recibe un perfil ya
// generado (el JSON exportado es el contrato) y devuelve la tarjeta SVG.
func (h *ProfileHandler) ShareCard(c *gin.Context) {
	var profile domain.MosaicProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid share card request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
		return
	}

	svg := share.RenderCard(profile)
	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	c.String(http.StatusOK, svg)
}

// ShareLinks maneja POST /profile/share/links: texto e intent URLs
// para compartir el perfil.
func (h *ProfileHandler) ShareLinks(c *gin.Context) {
	var req struct {
		Profile domain.MosaicProfile `json:"profile" binding:"required"`
		PageURL string               `json:"page_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid share links request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	pageURL := req.PageURL
	if pageURL == "" {
		pageURL = h.shareBaseURL
	}

	c.JSON(http.StatusOK, gin.H{
		"text":         share.ShareText(req.Profile),
		"twitter_url":  share.TwitterShareURL(req.Profile, pageURL),
		"linkedin_url": share.LinkedInShareURL(req.Profile, pageURL),
	})
}
