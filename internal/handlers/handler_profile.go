package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles profile completion requests.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers routes related to profiles.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("/completion", h.scoreProfile)
	}
}

// scoreProfile godoc
// @Summary Score profile completion
// @Description Computes the weighted completion checklist and whether proposals can be generated
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profile body dto.ScoreProfileRequest true "Profile snapshot"
// @Success 200 {object} dto.ProfileCompletionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /profiles/completion [post]
func (h *profileHandler) scoreProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ScoreProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ScoreProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.profileService.ScoreProfile(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to score profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score profile"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
