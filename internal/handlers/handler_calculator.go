package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculatorHandler handles take-home pay calculation requests.
type calculatorHandler struct {
	calculatorService portssvc.CalculatorSvcFacade
}

func newCalculatorHandler(cs portssvc.CalculatorSvcFacade) *calculatorHandler {
	return &calculatorHandler{calculatorService: cs}
}

// registerCalculatorRoutes registers routes related to calculations.
func registerCalculatorRoutes(rg *gin.RouterGroup, calculatorService portssvc.CalculatorSvcFacade) {
	h := newCalculatorHandler(calculatorService)

	rg.POST("/calculations", h.calculate)
}

// calculate godoc
// @Summary Calculate take-home pay
// @Description Computes gross income, platform fee, tax and net pay from the raw form inputs.
// @Description Unparsable numbers give an invalid result (200), not an error.
// @Tags calculations
// @Accept  json
// @Produce  json
// @Param   calculation body dto.CalculateRequest true "Calculator inputs"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} map[string]string "Invalid request format or unsupported currency"
// @Router /calculations [post]
func (h *calculatorHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Calculate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.calculatorService.Calculate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating take-home pay", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate take-home pay", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate take-home pay"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
