package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/takehome_app/internal/apperrors"
	"github.com/SscSPs/takehome_app/internal/core/domain"
	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/SscSPs/takehome_app/internal/dto"
	"github.com/SscSPs/takehome_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.getExchangeRates)
		exchangeRates.POST("/refresh", h.refreshExchangeRates)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// getExchangeRates godoc
// @Summary Current exchange rate snapshot
// @Description Returns units of each currency per 1 USD together with the snapshot status
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getExchangeRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(h.exchangeRateService.Snapshot()))
}

// refreshExchangeRates godoc
// @Summary Refresh exchange rates
// @Description Fetches the latest rates now. A failed fetch still returns 200 with the fallback snapshot.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Router /exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot := h.exchangeRateService.Refresh(c.Request.Context())
	if snapshot.UsingFallback() {
		logger.Warn("Exchange rate refresh fell back to static rates")
	}

	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(snapshot))
}

// getExchangeRate godoc
// @Summary Get the conversion rate between two currencies
// @Description Returns how many units of the target currency one unit of the source buys
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "Source Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "Target Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConversionRateResponse
// @Failure 400 {object} map[string]string "Unsupported currency code"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	rate, err := h.exchangeRateService.GetConversionRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unsupported currency pair", slog.String("from", fromCode), slog.String("to", toCode))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get conversion rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	// Codes were validated by the service.
	from, _ := domain.ParseCurrencyCode(fromCode)
	to, _ := domain.ParseCurrencyCode(toCode)
	c.JSON(http.StatusOK, dto.ToConversionRateResponse(from, to, rate))
}
