package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/takehome_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Liveness plus the state of the exchange rate snapshot.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func getHealth(rates portssvc.ExchangeRateReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := rates.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":        "OK",
			"ratesLoading":  snapshot.Loading,
			"ratesFallback": snapshot.UsingFallback(),
		})
	}
}
