package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to usage reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/currency-summary", h.getCurrencySummary)
	}
}

// getCurrencySummary godoc
// @Summary Currency usage summary
// @Description Transaction count, volume and base value per source currency
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CurrencyUsage
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/currency-summary [get]
func (h *reportingHandler) getCurrencySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.SummaryByCurrency(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, summary)
}
