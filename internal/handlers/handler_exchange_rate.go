package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	reportingService    portssvc.ReportingService
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, rs portssvc.ReportingService) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		reportingService:    rs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, reportingService portssvc.ReportingService) {
	h := newExchangeRateHandler(exchangeRateService, reportingService)
	writer := middleware.RequireRole(domain.RoleAccountant)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", writer, h.createExchangeRate)
		exchangeRates.POST("/bulk", writer, h.bulkUpdateExchangeRates)
		exchangeRates.PATCH("/:id", writer, h.updateExchangeRate)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
		exchangeRates.GET("/:from/:to/cross", h.getCrossRate)
		exchangeRates.GET("/:from/:to/history", h.getRateHistory)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Stores a rate between two active currencies, optionally with its reciprocal.
// @Description A warning is returned when the rate disagrees with the stored reverse rate.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.AddExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Requires accountant role"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for CreateExchangeRate")
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
	)

	res, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAddExchangeRateResponse(res))
}

// bulkUpdateExchangeRates godoc
// @Summary Store many exchange rates
// @Description Each entry is validated and stored on its own; failures are reported by index.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rates body dto.BulkUpdateExchangeRatesRequest true "Rates"
// @Success 200 {object} domain.BulkRateUpdateResult
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Requires accountant role"
// @Failure 500 {object} map[string]string "Failed to update exchange rates"
// @Security BearerAuth
// @Router /exchange-rates/bulk [post]
func (h *exchangeRateHandler) bulkUpdateExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkUpdateExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for BulkUpdateExchangeRates")
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entries := req.ToDomainRateEntries(time.Now().UTC())
	res, err := h.exchangeRateService.BulkUpdateExchangeRates(c.Request.Context(), entries, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update exchange rates")
		return
	}

	c.JSON(http.StatusOK, res)
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Corrects a stored rate. Expired forward rates cannot be modified.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   id path string true "Exchange Rate ID"
// @Param   rate body dto.UpdateExchangeRateRequest true "Fields to update"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input or expired rate"
// @Failure 403 {object} map[string]string "Requires accountant role"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to update exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{id} [patch]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("id")

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for UpdateExchangeRate")
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), rateID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("exchange_rate_id", rateID)), err, "Failed to update exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get the stored rate of a pair
// @Description Retrieves the most recent active rate from one currency to another dated on or before asOf.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to path string true "To Currency Code"
// @Param   asOf query string false "RFC 3339 timestamp or YYYY-MM-DD, defaults to now"
// @Param   rateType query string false "spot or forward" Enums(spot, forward)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to := strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to"))
	logger = logger.With(slog.String("pair", domain.PairKey(from, to)))

	asOf, rateType, err := rateQuery(c)
	if err != nil {
		respondError(c, logger, err, "Invalid exchange rate query")
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), from, to, asOf, rateType)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// getCrossRate godoc
// @Summary Calculate a cross rate
// @Description Derives a rate through bridge currencies, preferring the base currency.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to path string true "To Currency Code"
// @Param   asOf query string false "RFC 3339 timestamp or YYYY-MM-DD, defaults to now"
// @Param   rateType query string false "spot or forward" Enums(spot, forward)
// @Success 200 {object} domain.RateQuote
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No path between the currencies"
// @Failure 500 {object} map[string]string "Failed to calculate cross rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to}/cross [get]
func (h *exchangeRateHandler) getCrossRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to := strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to"))
	logger = logger.With(slog.String("pair", domain.PairKey(from, to)))

	asOf, rateType, err := rateQuery(c)
	if err != nil {
		respondError(c, logger, err, "Invalid cross rate query")
		return
	}

	quote, err := h.exchangeRateService.GetCrossRate(c.Request.Context(), from, to, asOf, rateType)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate cross rate")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// getRateHistory godoc
// @Summary Rate history of a pair
// @Description Buckets spot quotes by day, week or month with open, close, high, low and average.
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code"
// @Param   to path string true "To Currency Code"
// @Param   period query string false "Bucket width" Enums(day, week, month)
// @Param   start query string false "RFC 3339 timestamp or YYYY-MM-DD, defaults to one month before end"
// @Param   end query string false "RFC 3339 timestamp or YYYY-MM-DD, defaults to now"
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to retrieve rate history"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to}/history [get]
func (h *exchangeRateHandler) getRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to := strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to"))
	logger = logger.With(slog.String("pair", domain.PairKey(from, to)))

	start, err := parseTimeQuery(c, "start")
	if err != nil {
		respondError(c, logger, err, "Invalid rate history query")
		return
	}
	end, err := parseTimeQuery(c, "end")
	if err != nil {
		respondError(c, logger, err, "Invalid rate history query")
		return
	}
	period := domain.HistoryPeriod(strings.ToLower(c.DefaultQuery("period", string(domain.PeriodDay))))

	points, err := h.reportingService.RateHistory(c.Request.Context(), from, to, period, start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve rate history")
		return
	}

	c.JSON(http.StatusOK, dto.RateHistoryResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Period:           period,
		Points:           points,
	})
}

// rateQuery reads the asOf and rateType query parameters shared by rate lookups.
func rateQuery(c *gin.Context) (time.Time, domain.RateType, error) {
	asOf, err := parseTimeQuery(c, "asOf")
	if err != nil {
		return time.Time{}, "", err
	}
	rateType, err := domain.ParseRateType(c.Query("rateType"))
	if err != nil {
		return time.Time{}, "", err
	}
	return asOf, rateType, nil
}
