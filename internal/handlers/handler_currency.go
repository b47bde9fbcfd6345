package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", middleware.RequireRole(domain.RoleAdmin), h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.PATCH("/:code", middleware.RequireRole(domain.RoleAdmin), h.updateCurrency)
		currencies.DELETE("/:code", middleware.RequireRole(domain.RoleAdmin), h.deleteCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Registers a currency. At most one currency can be the base currency.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input or duplicate code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Requires admin role"
// @Failure 409 {object} map[string]string "A base currency already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for CreateCurrency")
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create currency", slog.String("currency_code", req.CurrencyCode))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create currency")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != domain.CurrencyCodeLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		respondError(c, logger.With(slog.String("currency_code", currencyCode)), err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists currencies ordered by code, optionally with transaction usage statistics
// @Tags currencies
// @Produce  json
// @Param   activeOnly query bool false "Only active currencies"
// @Param   symbol query string false "Symbol substring"
// @Param   includeStats query bool false "Attach usage statistics"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind query for ListCurrencies")
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Partially updates a currency. The code is immutable and the base currency cannot be deactivated.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency Code"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Requires admin role"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "A base currency already exists"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{code} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for UpdateCurrency")
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyCode, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("currency_code", currencyCode)), err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deactivates a currency, or removes it with hardDelete=true when no transaction references it
// @Tags currencies
// @Param   code path string true "Currency Code"
// @Param   hardDelete query bool false "Physically remove the currency"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input or base currency"
// @Failure 403 {object} map[string]string "Requires admin role"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Referenced by transactions"
// @Failure 500 {object} map[string]string "Failed to delete currency"
// @Security BearerAuth
// @Router /currencies/{code} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	hardDelete := false
	if raw := c.Query("hardDelete"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hardDelete must be a boolean"})
			return
		}
		hardDelete = parsed
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyCode, hardDelete, userID); err != nil {
		respondError(c, logger.With(slog.String("currency_code", currencyCode)), err, "Failed to delete currency")
		return
	}

	c.Status(http.StatusNoContent)
}
