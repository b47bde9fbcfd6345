package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxBulkConversions caps the number of conversions in one bulk request.
const maxBulkConversions = 1000

// conversionHandler handles currency conversion requests.
type conversionHandler struct {
	converter     portssvc.ConversionSvc
	bulkConverter portssvc.BulkConversionSvc
}

func newConversionHandler(converter portssvc.ConversionSvc, bulkConverter portssvc.BulkConversionSvc) *conversionHandler {
	return &conversionHandler{
		converter:     converter,
		bulkConverter: bulkConverter,
	}
}

// registerConversionRoutes registers the conversion routes.
func registerConversionRoutes(rg *gin.RouterGroup, converter portssvc.ConversionSvc, bulkConverter portssvc.BulkConversionSvc) {
	h := newConversionHandler(converter, bulkConverter)

	rg.POST("/convert", h.convert)
	rg.POST("/bulk-convert", h.bulkConvert)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts using the direct rate, the reciprocal of the reverse rate, or a cross rate, in that order.
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion"
// @Success 200 {object} domain.ConversionResult
// @Failure 400 {object} map[string]string "Invalid input, inactive currency or expired forward rate"
// @Failure 404 {object} map[string]string "Currency or exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Security BearerAuth
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for Convert")
		return
	}

	res, err := h.converter.Convert(c.Request.Context(), req.ToDomain(time.Now().UTC()))
	if err != nil {
		respondError(c, logger.With(slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency)), err, "Failed to convert")
		return
	}

	c.JSON(http.StatusOK, res)
}

// bulkConvert godoc
// @Summary Convert many amounts
// @Description Runs conversions concurrently; results keep request order and failures do not affect other entries.
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   conversions body dto.BulkConvertRequest true "Conversions"
// @Success 200 {object} dto.BulkConvertResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Security BearerAuth
// @Router /bulk-convert [post]
func (h *conversionHandler) bulkConvert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for BulkConvert")
		return
	}
	if len(req.Conversions) > maxBulkConversions {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many conversions in one request"})
		return
	}

	now := time.Now().UTC()
	reqs := make([]domain.ConversionRequest, len(req.Conversions))
	for i, conv := range req.Conversions {
		reqs[i] = conv.ToDomain(now)
	}

	results := h.bulkConverter.ConvertMany(c.Request.Context(), reqs)
	c.JSON(http.StatusOK, dto.ToBulkConvertResponse(results))
}
