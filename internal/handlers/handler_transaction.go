package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_service/internal/core/ports/services"
	"github.com/SscSPs/fx_service/internal/dto"
	"github.com/SscSPs/fx_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles booked currency transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)
	writer := middleware.RequireRole(domain.RoleAccountant)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", writer, h.recordTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PATCH("/:transactionID", writer, h.updateTransaction)
	}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Books an amount in a source currency with its base currency value. Without exchangeRate the rate is resolved as of the transaction date.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} domain.CurrencyTransaction
// @Failure 400 {object} map[string]string "Invalid input, future date or missing base currency"
// @Failure 403 {object} map[string]string "Requires accountant role"
// @Failure 404 {object} map[string]string "Currency or exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for RecordTransaction")
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tx, err := h.transactionService.RecordTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("currency", req.CurrencyCode)), err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} domain.CurrencyTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first with token pagination
// @Tags transactions
// @Produce  json
// @Param   currency query string false "Source currency"
// @Param   category query string false "Category"
// @Param   department query string false "Department"
// @Param   from query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param   to query string false "Latest transaction date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind query for ListTransactions")
		return
	}

	txs, next, err := h.transactionService.ListTransactions(c.Request.Context(), params.ToFilter(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: txs, NextToken: next})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Corrects description, metadata or the applied rate. The currency cannot change.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} domain.CurrencyTransaction
// @Failure 400 {object} map[string]string "Invalid input or currency change"
// @Failure 403 {object} map[string]string "Requires accountant role"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, logger, bindError(err), "Failed to bind JSON for UpdateTransaction")
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, tx)
}
