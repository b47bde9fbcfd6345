package dto

import (
	"time"

	"github.com/SscSPs/fx_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest books an amount in a source currency.
type CreateTransactionRequest struct {
	Description     string           `json:"description" binding:"required"`
	Amount          decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode    string           `json:"currency" binding:"required,len=3"`
	TransactionDate time.Time        `json:"transactionDate" binding:"required"`
	ExchangeRate    *decimal.Decimal `json:"exchangeRate"` // manual override
	Category        string           `json:"category"`
	Department      string           `json:"department"`
}

// UpdateTransactionRequest is a partial update of a booked transaction.
type UpdateTransactionRequest struct {
	CurrencyCode *string          `json:"currency,omitempty"` // rejected if it differs from the booked currency
	Description  *string          `json:"description,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Department   *string          `json:"department,omitempty"`
}

// ListTransactionsParams holds the query parameters of a transaction listing.
type ListTransactionsParams struct {
	Currency   string     `form:"currency"`
	Category   string     `form:"category"`
	Department string     `form:"department"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken  *string    `form:"nextToken"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		CurrencyCode: p.Currency,
		Category:     p.Category,
		Department:   p.Department,
		From:         p.From,
		To:           p.To,
	}
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.CurrencyTransaction `json:"transactions"`
	NextToken    *string                      `json:"nextToken,omitempty"`
}
