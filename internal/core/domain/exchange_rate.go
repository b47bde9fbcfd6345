package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/fx_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateType distinguishes immediately applicable quotes from forward contracts.
type RateType string

const (
	RateTypeSpot    RateType = "spot"
	RateTypeForward RateType = "forward"
)

// Valid reports whether the rate type is one of the known values.
func (t RateType) Valid() bool {
	return t == RateTypeSpot || t == RateTypeForward
}

// ParseRateType maps an empty string to spot and rejects unknown values.
func ParseRateType(s string) (RateType, error) {
	if s == "" {
		return RateTypeSpot, nil
	}
	t := RateType(strings.ToLower(s))
	if !t.Valid() {
		return "", apperrors.NewValidationError("unknown rate type %q", s)
	}
	return t, nil
}

// RateMethod records how the rate applied to a conversion was obtained.
type RateMethod string

const (
	MethodDirect     RateMethod = "direct"
	MethodReciprocal RateMethod = "reciprocal"
	MethodCrossRate  RateMethod = "cross_rate"
	MethodCalculated RateMethod = "calculated"
	MethodManual     RateMethod = "manual"
	MethodIdentity   RateMethod = "identity"
)

// SourceCalculated tags rates derived by the service rather than quoted.
const SourceCalculated = "calculated"

// RateScale is the number of decimal places a stored rate keeps.
const RateScale = 12

// ExchangeRate represents the conversion rate from one currency to another.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (e.g., UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // 1 unit of From = Rate units of To
	RateDate         time.Time       `json:"rateDate"`
	RateType         RateType        `json:"rateType"`
	Source           string          `json:"source"`
	ValidUntil       *time.Time      `json:"validUntil,omitempty"` // forward rates only
	IsActive         bool            `json:"isActive"`
	IsCalculated     bool            `json:"isCalculated"`
	AuditFields
}

// NewExchangeRate builds an active rate and validates its invariants.
func NewExchangeRate(id, from, to string, rate decimal.Decimal, rateDate time.Time, rateType RateType, source string, validUntil *time.Time) (ExchangeRate, error) {
	r := ExchangeRate{
		ExchangeRateID:   id,
		FromCurrencyCode: strings.ToUpper(strings.TrimSpace(from)),
		ToCurrencyCode:   strings.ToUpper(strings.TrimSpace(to)),
		Rate:             rate,
		RateDate:         rateDate,
		RateType:         rateType,
		Source:           strings.TrimSpace(source),
		ValidUntil:       validUntil,
		IsActive:         true,
	}
	if r.RateType == "" {
		r.RateType = RateTypeSpot
	}
	if r.RateType == RateTypeSpot {
		r.ValidUntil = nil
	}
	if err := r.Validate(); err != nil {
		return ExchangeRate{}, err
	}
	return r, nil
}

// Validate checks the structural invariants of a rate.
func (r ExchangeRate) Validate() error {
	if len(r.FromCurrencyCode) != CurrencyCodeLength || len(r.ToCurrencyCode) != CurrencyCodeLength {
		return apperrors.NewValidationError("currency codes must be exactly %d characters", CurrencyCodeLength)
	}
	if r.FromCurrencyCode == r.ToCurrencyCode {
		return apperrors.NewValidationError("from and to currency codes cannot be the same")
	}
	if !r.Rate.IsPositive() {
		return apperrors.NewValidationError("exchange rate must be positive")
	}
	if !r.RateType.Valid() {
		return apperrors.NewValidationError("unknown rate type %q", r.RateType)
	}
	if r.RateDate.IsZero() {
		return apperrors.NewValidationError("rate date is required")
	}
	if r.RateType == RateTypeForward {
		if r.ValidUntil == nil {
			return apperrors.NewValidationError("validUntil is required for forward rates")
		}
		if !r.ValidUntil.After(r.RateDate) {
			return apperrors.NewValidationError("validUntil must be after rateDate")
		}
	}
	return nil
}

// IsExpired reports whether a forward rate is past its validity at t.
// Spot rates never expire.
func (r ExchangeRate) IsExpired(t time.Time) bool {
	return r.RateType == RateTypeForward && r.ValidUntil != nil && t.After(*r.ValidUntil)
}

// Reciprocal returns the derived 1/rate companion, tagged as calculated.
func (r ExchangeRate) Reciprocal(id string) ExchangeRate {
	inv := r.Clone()
	inv.ExchangeRateID = id
	inv.FromCurrencyCode, inv.ToCurrencyCode = r.ToCurrencyCode, r.FromCurrencyCode
	inv.Rate = decimal.NewFromInt(1).Div(r.Rate).Round(RateScale)
	inv.Source = SourceCalculated
	inv.IsCalculated = true
	return inv
}

// Clone returns a copy that shares no pointers with the receiver.
func (r ExchangeRate) Clone() ExchangeRate {
	if r.ValidUntil != nil {
		v := *r.ValidUntil
		r.ValidUntil = &v
	}
	return r
}

// PairKey identifies a directed currency pair.
func PairKey(from, to string) string {
	return from + "/" + to
}

// RateLookup selects the most recent active rate of a pair as of a point in time.
type RateLookup struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	RateType         RateType
	AsOf             time.Time
	ExcludeExpired   bool
}

// Matches reports whether r is a candidate for the lookup.
func (l RateLookup) Matches(r ExchangeRate) bool {
	if !r.IsActive || r.FromCurrencyCode != l.FromCurrencyCode || r.ToCurrencyCode != l.ToCurrencyCode {
		return false
	}
	if r.RateType != l.RateType || r.RateDate.After(l.AsOf) {
		return false
	}
	return !l.ExcludeExpired || !r.IsExpired(l.AsOf)
}

// IsNewerThan orders rates by rate date, then creation time, then ID.
func (r ExchangeRate) IsNewerThan(other ExchangeRate) bool {
	if !r.RateDate.Equal(other.RateDate) {
		return r.RateDate.After(other.RateDate)
	}
	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.After(other.CreatedAt)
	}
	return r.ExchangeRateID > other.ExchangeRateID
}
