// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyRequired indicates that the sell or buy currency is blank.
	ErrCurrencyRequired = fmt.Errorf("%w: sellCurrency and buyCurrency are required", ErrInvalidRequest)
	// ErrUnsupportedSellCurrency indicates that the sell currency is not in the supported sell set.
	ErrUnsupportedSellCurrency = fmt.Errorf("%w: sell currency is not supported", ErrInvalidRequest)
	// ErrUnsupportedBuyCurrency indicates that the buy currency is not in the supported buy set.
	ErrUnsupportedBuyCurrency = fmt.Errorf("%w: buy currency is not supported", ErrInvalidRequest)
	// ErrIdenticalCurrencies indicates that sell and buy currencies are the same.
	ErrIdenticalCurrencies = fmt.Errorf("%w: sell and buy currencies cannot be identical", ErrInvalidRequest)
	// ErrNonPositiveAmount indicates that the amount to convert is zero or negative.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidRequest)
	// ErrQuoteNotFound indicates that the quote is not found.
	ErrQuoteNotFound = fmt.Errorf("quote %w", ErrNotFound)
	// ErrQuoteAlreadyExists indicates a quote identifier collision.
	ErrQuoteAlreadyExists = errors.New("quote already exists")
)

// CurrencyPair is an ordered (sell, buy) pair of currency codes.
//
// It is comparable and used as a map key, so (AUD, USD) and (USD, AUD) are distinct.
type CurrencyPair struct {
	Sell string
	Buy  string
}

// NewCurrencyPair returns a pair with both codes trimmed and upper-cased.
func NewCurrencyPair(sell, buy string) CurrencyPair {
	return CurrencyPair{
		Sell: NormalizeCurrency(sell),
		Buy:  NormalizeCurrency(buy),
	}
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// String renders the pair as SELL-BUY.
func (p CurrencyPair) String() string {
	return p.Sell + "-" + p.Buy
}

// ParseCurrencyPair parses a SELL-BUY string.
func ParseCurrencyPair(s string) (CurrencyPair, error) {
	sell, buy, ok := strings.Cut(s, "-")
	if !ok || strings.TrimSpace(sell) == "" || strings.TrimSpace(buy) == "" {
		return CurrencyPair{}, fmt.Errorf("malformed currency pair %q", s)
	}

	return NewCurrencyPair(sell, buy), nil
}

// Quote holds a priced conversion proposal. It is never mutated after creation.
type Quote struct {
	ID              uuid.UUID       `json:"quote_id"`
	SellCurrency    string          `json:"sell_currency"`
	BuyCurrency     string          `json:"buy_currency"`
	Amount          decimal.Decimal `json:"amount"`
	OfxRate         decimal.Decimal `json:"ofx_rate"`
	InverseOfxRate  decimal.Decimal `json:"inverse_ofx_rate"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateQuoteParams is the input data to create a quote.
type CreateQuoteParams struct {
	SellCurrency string          `json:"sell_currency"`
	BuyCurrency  string          `json:"buy_currency"`
	Amount       decimal.Decimal `json:"amount"`
}
