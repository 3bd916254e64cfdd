// Package raterepo manages repository layer of exchange rates.
package raterepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/internal/domain"
)

// DefaultTable holds the OFX base rates used when no table is configured.
var DefaultTable = []string{
	"AUD-USD=0.6162",
	"AUD-INR=52.8198",
	"AUD-PHP=35.102",
	"USD-INR=84.3258",
	"USD-PHP=56.0393",
	"EUR-USD=1.0148",
	"EUR-INR=86.977",
	"EUR-PHP=57.7993",
}

// RepoStatic serves base rates from an immutable in-memory table.
type RepoStatic struct {
	rates map[domain.CurrencyPair]decimal.Decimal
}

// NewRepoStatic returns RepoStatic built from SELL-BUY=RATE entries.
func NewRepoStatic(entries []string) (*RepoStatic, error) {
	rates, err := ParseTable(entries)
	if err != nil {
		return nil, err
	}

	return &RepoStatic{rates: rates}, nil
}

// ParseTable parses SELL-BUY=RATE entries into a rate table.
//
// Codes are case-insensitive, rates must be positive and a pair may appear only once.
func ParseTable(entries []string) (map[domain.CurrencyPair]decimal.Decimal, error) {
	rates := make(map[domain.CurrencyPair]decimal.Decimal, len(entries))

	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("malformed rate entry %q", e)
		}

		pair, err := domain.ParseCurrencyPair(key)
		if err != nil {
			return nil, err
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("rate entry %q: %w", e, err)
		}

		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("rate entry %q: rate must be positive", e)
		}

		if _, dup := rates[pair]; dup {
			return nil, fmt.Errorf("duplicate rate entry for %s", pair)
		}

		rates[pair] = rate
	}

	return rates, nil
}

// Rate returns the base rate for the pair.
func (r *RepoStatic) Rate(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	rate, ok := r.rates[domain.NewCurrencyPair(pair.Sell, pair.Buy)]
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("pair", pair.String()).Msg("rate not configured")
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, pair)
	}

	return rate, nil
}

// Len returns the number of configured pairs.
func (r *RepoStatic) Len() int {
	return len(r.rates)
}
