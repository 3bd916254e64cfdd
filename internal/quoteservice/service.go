// Package quoteservice manages business logic layer of quotes.
package quoteservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/pkg/currencypkg"
)

// Precision of the figures on a quote.
const (
	RatePlaces   = 6
	AmountPlaces = 2
)

// Repo provides data access layer interface needed by quote service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package quoteservice
type Repo interface {
	Create(ctx context.Context, q domain.Quote) (domain.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Quote, error)
}

// RateService provides the cached rate lookup needed by quote service layer.
type RateService interface {
	Get(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error)
}

// Service facilitates quote service layer logic.
type Service struct {
	repo        Repo
	rateService RateService
	sell        currencypkg.Set
	buy         currencypkg.Set
	now         func() time.Time
}

// New returns quote service struct to manage quote bussines logic.
func New(qr Repo, rs RateService, sell, buy currencypkg.Set) *Service {
	return &Service{
		repo:        qr,
		rateService: rs,
		sell:        sell,
		buy:         buy,
		now:         time.Now,
	}
}

func (s *Service) validRequest(arg domain.CreateQuoteParams) (domain.CurrencyPair, error) {
	if strings.TrimSpace(arg.SellCurrency) == "" || strings.TrimSpace(arg.BuyCurrency) == "" {
		return domain.CurrencyPair{}, domain.ErrCurrencyRequired
	}

	pair := domain.NewCurrencyPair(arg.SellCurrency, arg.BuyCurrency)

	if !s.sell.Contains(pair.Sell) {
		return pair, fmt.Errorf("%w: %q", domain.ErrUnsupportedSellCurrency, arg.SellCurrency)
	}

	if !s.buy.Contains(pair.Buy) {
		return pair, fmt.Errorf("%w: %q", domain.ErrUnsupportedBuyCurrency, arg.BuyCurrency)
	}

	if pair.Sell == pair.Buy {
		return pair, domain.ErrIdenticalCurrencies
	}

	if arg.Amount.LessThanOrEqual(decimal.Zero) {
		return pair, domain.ErrNonPositiveAmount
	}

	return pair, nil
}

// Convert derives the quote figures from the unrounded base rate.
//
// All figures use banker's rounding. The inverse is taken from the unrounded
// rate and is zero when the rate is zero.
func Convert(amount, rate decimal.Decimal) (ofxRate, inverseOfxRate, convertedAmount decimal.Decimal) {
	ofxRate = rate.RoundBank(RatePlaces)

	inverseOfxRate = decimal.Zero
	if !rate.IsZero() {
		inverseOfxRate = decimal.NewFromInt(1).Div(rate).RoundBank(RatePlaces)
	}

	convertedAmount = amount.Mul(rate).RoundBank(AmountPlaces)

	return ofxRate, inverseOfxRate, convertedAmount
}

// Create validates the request, prices it and stores the resulting quote.
func (s *Service) Create(ctx context.Context, arg domain.CreateQuoteParams) (domain.Quote, error) {
	l := zerolog.Ctx(ctx)

	pair, err := s.validRequest(arg)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Quote{}, err
	}

	rate, err := s.rateService.Get(ctx, pair)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Quote{}, err
	}

	ofxRate, inverseOfxRate, convertedAmount := Convert(arg.Amount, rate)

	q := domain.Quote{
		ID:              uuid.New(),
		SellCurrency:    pair.Sell,
		BuyCurrency:     pair.Buy,
		Amount:          arg.Amount,
		OfxRate:         ofxRate,
		InverseOfxRate:  inverseOfxRate,
		ConvertedAmount: convertedAmount,
		CreatedAt:       s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, q)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Quote{}, err
	}

	l.Info().Str("quote_id", created.ID.String()).Msg("quote created")

	return created, nil
}

// Get returns the quote for the given ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Quote, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("quote_id", id.String()).Send()
		return domain.Quote{}, err
	}

	return q, nil
}
