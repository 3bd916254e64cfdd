// Package rateservice manages business logic layer of exchange rates.
//
// It memoizes base rates per currency pair for a configured time-to-live.
// Expiry is evaluated lazily on lookup, there is no background sweep.
package rateservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/internal/domain"
)

// Repo provides data access layer interface needed by rate service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package rateservice
type Repo interface {
	Rate(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error)
}

type entry struct {
	rate     decimal.Decimal
	cachedAt time.Time
}

// Service facilitates rate lookups through a TTL cache.
type Service struct {
	repo    Repo
	ttl     time.Duration
	now     func() time.Time
	entries sync.Map // domain.CurrencyPair -> entry
}

// New returns rate service that caches repo rates for ttl.
func New(rr Repo, ttl time.Duration) *Service {
	return &Service{
		repo: rr,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the rate for the pair, consulting the repo when no fresh entry exists.
func (s *Service) Get(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	pair = domain.NewCurrencyPair(pair.Sell, pair.Buy)
	now := s.now()

	if v, ok := s.entries.Load(pair); ok {
		e := v.(entry)
		if now.Sub(e.cachedAt) < s.ttl {
			return e.rate, nil
		}
	}

	rate, err := s.repo.Rate(ctx, pair)
	if err != nil {
		if errors.Is(err, domain.ErrRateUnavailable) {
			s.entries.Delete(pair)
		}

		l.Info().Err(err).Str("pair", pair.String()).Send()

		return decimal.Zero, err
	}

	s.entries.Store(pair, entry{rate: rate, cachedAt: now})
	l.Debug().Str("pair", pair.String()).Str("rate", rate.String()).Msg("rate cached")

	return rate, nil
}

// Purge drops every cached entry.
func (s *Service) Purge() {
	s.entries.Range(func(key, _ any) bool {
		s.entries.Delete(key)
		return true
	})
}
