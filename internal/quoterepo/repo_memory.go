// Package quoterepo manages repository layer of quotes.
package quoterepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-fx/internal/domain"
)

// RepoMemory keeps quotes for the lifetime of the process.
type RepoMemory struct {
	quotes sync.Map // uuid.UUID -> domain.Quote
}

// NewRepoMemory returns an empty quote RepoMemory.
func NewRepoMemory() *RepoMemory {
	return &RepoMemory{}
}

// Create stores the quote unless its ID is already taken and then returns it.
func (r *RepoMemory) Create(ctx context.Context, q domain.Quote) (domain.Quote, error) {
	if _, loaded := r.quotes.LoadOrStore(q.ID, q); loaded {
		zerolog.Ctx(ctx).Error().Str("quote_id", q.ID.String()).Err(domain.ErrQuoteAlreadyExists).Send()
		return domain.Quote{}, domain.ErrQuoteAlreadyExists
	}

	return q, nil
}

// Get returns the quote with the given ID.
func (r *RepoMemory) Get(ctx context.Context, id uuid.UUID) (domain.Quote, error) {
	v, ok := r.quotes.Load(id)
	if !ok {
		return domain.Quote{}, domain.ErrQuoteNotFound
	}

	return v.(domain.Quote), nil
}
