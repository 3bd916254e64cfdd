// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-fx/internal/domain"
)

// RepoMemory keeps transfers for the lifetime of the process.
type RepoMemory struct {
	transfers sync.Map // uuid.UUID -> domain.Transfer
}

// NewRepoMemory returns an empty transfer RepoMemory.
func NewRepoMemory() *RepoMemory {
	return &RepoMemory{}
}

// Create stores the transfer unless its ID is already taken and then returns it.
func (r *RepoMemory) Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error) {
	if _, loaded := r.transfers.LoadOrStore(t.ID, t); loaded {
		zerolog.Ctx(ctx).Error().Str("transfer_id", t.ID.String()).Err(domain.ErrTransferAlreadyExists).Send()
		return domain.Transfer{}, domain.ErrTransferAlreadyExists
	}

	return t, nil
}

// Get returns the transfer with the given ID.
func (r *RepoMemory) Get(ctx context.Context, id uuid.UUID) (domain.Transfer, error) {
	v, ok := r.transfers.Load(id)
	if !ok {
		return domain.Transfer{}, domain.ErrTransferNotFound
	}

	return v.(domain.Transfer), nil
}
