// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-fx/internal/domain"
)

// DeliveryOffset is the time between creation and estimated delivery of a transfer.
const DeliveryOffset = 24 * time.Hour

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Create(ctx context.Context, t domain.Transfer) (domain.Transfer, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Transfer, error)
}

// QuoteService provides the quote lookup needed by transfer service layer.
type QuoteService interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Quote, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo         Repo
	quoteService QuoteService
	now          func() time.Time
}

// New return transfer service struct to manage transfer bussines logic.
func New(tr Repo, qs QuoteService) *Service {
	return &Service{
		repo:         tr,
		quoteService: qs,
		now:          time.Now,
	}
}

func (s *Service) validQuote(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.ErrQuoteIDRequired
	}

	if _, err := s.quoteService.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrQuoteReferenceNotFound
		}

		return err
	}

	return nil
}

func validPayer(p *domain.Payer) error {
	switch {
	case p == nil:
		return domain.ErrPayerRequired
	case p.ID == uuid.Nil:
		return domain.ErrPayerIDRequired
	case strings.TrimSpace(p.Name) == "":
		return domain.ErrPayerNameRequired
	case strings.TrimSpace(p.TransferReason) == "":
		return domain.ErrTransferReasonRequired
	}

	return nil
}

func parseRecipient(r *domain.RecipientDetails) (domain.Recipient, error) {
	if r == nil {
		return domain.Recipient{}, domain.ErrRecipientRequired
	}

	if strings.TrimSpace(r.Name) == "" {
		return domain.Recipient{}, domain.ErrRecipientNameRequired
	}

	accountNumber, err := strconv.ParseInt(strings.TrimSpace(r.AccountNumber), 10, 64)
	if err != nil {
		return domain.Recipient{}, domain.ErrInvalidAccountNumber
	}

	bankCode, err := strconv.ParseInt(strings.TrimSpace(r.BankCode), 10, 64)
	if err != nil {
		return domain.Recipient{}, domain.ErrInvalidBankCode
	}

	if strings.TrimSpace(r.BankName) == "" {
		return domain.Recipient{}, domain.ErrBankNameRequired
	}

	return domain.Recipient{
		Name:          r.Name,
		AccountNumber: accountNumber,
		BankCode:      bankCode,
		BankName:      r.BankName,
	}, nil
}

// Create checks that the transfer request is valid and then records the transfer.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validQuote(ctx, arg.QuoteID); err != nil {
		l.Info().Err(err).Str("quote_id", arg.QuoteID.String()).Send()
		return domain.Transfer{}, err
	}

	if err := validPayer(arg.Payer); err != nil {
		l.Info().Err(err).Send()
		return domain.Transfer{}, err
	}

	recipient, err := parseRecipient(arg.Recipient)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Transfer{}, err
	}

	createdAt := s.now().UTC()

	t := domain.Transfer{
		ID:                    uuid.New(),
		Status:                domain.StatusProcessing,
		QuoteID:               arg.QuoteID,
		Payer:                 *arg.Payer,
		Recipient:             recipient,
		EstimatedDeliveryDate: createdAt.Add(DeliveryOffset),
		CreatedAt:             createdAt,
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transfer{}, err
	}

	l.Info().
		Str("transfer_id", created.ID.String()).
		Str("quote_id", created.QuoteID.String()).
		Msg("transfer created")

	return created, nil
}

// Get returns the transfer for the given ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Transfer, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("transfer_id", id.String()).Send()
		return domain.Transfer{}, err
	}

	return t, nil
}
