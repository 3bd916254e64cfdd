// Package test provides random domain fixtures shared by tests.
package test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/pkg/randompkg"
)

// RandomQuote returns a random quote with consistent derived figures.
func RandomQuote() domain.Quote {
	sell := randompkg.SellCurrency()
	buy := randompkg.BuyCurrency(sell)
	amount := randompkg.MoneyAmountBetween(1, 10_000)
	rate := decimal.NewFromFloat(randompkg.FloatBetween(0.5, 90))

	return domain.Quote{
		ID:              uuid.New(),
		SellCurrency:    sell,
		BuyCurrency:     buy,
		Amount:          amount,
		OfxRate:         rate.RoundBank(6),
		InverseOfxRate:  decimal.NewFromInt(1).Div(rate).RoundBank(6),
		ConvertedAmount: amount.Mul(rate).RoundBank(2),
		CreatedAt:       time.Now().Truncate(time.Second).UTC(),
	}
}

// RandomPayer returns a random valid payer.
func RandomPayer() domain.Payer {
	return domain.Payer{
		ID:             uuid.New(),
		Name:           randompkg.Name(),
		TransferReason: "Invoice " + randompkg.Digits(4),
	}
}

// RandomRecipientDetails returns random valid recipient input.
func RandomRecipientDetails() domain.RecipientDetails {
	return domain.RecipientDetails{
		Name:          randompkg.Name(),
		AccountNumber: randompkg.Digits(9),
		BankCode:      randompkg.Digits(3),
		BankName:      randompkg.Name() + " Bank",
	}
}

// RandomCreateTransferParams returns valid transfer input referencing quoteID.
func RandomCreateTransferParams(quoteID uuid.UUID) domain.CreateTransferParams {
	payer := RandomPayer()
	recipient := RandomRecipientDetails()

	return domain.CreateTransferParams{
		QuoteID:   quoteID,
		Payer:     &payer,
		Recipient: &recipient,
	}
}

// RandomTransfer returns a random transfer in the Processing state.
func RandomTransfer() domain.Transfer {
	createdAt := time.Now().Truncate(time.Second).UTC()

	return domain.Transfer{
		ID:      uuid.New(),
		Status:  domain.StatusProcessing,
		QuoteID: uuid.New(),
		Payer:   RandomPayer(),
		Recipient: domain.Recipient{
			Name:          randompkg.Name(),
			AccountNumber: 123456789,
			BankCode:      1,
			BankName:      randompkg.Name() + " Bank",
		},
		EstimatedDeliveryDate: createdAt.Add(24 * time.Hour),
		CreatedAt:             createdAt,
	}
}
