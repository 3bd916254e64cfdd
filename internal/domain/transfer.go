package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrQuoteIDRequired indicates that the transfer request carries no quote id.
	ErrQuoteIDRequired = fmt.Errorf("%w: quoteId is required", ErrInvalidRequest)
	// ErrQuoteReferenceNotFound indicates that the referenced quote does not exist.
	ErrQuoteReferenceNotFound = fmt.Errorf("%w: invalid quoteId, quote does not exist", ErrInvalidRequest)
	// ErrPayerRequired indicates that the payer block is missing.
	ErrPayerRequired = fmt.Errorf("%w: payer is required", ErrInvalidRequest)
	// ErrPayerIDRequired indicates that the payer id is empty.
	ErrPayerIDRequired = fmt.Errorf("%w: payer id is required", ErrInvalidRequest)
	// ErrPayerNameRequired indicates that the payer name is blank.
	ErrPayerNameRequired = fmt.Errorf("%w: payer name is required", ErrInvalidRequest)
	// ErrTransferReasonRequired indicates that the payer transfer reason is blank.
	ErrTransferReasonRequired = fmt.Errorf("%w: payer transfer reason is required", ErrInvalidRequest)
	// ErrRecipientRequired indicates that the recipient block is missing.
	ErrRecipientRequired = fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	// ErrRecipientNameRequired indicates that the recipient name is blank.
	ErrRecipientNameRequired = fmt.Errorf("%w: recipient name is required", ErrInvalidRequest)
	// ErrInvalidAccountNumber indicates that the recipient account number is not an integer.
	ErrInvalidAccountNumber = fmt.Errorf("%w: recipient account number must be numeric", ErrInvalidRequest)
	// ErrInvalidBankCode indicates that the recipient bank code is not an integer.
	ErrInvalidBankCode = fmt.Errorf("%w: recipient bank code must be numeric", ErrInvalidRequest)
	// ErrBankNameRequired indicates that the recipient bank name is blank.
	ErrBankNameRequired = fmt.Errorf("%w: recipient bank name is required", ErrInvalidRequest)
	// ErrTransferNotFound indicates that the transfer is not found.
	ErrTransferNotFound = fmt.Errorf("transfer %w", ErrNotFound)
	// ErrTransferAlreadyExists indicates a transfer identifier collision.
	ErrTransferAlreadyExists = errors.New("transfer already exists")
)

// TransferStatus is the lifecycle state of a transfer.
type TransferStatus int

// Transfer states. Only StatusProcessing is produced on creation, later
// states belong to settlement.
const (
	StatusUnknown TransferStatus = iota
	StatusProcessing
)

// String returns the status name.
func (s TransferStatus) String() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TransferStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names other than Processing decode to StatusUnknown.
func (s *TransferStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Processing":
		*s = StatusProcessing
	default:
		*s = StatusUnknown
	}

	return nil
}

// Payer holds the sender details of a transfer.
type Payer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TransferReason string    `json:"transfer_reason"`
}

// Recipient holds validated beneficiary details of a transfer.
type Recipient struct {
	Name          string `json:"name"`
	AccountNumber int64  `json:"account_number"`
	BankCode      int64  `json:"bank_code"`
	BankName      string `json:"bank_name"`
}

// Transfer holds a money transfer created against a quote.
type Transfer struct {
	ID                    uuid.UUID      `json:"transfer_id"`
	Status                TransferStatus `json:"status"`
	QuoteID               uuid.UUID      `json:"quote_id"`
	Payer                 Payer          `json:"payer"`
	Recipient             Recipient      `json:"recipient"`
	EstimatedDeliveryDate time.Time      `json:"estimated_delivery_date"`
	CreatedAt             time.Time      `json:"created_at"`
}

// RecipientDetails is the unvalidated recipient input.
// Account number and bank code arrive as strings and must parse as integers.
type RecipientDetails struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name"`
}

// CreateTransferParams is the input data to create a transfer.
type CreateTransferParams struct {
	QuoteID   uuid.UUID         `json:"quote_id"`
	Payer     *Payer            `json:"payer"`
	Recipient *RecipientDetails `json:"recipient"`
}
