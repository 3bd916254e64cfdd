package domain

import "errors"

// Error categories. Every specific domain error wraps exactly one of them,
// so the delivery layer can classify failures with errors.Is.
var (
	// ErrInvalidRequest indicates that caller supplied data failed a precondition.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRateUnavailable indicates that no rate is configured for a currency pair.
	ErrRateUnavailable = errors.New("exchange rate not available for the provided currency pair")
	// ErrNotFound indicates that a lookup by identifier found nothing.
	ErrNotFound = errors.New("not found")
)
