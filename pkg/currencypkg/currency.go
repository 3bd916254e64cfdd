// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Constants for all known currencies.
const (
	AUD = "AUD"
	USD = "USD"
	EUR = "EUR"
	INR = "INR"
	PHP = "PHP"
)

// DefaultSellCurrencies holds the currencies a quote may sell by default.
var DefaultSellCurrencies = []string{AUD, USD, EUR}

// DefaultBuyCurrencies holds the currencies a quote may buy by default.
var DefaultBuyCurrencies = []string{USD, INR, PHP}

// Set is an immutable set of upper-cased currency codes.
type Set struct {
	codes map[string]struct{}
}

// NewSet builds a set from the given codes, normalizing each to upper case.
func NewSet(codes ...string) Set {
	s := Set{codes: make(map[string]struct{}, len(codes))}

	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}

		s.codes[c] = struct{}{}
	}

	return s
}

// Contains returns true if the upper-cased currency is in the set.
func (s Set) Contains(currency string) bool {
	_, ok := s.codes[currency]
	return ok
}

// Len returns the number of currencies in the set.
func (s Set) Len() int {
	return len(s.codes)
}

// IsCurrencyCode returns true if code is three ASCII letters.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}

// ValidCurrency validates whether the field looks like a currency code.
//
// Membership in the supported sets is checked by the quote service, not here.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsCurrencyCode(strings.TrimSpace(c))
	}

	return false
}
