// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/pkg/currencypkg"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

func fromAlphabet(a string, n int) string {
	var sb strings.Builder

	k := len(a)

	for i := 0; i < n; i++ {
		c := a[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromAlphabet(alphabet, n)
}

// Digits generates a random numeric string of length n without a leading zero.
func Digits(n int) string {
	if n <= 0 {
		return ""
	}

	return fromAlphabet(digits[1:], 1) + fromAlphabet(digits, n-1)
}

// Name generates a random person or bank name.
func Name() string {
	return strings.ToUpper(String(1)) + String(7)
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to 2 decimals.
func MoneyAmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(FloatBetween(min, max)).Round(2)
}

// SellCurrency returns a random currency from the default sell set.
func SellCurrency() string {
	return currencypkg.DefaultSellCurrencies[Intn(len(currencypkg.DefaultSellCurrencies))]
}

// BuyCurrency returns a random currency from the default buy set that differs from sell.
func BuyCurrency(sell string) string {
	for {
		c := currencypkg.DefaultBuyCurrencies[Intn(len(currencypkg.DefaultBuyCurrencies))]
		if c != sell {
			return c
		}
	}
}
