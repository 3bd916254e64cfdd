// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/go-petr/pet-fx/pkg/currencypkg"
)

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultServerAddress = "0.0.0.0:8080"
	DefaultRateCacheTTL  = 5 * time.Minute
	DefaultRateLimit     = "100-M"
)

// ErrNegativeTTL indicates a negative RATE_CACHE_TTL.
var ErrNegativeTTL = errors.New("rate cache ttl must not be negative")

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
// List values are comma separated, RATE_TABLE entries look like AUD-USD=0.6162.
type Config struct {
	ServerAddress  string        `mapstructure:"SERVER_ADDRESS"`
	Environment    string        `mapstructure:"GO_ENV"`
	RateCacheTTL   time.Duration `mapstructure:"RATE_CACHE_TTL"`
	RateTable      []string      `mapstructure:"RATE_TABLE"`
	SellCurrencies []string      `mapstructure:"SELL_CURRENCIES"`
	BuyCurrencies  []string      `mapstructure:"BUY_CURRENCIES"`
	RateLimit      string        `mapstructure:"RATE_LIMIT"`
	RateLimitRedis string        `mapstructure:"RATE_LIMIT_REDIS_URL"`
}

// Load read configuration from file or environment variables.
//
// A missing app.env under path is not an error, defaults and environment apply.
func Load(path string, defaultRateTable []string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", DefaultServerAddress)
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("RATE_CACHE_TTL", DefaultRateCacheTTL)
	v.SetDefault("RATE_TABLE", defaultRateTable)
	v.SetDefault("SELL_CURRENCIES", currencypkg.DefaultSellCurrencies)
	v.SetDefault("BUY_CURRENCIES", currencypkg.DefaultBuyCurrencies)
	v.SetDefault("RATE_LIMIT", DefaultRateLimit)
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if c.RateCacheTTL < 0 {
		return c, fmt.Errorf("%w: %s", ErrNegativeTTL, c.RateCacheTTL)
	}

	return c, nil
}
