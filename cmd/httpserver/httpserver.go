// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-fx/internal/middleware"
	"github.com/go-petr/pet-fx/internal/quotedelivery"
	"github.com/go-petr/pet-fx/internal/quoterepo"
	"github.com/go-petr/pet-fx/internal/quoteservice"
	"github.com/go-petr/pet-fx/internal/raterepo"
	"github.com/go-petr/pet-fx/internal/rateservice"
	"github.com/go-petr/pet-fx/internal/transferdelivery"
	"github.com/go-petr/pet-fx/internal/transferrepo"
	"github.com/go-petr/pet-fx/internal/transferservice"
	"github.com/go-petr/pet-fx/pkg/configpkg"
	"github.com/go-petr/pet-fx/pkg/currencypkg"
)

// Server holds handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	rateRepo, err := raterepo.NewRepoStatic(config.RateTable)
	if err != nil {
		return nil, fmt.Errorf("cannot load rate table: %w", err)
	}

	sell := currencypkg.NewSet(config.SellCurrencies...)
	buy := currencypkg.NewSet(config.BuyCurrencies...)

	if sell.Len() == 0 || buy.Len() == 0 {
		return nil, errors.New("supported sell and buy currencies must not be empty")
	}

	limiter, err := middleware.NewLimiter(config.RateLimit, config.RateLimitRedis)
	if err != nil {
		return nil, fmt.Errorf("cannot create rate limiter: %w", err)
	}

	rateService := rateservice.New(rateRepo, config.RateCacheTTL)
	quoteService := quoteservice.New(quoterepo.NewRepoMemory(), rateService, sell, buy)
	transferService := transferservice.New(transferrepo.NewRepoMemory(), quoteService)

	quoteHandler := quotedelivery.NewHandler(quoteService)
	transferHandler := transferdelivery.NewHandler(transferService)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/transfers", middleware.RateLimit(limiter))

	api.POST("/quote", quoteHandler.Create)
	api.GET("/quote/:id", quoteHandler.Get)
	api.POST("", transferHandler.Create)
	api.GET("/:id", transferHandler.Get)

	logger.Info().
		Int("rates", rateRepo.Len()).
		Str("rate_cache_ttl", config.RateCacheTTL.String()).
		Msg("fx routes registered")

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
