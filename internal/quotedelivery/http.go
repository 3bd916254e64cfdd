// Package quotedelivery manages delivery layer of quotes.
package quotedelivery

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/pkg/errorspkg"
	"github.com/go-petr/pet-fx/pkg/web"
)

// Service provides service layer interface needed by quote delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package quotedelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateQuoteParams) (domain.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Quote, error)
}

// Handler facilitates quote delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns quote handler.
func NewHandler(qs Service) *Handler {
	return &Handler{service: qs}
}

type data struct {
	Quote domain.Quote `json:"quote"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	SellCurrency string          `json:"sell_currency" binding:"required,currency"`
	BuyCurrency  string          `json:"buy_currency" binding:"required,currency"`
	Amount       decimal.Decimal `json:"amount"`
}

func status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateUnavailable), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func (h *Handler) fail(gctx *gin.Context, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		gctx.JSON(code, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(code, web.Error(err))
}

// Create handles http request to quote a currency conversion.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	q, err := h.service.Create(ctx, domain.CreateQuoteParams{
		SellCurrency: req.SellCurrency,
		BuyCurrency:  req.BuyCurrency,
		Amount:       req.Amount,
	})
	if err != nil {
		h.fail(gctx, err)
		return
	}

	gctx.Header("Location", path.Join(gctx.Request.URL.Path, q.ID.String()))
	gctx.JSON(http.StatusCreated, response{Data: data{q}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a quote.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	q, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		h.fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{q}})
}
