// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/pkg/errorspkg"
	"github.com/go-petr/pet-fx/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Transfer, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

// request leaves field checks to the service so that the first failing rule
// is reported in a fixed order.
type request struct {
	QuoteID   uuid.UUID                `json:"quote_id"`
	Payer     *domain.Payer            `json:"payer"`
	Recipient *domain.RecipientDetails `json:"recipient"`
}

type data struct {
	Transfer domain.Transfer `json:"transfer"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a transfer against a quote.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req request
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	result, err := h.service.Create(ctx, domain.CreateTransferParams(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Header("Location", path.Join(gctx.Request.URL.Path, result.ID.String()))
	gctx.JSON(http.StatusCreated, response{Data: data{result}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a transfer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	result, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}
