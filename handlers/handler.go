package handlers

import (
	"errors"
	"net/http"

	"storefront-api/cart"
	"storefront-api/checkout"
	"storefront-api/middleware"
	"storefront-api/remote"
	"storefront-api/reviews"
	"storefront-api/search"
	"storefront-api/statemachine"
	"storefront-api/tracking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the order pipeline over HTTP. Presentation only reaches
// core state through these operations.
type Handler struct {
	Cart     *cart.Service
	Checkout *checkout.Service
	Tracking *tracking.Service
	Search   *search.Composer
	Reviews  *reviews.Service
	Data     remote.DataService
	Log      *zap.Logger
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log.With(zap.String("request_id", middleware.GetRequestID(c)))
}

// respondError maps core error kinds onto HTTP statuses
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var failure *remote.Failure
	switch {
	case errors.As(err, &failure):
		status = http.StatusBadGateway
	case errors.Is(err, cart.ErrInvalidItem),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrMissingCardFields),
		errors.Is(err, checkout.ErrMissingUpiID),
		errors.Is(err, checkout.ErrUnknownMethod),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMissingAddress),
		errors.Is(err, reviews.ErrMissingComment),
		errors.Is(err, reviews.ErrInvalidRating),
		errors.Is(err, reviews.ErrMissingVendor),
		errors.Is(err, search.ErrInvalidFilter):
		status = http.StatusBadRequest
	case errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, tracking.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, statemachine.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	}
	c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
