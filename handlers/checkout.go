package handlers

import (
	"fmt"
	"net/http"

	"storefront-api/checkout"
	"storefront-api/remote"
	"storefront-api/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidateCheckout checks the payment form against the current cart
// without charging anything
func (h *Handler) ValidateCheckout(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.resolveAddress(c, &req); err != nil {
		respondError(c, err)
		return
	}
	payReq, err := h.Checkout.Validate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"amount":  payReq.Amount.StringFixed(2),
		"method":  payReq.Method,
		"items":   payReq.Items,
		"address": payReq.Address,
	})
}

// PlaceOrder validates, pays and places the order, then clears the cart
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.resolveAddress(c, &req); err != nil {
		respondError(c, err)
		return
	}
	order, err := h.Checkout.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	view, _ := statemachine.ViewOf(order.Status)
	h.logger(c).Info("checkout complete", zap.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Your order has been placed successfully.",
		"order":    order,
		"tracking": view,
	})
}

// resolveAddress fills the delivery address from a saved address id when
// the request names one instead of a free-form address.
func (h *Handler) resolveAddress(c *gin.Context, req *checkout.Request) error {
	if req.AddressID == "" || req.Address != "" {
		return nil
	}
	resp, err := h.Data.ListAddresses(c.Request.Context())
	if err := remote.Check("listAddresses", resp.Success, resp.Error, err); err != nil {
		return err
	}
	for _, a := range resp.Addresses {
		if a.ID == req.AddressID {
			req.Address = a.Address
			return nil
		}
	}
	return fmt.Errorf("%w: unknown address %q", checkout.ErrMissingAddress, req.AddressID)
}

// ListAddresses returns the saved delivery addresses, default first
func (h *Handler) ListAddresses(c *gin.Context) {
	resp, err := h.Data.ListAddresses(c.Request.Context())
	if err := remote.Check("listAddresses", resp.Success, resp.Error, err); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": resp.Addresses})
}
